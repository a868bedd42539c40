package device

import (
	"testing"

	"github.com/sconix/matterbridge-vallox/vallox"
	"github.com/stretchr/testify/assert"
)

func testProfiles() ProfileTable {
	return ProfileTable{
		"home":      vallox.ProfileHome,
		"away":      vallox.ProfileAway,
		"boost":     vallox.ProfileBoost,
		"fireplace": vallox.ProfileFireplace,
		"extra":     vallox.ProfileExtra,
	}
}

func TestProfileRoundTrip(t *testing.T) {
	profiles := testProfiles()

	for name, raw := range profiles {
		mode, ok := ParseFanMode(name)
		if !ok {
			// No canonical mode for this profile, resolves to off
			assert.Equal(t, ModeOff, ProfileToMode(raw, profiles))
			continue
		}

		assert.Equal(t, mode, ProfileToMode(raw, profiles))
		assert.Equal(t, raw, ModeToProfile(mode, profiles))
	}
}

func TestProfileToModeUnknown(t *testing.T) {
	profiles := testProfiles()

	assert.Equal(t, ModeOff, ProfileToMode(vallox.ProfileNone, profiles))
	assert.Equal(t, ModeOff, ProfileToMode(99, profiles))
	// The extra profile has no canonical mode
	assert.Equal(t, ModeOff, ProfileToMode(vallox.ProfileExtra, profiles))
}

func TestModeToProfileDefaultsToHome(t *testing.T) {
	profiles := testProfiles()

	assert.Equal(t, vallox.ProfileHome, ModeToProfile(FanMode("turbo"), profiles))
	assert.Equal(t, vallox.ProfileHome, ModeToProfile(ModeOff, profiles))
	assert.Equal(t, vallox.ProfileHome, ModeToProfile(ModeHome, ProfileTable{}))
}

func TestSpeedToMode(t *testing.T) {
	table := ModeSpeedTable{Away: 20, Home: 40, Boost: 60}

	assert.Equal(t, ModeOff, SpeedToMode(0, table))
	assert.Equal(t, ModeAway, SpeedToMode(15, table))
	assert.Equal(t, ModeAway, SpeedToMode(20, table))
	assert.Equal(t, ModeHome, SpeedToMode(40, table))
	assert.Equal(t, ModeBoost, SpeedToMode(41, table))
	assert.Equal(t, ModeBoost, SpeedToMode(100, table))
}

func TestSpeedZeroAlwaysOff(t *testing.T) {
	tables := []ModeSpeedTable{
		{},
		{Away: 20, Home: 40, Boost: 60},
		{Away: 60, Home: 40, Boost: 20},
		{Away: 100, Home: 100, Boost: 100},
	}

	for _, table := range tables {
		assert.Equal(t, ModeOff, SpeedToMode(0, table), "table %+v", table)
	}
}

func TestModeToApproxSpeed(t *testing.T) {
	table := ModeSpeedTable{Away: 20, Home: 40, Boost: 60}

	assert.Equal(t, 0, ModeToApproxSpeed(ModeOff, table, 77))
	assert.Equal(t, 20, ModeToApproxSpeed(ModeAway, table, 77))
	assert.Equal(t, 40, ModeToApproxSpeed(ModeHome, table, 77))
	assert.Equal(t, 60, ModeToApproxSpeed(ModeBoost, table, 77))
	assert.Equal(t, 77, ModeToApproxSpeed(ModeFireplace, table, 77))
}

func TestParseFanMode(t *testing.T) {
	mode, ok := ParseFanMode("boost")
	assert.True(t, ok)
	assert.Equal(t, ModeBoost, mode)

	_, ok = ParseFanMode("extra")
	assert.False(t, ok)

	_, ok = ParseFanMode("")
	assert.False(t, ok)
}
