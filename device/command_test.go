package device

import (
	"testing"

	"github.com/sconix/matterbridge-vallox/vallox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanModeOff(t *testing.T) {
	plan := planMode(ModeOff, testProfiles())

	require.Len(t, plan, 1)
	assert.Equal(t, map[string]int{vallox.MetricMode: vallox.ModeStopped}, plan[0].values)
}

func TestPlanModeWritesModeBeforeProfile(t *testing.T) {
	plan := planMode(ModeBoost, testProfiles())

	require.Len(t, plan, 2)
	assert.Equal(t, map[string]int{vallox.MetricMode: vallox.ModeRunning}, plan[0].values)
	require.True(t, plan[1].isProfile())
	assert.Equal(t, vallox.ProfileBoost, plan[1].profile)
}

func TestPlanModeUnknownWritesHomeProfile(t *testing.T) {
	plan := planMode(FanMode("turbo"), testProfiles())

	require.Len(t, plan, 2)
	require.True(t, plan[1].isProfile())
	assert.Equal(t, vallox.ProfileHome, plan[1].profile)
}

func TestPlanSpeedZeroMatchesModeOff(t *testing.T) {
	profiles := testProfiles()

	assert.Equal(t, planMode(ModeOff, profiles), planSpeed(0, profiles))
	assert.Equal(t, planMode(ModeOff, profiles), planSpeed(-1, profiles))
}

func TestPlanSpeedActivatesFireplaceOverride(t *testing.T) {
	plan := planSpeed(42, testProfiles())

	require.Len(t, plan, 3)

	// Override fan registers are loaded before the unit is switched on
	assert.Equal(t, map[string]int{
		vallox.MetricFireplaceExtractFan: 42,
		vallox.MetricFireplaceSupplyFan:  42,
	}, plan[0].values)
	assert.Equal(t, map[string]int{vallox.MetricMode: vallox.ModeRunning}, plan[1].values)
	require.True(t, plan[2].isProfile())
	assert.Equal(t, vallox.ProfileFireplace, plan[2].profile)
}

func TestPlanRunOrdering(t *testing.T) {
	client := newFakeClient()

	err := planSpeed(42, testProfiles()).run(client)
	require.NoError(t, err)

	assert.Equal(t, []string{"values", "values", "profile"}, client.ops)
	assert.Equal(t, vallox.ProfileFireplace, client.profile)
}

func TestPlanRunStopsOnWriteFailure(t *testing.T) {
	client := newFakeClient()
	client.writeErr = assert.AnError

	err := planMode(ModeHome, testProfiles()).run(client)
	require.Error(t, err)

	// First write failed, profile write never happened
	assert.Equal(t, []string{"values"}, client.ops)
}
