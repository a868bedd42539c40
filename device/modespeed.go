package device

import "github.com/sconix/matterbridge-vallox/vallox"

// FanMode is the canonical discrete fan mode. Off covers every state in
// which the unit is not ventilating; fireplace is the timed manual override,
// not a named profile tier.
type FanMode string

const (
	ModeOff       FanMode = "off"
	ModeAway      FanMode = "away"
	ModeHome      FanMode = "home"
	ModeBoost     FanMode = "boost"
	ModeFireplace FanMode = "fireplace"
)

// ProfileTable maps profile names to the unit's raw enum values.
type ProfileTable map[string]int

// ModeSpeedTable holds the per-profile speed settings read from the unit.
// Bucketing assumes Away <= Home <= Boost; the unit does not enforce this.
type ModeSpeedTable struct {
	Away  int `json:"away"`
	Home  int `json:"home"`
	Boost int `json:"boost"`
}

// ParseFanMode validates a mode name, e.g. from an MQTT command payload.
func ParseFanMode(name string) (FanMode, bool) {
	switch mode := FanMode(name); mode {
	case ModeOff, ModeAway, ModeHome, ModeBoost, ModeFireplace:
		return mode, true
	default:
		return ModeOff, false
	}
}

// ProfileToMode resolves a raw profile value against the profile table. Any
// value without a matching mode resolves to off: a profile we don't
// recognize is treated as a unit that is not running.
func ProfileToMode(rawProfile int, profiles ProfileTable) FanMode {
	for name, raw := range profiles {
		if raw != rawProfile {
			continue
		}

		if mode, ok := ParseFanMode(name); ok {
			return mode
		}
	}

	return ModeOff
}

// ModeToProfile resolves a mode to the raw profile value to write. Unknown
// modes deliberately fall back to the home profile rather than failing, so a
// bad command still leaves the unit in a sane state.
func ModeToProfile(mode FanMode, profiles ProfileTable) int {
	if raw, ok := profiles[string(mode)]; ok {
		return raw
	}

	if raw, ok := profiles[string(ModeHome)]; ok {
		return raw
	}

	return vallox.ProfileHome
}

// SpeedToMode buckets a continuous speed percentage into the three profile
// tiers. Zero always means off, whatever the table says.
func SpeedToMode(speed int, table ModeSpeedTable) FanMode {
	switch {
	case speed <= 0:
		return ModeOff
	case speed <= table.Away:
		return ModeAway
	case speed <= table.Home:
		return ModeHome
	default:
		return ModeBoost
	}
}

// ModeToApproxSpeed is the inverse approximation of SpeedToMode. Fireplace
// speed is whatever the caller last commanded, since the override registers
// are not part of the table.
func ModeToApproxSpeed(mode FanMode, table ModeSpeedTable, fireplaceSpeed int) int {
	switch mode {
	case ModeAway:
		return table.Away
	case ModeHome:
		return table.Home
	case ModeBoost:
		return table.Boost
	case ModeFireplace:
		return fireplaceSpeed
	default:
		return 0
	}
}
