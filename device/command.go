package device

import "github.com/sconix/matterbridge-vallox/vallox"

// writeStep is one raw device write: either a batch of register values or a
// profile change. Steps within a plan must run in order; the unit ignores a
// profile write while the mode register still says stopped.
type writeStep struct {
	values  map[string]int
	profile int
}

func (s writeStep) isProfile() bool {
	return s.values == nil
}

type commandPlan []writeStep

// planMode translates a mode command into ordered writes. Off writes only
// the stopped sentinel; anything else starts the unit first and selects the
// profile second.
func planMode(mode FanMode, profiles ProfileTable) commandPlan {
	if mode == ModeOff {
		return commandPlan{
			{values: map[string]int{vallox.MetricMode: vallox.ModeStopped}},
		}
	}

	return commandPlan{
		{values: map[string]int{vallox.MetricMode: vallox.ModeRunning}},
		{profile: ModeToProfile(mode, profiles)},
	}
}

// planSpeed translates a speed command. Zero is exactly a mode-off command.
// A nonzero speed loads both manual override fan registers and then
// activates the fireplace profile, never one of the named tiers.
func planSpeed(speed int, profiles ProfileTable) commandPlan {
	if speed <= 0 {
		return planMode(ModeOff, profiles)
	}

	plan := commandPlan{
		{values: map[string]int{
			vallox.MetricFireplaceExtractFan: speed,
			vallox.MetricFireplaceSupplyFan:  speed,
		}},
	}

	return append(plan, planMode(ModeFireplace, profiles)...)
}

// run issues the plan's writes against the client, stopping at the first
// failure.
func (p commandPlan) run(client Client) error {
	for _, step := range p {
		if step.isProfile() {
			if err := client.WriteProfile(step.profile); err != nil {
				return err
			}
			continue
		}

		if err := client.WriteValues(step.values); err != nil {
			return err
		}
	}

	return nil
}
