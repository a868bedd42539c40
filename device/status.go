package device

import "github.com/sconix/matterbridge-vallox/vallox"

// Status is the canonical snapshot delivered to the subscriber after every
// successful poll. Pointer fields distinguish "not reported this cycle"
// from a reading of zero.
type Status struct {
	Power       bool     `json:"power"`
	FanMode     *FanMode `json:"fan_mode,omitempty"`
	FanSpeed    *int     `json:"fan_speed,omitempty"`
	Temperature *int     `json:"temperature,omitempty"`
	Humidity    *int     `json:"humidity,omitempty"`
	CO2         *int     `json:"co2,omitempty"`
}

// AirQuality classifies the snapshot's CO₂ reading.
func (s *Status) AirQuality() AirQuality {
	return ClassifyAirQuality(s.CO2)
}

// statusKeys are the metrics fetched on every poll.
var statusKeys = []string{
	vallox.MetricMode,
	vallox.MetricFanSpeed,
	vallox.MetricSupplyAirTemp,
	vallox.MetricHumidity,
	vallox.MetricCO2,
}

// Translate assembles a raw metrics read and profile into a Status. A
// partial metrics response never fails; missing registers just leave their
// fields unset.
func Translate(raw map[string]int, rawProfile int, profiles ProfileTable) Status {
	var status Status

	mode := ModeOff
	if value, ok := raw[vallox.MetricMode]; ok && value == vallox.ModeRunning {
		status.Power = true
		mode = ProfileToMode(rawProfile, profiles)
	}
	status.FanMode = &mode

	if status.Power {
		if value, ok := raw[vallox.MetricFanSpeed]; ok {
			speed := value
			status.FanSpeed = &speed
		}
	}

	if value, ok := raw[vallox.MetricSupplyAirTemp]; ok {
		temperature := value
		status.Temperature = &temperature
	}

	if value, ok := raw[vallox.MetricHumidity]; ok {
		humidity := value
		status.Humidity = &humidity
	}

	if value, ok := raw[vallox.MetricCO2]; ok {
		co2 := value
		status.CO2 = &co2
	}

	return status
}
