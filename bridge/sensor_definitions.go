package bridge

import (
	"fmt"

	"github.com/sconix/matterbridge-vallox/device"
)

var sensorDefinitions = [...]*sensorConfiguration{
	{
		name:  "Vallox Supply Temperature",
		class: "temperature",
		unit:  "°C",
		get: func(status *device.Status) interface{} {
			if status.Temperature == nil {
				return nil
			}
			return fmt.Sprintf("%.1f", rawToCelsius(*status.Temperature))
		},
	},
	{
		name:  "Vallox Humidity",
		class: "humidity",
		unit:  "%",
		get: func(status *device.Status) interface{} {
			if status.Humidity == nil {
				return nil
			}
			return *status.Humidity
		},
	},
	{
		name:  "Vallox CO2",
		class: "carbon_dioxide",
		unit:  "ppm",
		get: func(status *device.Status) interface{} {
			if status.CO2 == nil {
				return nil
			}
			return *status.CO2
		},
	},
	{
		name: "Vallox Air Quality",
		get: func(status *device.Status) interface{} {
			if status.CO2 == nil {
				return nil
			}
			return status.AirQuality().String()
		},
	},
}

// The unit reports temperatures in hundredths of a Kelvin.
func rawToCelsius(raw int) float64 {
	return float64(raw)/100.0 - 273.15
}
