package vallox

import "fmt"

// Metric keys for the registers this bridge reads and writes. Names follow
// the unit's own register naming.
const (
	MetricMode          = "A_CYC_MODE"
	MetricFanSpeed      = "A_CYC_FAN_SPEED"
	MetricSupplyAirTemp = "A_CYC_TEMP_SUPPLY_AIR"
	MetricHumidity      = "A_CYC_RH_VALUE"
	MetricCO2           = "A_CYC_CO2_VALUE"

	MetricAwaySpeed  = "A_CYC_AWAY_SPEED_SETTING"
	MetricHomeSpeed  = "A_CYC_HOME_SPEED_SETTING"
	MetricBoostSpeed = "A_CYC_BOOST_SPEED_SETTING"

	MetricFireplaceExtractFan = "A_CYC_FIREPLACE_EXTR_FAN"
	MetricFireplaceSupplyFan  = "A_CYC_FIREPLACE_SUPP_FAN"

	MetricMachineModel    = "A_CYC_MACHINE_MODEL"
	MetricSerialMSW       = "A_CYC_SERIAL_NUMBER_MSW"
	MetricSerialLSW       = "A_CYC_SERIAL_NUMBER_LSW"
	MetricSoftwareVersion = "A_CYC_APPL_SW_VERSION"

	MetricState          = "A_CYC_STATE"
	MetricBoostTimer     = "A_CYC_BOOST_TIMER"
	MetricFireplaceTimer = "A_CYC_FIREPLACE_TIMER"
	MetricExtraTimer     = "A_CYC_EXTRA_TIMER"
	MetricBoostTime      = "A_CYC_BOOST_TIME"
	MetricFireplaceTime  = "A_CYC_FIREPLACE_TIME"
	MetricExtraTime      = "A_CYC_EXTRA_TIME"
)

// Values of the mode register. Anything other than ModeRunning means the
// unit is not ventilating.
const (
	ModeRunning = 0
	ModeStopped = 5
)

// Raw profile enum values reported by the unit.
const (
	ProfileNone      = 0
	ProfileHome      = 1
	ProfileAway      = 2
	ProfileBoost     = 3
	ProfileFireplace = 4
	ProfileExtra     = 5
)

// profileNames maps canonical profile names to their raw enum values. The
// table is static for the whole MV family.
var profileNames = map[string]int{
	"home":      ProfileHome,
	"away":      ProfileAway,
	"boost":     ProfileBoost,
	"fireplace": ProfileFireplace,
	"extra":     ProfileExtra,
}

// registerAddress maps a metric key to its cell in the unit's data table.
var registerAddress = map[string]int{
	MetricMode:          4609,
	MetricFanSpeed:      4613,
	MetricSupplyAirTemp: 4703,
	MetricHumidity:      4709,
	MetricCO2:           4711,

	MetricAwaySpeed:  4818,
	MetricHomeSpeed:  4819,
	MetricBoostSpeed: 4820,

	MetricFireplaceExtractFan: 4823,
	MetricFireplaceSupplyFan:  4824,

	MetricMachineModel:    4867,
	MetricSerialMSW:       4868,
	MetricSerialLSW:       4869,
	MetricSoftwareVersion: 4870,

	MetricState:          4610,
	MetricBoostTimer:     4612,
	MetricFireplaceTimer: 4616,
	MetricExtraTimer:     4617,
	MetricBoostTime:      4829,
	MetricFireplaceTime:  4830,
	MetricExtraTime:      4831,
}

// modelNames maps the machine model register to the marketing name.
var modelNames = map[int]string{
	1:  "Vallox 096 MV",
	2:  "Vallox 110 MV",
	3:  "Vallox 145 MV",
	4:  "Vallox 245 MV",
	5:  "ValloPlus 270 MV",
	6:  "ValloPlus 350 MV",
	7:  "ValloPlus 510 MV",
	8:  "ValloPlus 850 MV",
	9:  "Vallox TSK Multi 50 MV",
	10: "Vallox TSK Multi 80 MV",
	11: "ValloMulti 200 MV",
	12: "ValloMulti 300 MV",
	13: "Vallox 99 MV",
	14: "Vallox 51 MV",
}

// ModelName resolves a machine model register value to a human readable name.
func ModelName(id int) string {
	if name, ok := modelNames[id]; ok {
		return name
	}

	return fmt.Sprintf("Vallox MV (model %v)", id)
}
