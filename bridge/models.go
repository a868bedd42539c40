package bridge

import "github.com/sconix/matterbridge-vallox/device"

type sensorConfiguration struct {
	name       string
	class      string
	unit       string
	get        func(status *device.Status) interface{}
	stateTopic string
}
