package bridge

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
	"github.com/sconix/matterbridge-vallox/config"
	"github.com/sconix/matterbridge-vallox/device"
	"github.com/sconix/matterbridge-vallox/homeassistant"
	"github.com/sconix/matterbridge-vallox/vallox"
)

// Bridge wires one Vallox unit to MQTT: it registers Home Assistant
// entities, subscribes to fan commands and, as the device's status handler,
// publishes every polled snapshot.
type Bridge struct {
	cfg  *config.Configuration
	dev  *device.Device
	info *device.BasicInfo

	mutex       sync.Mutex
	mqtt        mqtt.Client
	lastPreset  device.FanMode
	lastOnMode  device.FanMode
	lastStatus  *device.Status
	lastUpdated time.Time
}

func New(cfg *config.Configuration) (*Bridge, error) {
	log.Info().Str("address", cfg.Device.Address).Int("port", cfg.Device.Port).Msg("Connecting to unit")

	b := &Bridge{
		cfg:        cfg,
		lastOnMode: device.ModeHome,
	}

	client := vallox.NewClient(cfg.Device.Address, cfg.Device.Port)
	b.dev = device.New(client, b, time.Duration(cfg.PollIntervalSeconds)*time.Second)

	info, err := b.dev.GetBasicInfo()
	if err != nil {
		return nil, err
	}
	b.info = info

	log.Info().
		Str("model", info.Name).
		Str("serial", info.Serial).
		Str("version", info.SoftwareVersion).
		Msg("Connected")

	return b, nil
}

func (b *Bridge) Start() {
	b.dev.StartPolling()
}

func (b *Bridge) Stop() {
	b.dev.StopPolling()
}

func (b *Bridge) Info() *device.BasicInfo {
	return b.info
}

// LastStatus returns the most recently delivered snapshot, if any.
func (b *Bridge) LastStatus() (*device.Status, time.Time, bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.lastStatus == nil {
		return nil, time.Time{}, false
	}

	return b.lastStatus, b.lastUpdated, true
}

func (b *Bridge) RegisterFan(mqttClient mqtt.Client) error {
	b.mutex.Lock()
	b.mqtt = mqttClient
	b.mutex.Unlock()

	homeAssistantClient := homeassistant.NewClient(mqttClient)

	return homeAssistantClient.RegisterFan([]string{
		string(device.ModeOff),
		string(device.ModeAway),
		string(device.ModeHome),
		string(device.ModeBoost),
		string(device.ModeFireplace),
	})
}

func (b *Bridge) RegisterSensors(mqttClient mqtt.Client) error {
	homeAssistantClient := homeassistant.NewClient(mqttClient)

	for _, sensorConfig := range sensorDefinitions {
		if stateTopic, err := homeAssistantClient.RegisterSensor(sensorConfig.name, sensorConfig.class, sensorConfig.unit); err != nil {
			return err
		} else {
			log.Info().Str("sensor", sensorConfig.name).Msg("Registered sensor")
			sensorConfig.stateTopic = stateTopic
		}
	}

	return nil
}

func (b *Bridge) SubscribeToFanCommands(mqttClient mqtt.Client) {
	if t := mqttClient.Subscribe(fmt.Sprintf("%v/fan/cmd", config.TopicPrefix), 0, func(client mqtt.Client, msg mqtt.Message) {
		command := string(msg.Payload())

		var err error
		if command == "OFF" {
			err = b.dev.ChangeFanMode(device.ModeOff)
		} else {
			b.mutex.Lock()
			mode := b.lastOnMode
			b.mutex.Unlock()

			err = b.dev.ChangeFanMode(mode)
		}

		if err != nil {
			log.Error().Err(err).Msg("Error toggling fan")
		}
	}); t.Wait() && t.Error() != nil {
		log.Error().Err(t.Error()).Msg("MQTT receive error")
	}

	if t := mqttClient.Subscribe(fmt.Sprintf("%v/fan/preset/cmd", config.TopicPrefix), 0, func(client mqtt.Client, msg mqtt.Message) {
		preset := strings.ToLower(string(msg.Payload()))

		// Unrecognized presets fall back to the home profile in the mapper
		if err := b.dev.ChangeFanMode(device.FanMode(preset)); err != nil {
			log.Error().Err(err).Str("preset", preset).Msg("Error setting fan preset")
		}
	}); t.Wait() && t.Error() != nil {
		log.Error().Err(t.Error()).Msg("MQTT receive error")
	}

	if t := mqttClient.Subscribe(fmt.Sprintf("%v/fan/percentage/cmd", config.TopicPrefix), 0, func(client mqtt.Client, msg mqtt.Message) {
		percentage, err := strconv.Atoi(string(msg.Payload()))
		if err != nil {
			log.Warn().Str("payload", string(msg.Payload())).Msg("Ignoring malformed percentage command")
			return
		}

		if err := b.dev.ChangeFanSpeed(percentage); err != nil {
			log.Error().Err(err).Int("percentage", percentage).Msg("Error setting fan speed")
		}
	}); t.Wait() && t.Error() != nil {
		log.Error().Err(t.Error()).Msg("MQTT receive error")
	}
}

// OnStatus implements device.StatusHandler. Called from the polling timer
// and after every command.
func (b *Bridge) OnStatus(status device.Status) {
	b.mutex.Lock()
	b.lastStatus = &status
	b.lastUpdated = time.Now()
	if status.FanMode != nil && *status.FanMode != device.ModeOff {
		b.lastOnMode = *status.FanMode
	}
	mqttClient := b.mqtt
	b.mutex.Unlock()

	if mqttClient == nil {
		return
	}

	b.publishFanState(mqttClient, &status)
	b.publishSensors(mqttClient, &status)
}

func (b *Bridge) publishFanState(mqttClient mqtt.Client, status *device.Status) {
	var stateMessage string
	if status.Power {
		stateMessage = "ON"
	} else {
		stateMessage = "OFF"
	}

	preset := device.ModeOff
	if status.FanMode != nil {
		preset = *status.FanMode
	}

	b.mutex.Lock()
	changed := b.lastPreset == "" || b.lastPreset != preset
	b.lastPreset = preset
	b.mutex.Unlock()

	if changed {
		if t := mqttClient.Publish(config.TopicPrefix+"/fan/state", 0, true, stateMessage); t.Wait() && t.Error() != nil {
			log.Error().Err(t.Error()).Msg("MQTT publishing failed")
			return
		}

		if t := mqttClient.Publish(config.TopicPrefix+"/fan/preset/state", 0, true, string(preset)); t.Wait() && t.Error() != nil {
			log.Error().Err(t.Error()).Msg("MQTT publishing failed")
			return
		}
	}

	if status.FanSpeed != nil {
		if t := mqttClient.Publish(config.TopicPrefix+"/fan/percentage/state", 0, true, strconv.Itoa(*status.FanSpeed)); t.Wait() && t.Error() != nil {
			log.Error().Err(t.Error()).Msg("MQTT publishing failed")
		}
	}
}

func (b *Bridge) publishSensors(mqttClient mqtt.Client, status *device.Status) {
	for _, sensorConfig := range sensorDefinitions {
		if sensorConfig.stateTopic == "" {
			continue
		}

		value := sensorConfig.get(status)
		if value == nil {
			continue
		}

		if t := mqttClient.Publish(sensorConfig.stateTopic, 0, true, fmt.Sprintf("%v", value)); t.Wait() && t.Error() != nil {
			log.Error().Err(t.Error()).Msg("MQTT publishing failed")
			continue
		}
	}
}
