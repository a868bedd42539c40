package config

import (
	"encoding/json"
	"fmt"
	"os"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const HomeAssistantPrefix = "homeassistant"
const TopicPrefix = "vallox"

type Configuration struct {
	Device              Device `json:"device"`
	Mqtt                Mqtt   `json:"mqtt"`
	PollIntervalSeconds int    `json:"poll_interval_seconds"`
}

type Device struct {
	Address string `json:"address"`
	Port    int    `json:"port"`
}

type Mqtt struct {
	IpAddress string `json:"ip_address"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

func LoadConfiguration(filename string) (*Configuration, error) {
	var file *os.File
	var err error
	if file, err = os.Open(filename); err != nil {
		return nil, err
	}

	defer file.Close()
	decoder := json.NewDecoder(file)
	configuration := &Configuration{}
	if err := decoder.Decode(configuration); err != nil {
		return nil, err
	}

	if configuration.Device.Address == "" {
		return nil, fmt.Errorf("missing device address in %v", filename)
	}

	if configuration.Device.Port == 0 {
		configuration.Device.Port = 80
	}

	if configuration.PollIntervalSeconds == 0 {
		configuration.PollIntervalSeconds = 60
	}

	return configuration, nil
}

func (m *Mqtt) ClientOptions() *mqtt.ClientOptions {
	return mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%v:1883", m.IpAddress)).
		SetUsername(m.Username).
		SetPassword(m.Password).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(client mqtt.Client, err error) {
			log.Warn().Err(err).Msg("MQTT connection lost")
		}).
		SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
			log.Info().Msg("MQTT reconnecting")
		})
}
