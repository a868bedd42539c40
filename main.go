package main

import (
	"net/http"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sconix/matterbridge-vallox/bridge"
	"github.com/sconix/matterbridge-vallox/config"
	"github.com/sconix/matterbridge-vallox/routes"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadConfiguration("vallox.json")
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
		return
	}

	bridge, err := bridge.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error setting up bridge")
		return
	}

	mqttOpts := cfg.Mqtt.ClientOptions()
	// Configure MQTT subscriptions in the ConnectHandler to make sure they are set up after reconnect
	mqttOpts.SetOnConnectHandler(func(client mqtt.Client) {
		bridge.SubscribeToFanCommands(client)
	})

	mqttClient := mqtt.NewClient(mqttOpts)
	if t := mqttClient.Connect(); t.Wait() && t.Error() != nil {
		log.Error().Err(t.Error()).Msg("MQTT connection error")
		return
	}

	if err := bridge.RegisterFan(mqttClient); err != nil {
		log.Error().Err(err).Msg("Error registering fan")
		return
	}

	if err := bridge.RegisterSensors(mqttClient); err != nil {
		log.Error().Err(err).Msg("Error registering sensors")
		return
	}

	bridge.Start()

	// Start httprouter
	router := httprouter.New()
	router.GET("/state", routes.State(bridge))

	go loopSafely(func() {
		http.ListenAndServe(":8080", router)
	})

	select {}
}
