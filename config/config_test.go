package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sconix/matterbridge-vallox/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vallox.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `{
		"device": {"address": "192.168.1.10", "port": 8080},
		"mqtt": {"ip_address": "192.168.1.2", "username": "vallox", "password": "secret"},
		"poll_interval_seconds": 30
	}`)

	cfg, err := config.LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.10", cfg.Device.Address)
	assert.Equal(t, 8080, cfg.Device.Port)
	assert.Equal(t, "192.168.1.2", cfg.Mqtt.IpAddress)
	assert.Equal(t, 30, cfg.PollIntervalSeconds)
}

func TestLoadConfigurationDefaults(t *testing.T) {
	path := writeConfig(t, `{"device": {"address": "192.168.1.10"}}`)

	cfg, err := config.LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Device.Port)
	assert.Equal(t, 60, cfg.PollIntervalSeconds)
}

func TestLoadConfigurationMissingAddress(t *testing.T) {
	path := writeConfig(t, `{"mqtt": {"ip_address": "192.168.1.2"}}`)

	_, err := config.LoadConfiguration(path)
	assert.ErrorContains(t, err, "missing device address")
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := config.LoadConfiguration(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfigurationInvalidJSON(t *testing.T) {
	path := writeConfig(t, `not json`)

	_, err := config.LoadConfiguration(path)
	assert.Error(t, err)
}
