package device

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sconix/matterbridge-vallox/vallox"
)

// Client is the metrics transport against one physical unit. vallox.Client
// implements it; tests supply fakes. Partial FetchMetrics responses are
// valid and must not be treated as errors by anything in this package.
type Client interface {
	FetchMetrics(keys []string) (map[string]int, error)
	FetchProfile() (int, error)
	WriteValues(values map[string]int) error
	WriteProfile(profile int) error
	Profiles() map[string]int
}

// StatusHandler receives a snapshot after every successful poll. Handlers
// own any retention; snapshots are not reused.
type StatusHandler interface {
	OnStatus(status Status)
}

// BasicInfo identifies the unit. Resolved once from read-only registers,
// never re-polled.
type BasicInfo struct {
	Name            string `json:"name"`
	Serial          string `json:"serial"`
	SoftwareVersion string `json:"software_version"`
}

// Device is the state synchronization engine for one ventilation unit: it
// polls raw metrics on a fixed period, translates them to Status snapshots
// for the handler, and translates canonical commands into register writes.
type Device struct {
	client   Client
	handler  StatusHandler
	interval time.Duration

	mutex  sync.Mutex
	ticker *time.Ticker
	done   chan struct{}

	// last speed commanded through ChangeFanSpeed, for the fireplace tier
	// of ModeToApproxSpeed
	lastFireplaceSpeed int
}

const defaultPollInterval = 60 * time.Second

func New(client Client, handler StatusHandler, interval time.Duration) *Device {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &Device{
		client:   client,
		handler:  handler,
		interval: interval,
	}
}

var infoKeys = []string{
	vallox.MetricMachineModel,
	vallox.MetricSerialMSW,
	vallox.MetricSerialLSW,
	vallox.MetricSoftwareVersion,
}

// GetBasicInfo reads the identification registers. One-shot; callers cache.
func (d *Device) GetBasicInfo() (*BasicInfo, error) {
	raw, err := d.client.FetchMetrics(infoKeys)
	if err != nil {
		return nil, err
	}

	serial := raw[vallox.MetricSerialMSW]<<16 | raw[vallox.MetricSerialLSW]
	version := raw[vallox.MetricSoftwareVersion]

	return &BasicInfo{
		Name:            vallox.ModelName(raw[vallox.MetricMachineModel]),
		Serial:          strconv.Itoa(serial),
		SoftwareVersion: fmt.Sprintf("%v.%v", version>>8, version&0xff),
	}, nil
}

var speedKeys = []string{
	vallox.MetricAwaySpeed,
	vallox.MetricHomeSpeed,
	vallox.MetricBoostSpeed,
}

// GetModeSpeeds fetches the per-profile speed settings. Always re-fetched:
// the settings can be changed from the unit's own panel between calls.
func (d *Device) GetModeSpeeds() (*ModeSpeedTable, error) {
	raw, err := d.client.FetchMetrics(speedKeys)
	if err != nil {
		return nil, err
	}

	return &ModeSpeedTable{
		Away:  raw[vallox.MetricAwaySpeed],
		Home:  raw[vallox.MetricHomeSpeed],
		Boost: raw[vallox.MetricBoostSpeed],
	}, nil
}

// ChangeFanMode writes the mode command to the unit and delivers the
// post-command status to the handler. The command is not complete until
// that status has been observed.
func (d *Device) ChangeFanMode(mode FanMode) error {
	if err := planMode(mode, d.client.Profiles()).run(d.client); err != nil {
		return err
	}

	return d.pollAfterCommand()
}

// ChangeFanSpeed sets a manual speed percentage. Zero turns the unit off;
// anything else activates the fireplace override at that speed.
func (d *Device) ChangeFanSpeed(speed int) error {
	if speed < 0 || speed > 100 {
		return fmt.Errorf("invalid fan speed %v", speed)
	}

	if err := planSpeed(speed, d.client.Profiles()).run(d.client); err != nil {
		return err
	}

	if speed > 0 {
		d.mutex.Lock()
		d.lastFireplaceSpeed = speed
		d.mutex.Unlock()
	}

	return d.pollAfterCommand()
}

// ApproxSpeed estimates the speed percentage a mode would run at, using the
// last commanded override speed for the fireplace tier.
func (d *Device) ApproxSpeed(mode FanMode, table ModeSpeedTable) int {
	d.mutex.Lock()
	fireplaceSpeed := d.lastFireplaceSpeed
	d.mutex.Unlock()

	return ModeToApproxSpeed(mode, table, fireplaceSpeed)
}

func (d *Device) pollAfterCommand() error {
	status, err := d.poll()
	if err != nil {
		return err
	}

	d.handler.OnStatus(status)

	return nil
}

func (d *Device) poll() (Status, error) {
	raw, err := d.client.FetchMetrics(statusKeys)
	if err != nil {
		return Status{}, err
	}

	profile, err := d.client.FetchProfile()
	if err != nil {
		return Status{}, err
	}

	return Translate(raw, profile, d.client.Profiles()), nil
}
