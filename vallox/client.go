package vallox

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const requestTimeout = 5 * time.Second

// Client talks to the websocket endpoint of a Vallox MV unit. A connection
// is opened per request; the unit drops idle websockets quickly anyway.
type Client struct {
	address string
	port    int
	mutex   sync.Mutex
}

func NewClient(address string, port int) *Client {
	if port == 0 {
		port = 80
	}

	return &Client{
		address: address,
		port:    port,
	}
}

// Profiles returns the static profile-name to raw enum table. The returned
// map is a copy; callers may invert or mutate it freely.
func (c *Client) Profiles() map[string]int {
	profiles := make(map[string]int, len(profileNames))
	for name, value := range profileNames {
		profiles[name] = value
	}

	return profiles
}

// FetchMetrics reads the unit's data table and extracts the requested
// metrics. Keys the unit did not report (short table, unknown register) are
// simply absent from the result, not an error.
func (c *Client) FetchMetrics(keys []string) (map[string]int, error) {
	table, err := c.roundTrip([]uint16{commandReadTables})
	if err != nil {
		return nil, err
	}

	metrics := make(map[string]int, len(keys))
	for _, key := range keys {
		address, ok := registerAddress[key]
		if !ok {
			continue
		}

		cell := address - tableBase
		if cell < 0 || cell >= len(table) {
			continue
		}

		metrics[key] = int(table[cell])
	}

	return metrics, nil
}

// FetchProfile derives the active profile from the state and override-timer
// registers. Timed overrides take precedence over the home/away switch.
func (c *Client) FetchProfile() (int, error) {
	metrics, err := c.FetchMetrics([]string{
		MetricState,
		MetricBoostTimer,
		MetricFireplaceTimer,
		MetricExtraTimer,
	})
	if err != nil {
		return ProfileNone, err
	}

	switch {
	case metrics[MetricBoostTimer] > 0:
		return ProfileBoost, nil
	case metrics[MetricFireplaceTimer] > 0:
		return ProfileFireplace, nil
	case metrics[MetricExtraTimer] > 0:
		return ProfileExtra, nil
	case metrics[MetricState] == 1:
		return ProfileAway, nil
	default:
		return ProfileHome, nil
	}
}

// WriteValues writes the given metrics to their registers in one request.
func (c *Client) WriteValues(values map[string]int) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		if _, ok := registerAddress[key]; !ok {
			return fmt.Errorf("unknown metric %v", key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	body := []uint16{commandWrite}
	for _, key := range keys {
		body = append(body, uint16(registerAddress[key]), uint16(values[key]))
	}

	response, err := c.roundTrip(body)
	if err != nil {
		return err
	}

	if len(response) == 0 || response[0] != commandAck {
		return transportErr("write", errors.New("unit did not acknowledge"))
	}

	return nil
}

// WriteProfile activates a profile by writing the state and override-timer
// registers. The timed profiles run for the duration the unit has configured
// for them.
func (c *Client) WriteProfile(profile int) error {
	switch profile {
	case ProfileHome:
		return c.WriteValues(map[string]int{
			MetricState:          0,
			MetricBoostTimer:     0,
			MetricFireplaceTimer: 0,
			MetricExtraTimer:     0,
		})
	case ProfileAway:
		return c.WriteValues(map[string]int{
			MetricState:          1,
			MetricBoostTimer:     0,
			MetricFireplaceTimer: 0,
			MetricExtraTimer:     0,
		})
	case ProfileBoost:
		return c.writeTimedProfile(MetricBoostTime, MetricBoostTimer)
	case ProfileFireplace:
		return c.writeTimedProfile(MetricFireplaceTime, MetricFireplaceTimer)
	case ProfileExtra:
		return c.writeTimedProfile(MetricExtraTime, MetricExtraTimer)
	default:
		return fmt.Errorf("unknown profile %v", profile)
	}
}

func (c *Client) writeTimedProfile(durationKey, timerKey string) error {
	metrics, err := c.FetchMetrics([]string{durationKey})
	if err != nil {
		return err
	}

	duration, ok := metrics[durationKey]
	if !ok || duration <= 0 {
		// Unit ships with a 15 minute default for all override timers
		duration = 15
	}

	return c.WriteValues(map[string]int{timerKey: duration})
}

func (c *Client) roundTrip(body []uint16) ([]uint16, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	dialer := websocket.Dialer{HandshakeTimeout: requestTimeout}
	conn, _, err := dialer.Dial(fmt.Sprintf("ws://%v:%v/", c.address, c.port), nil)
	if err != nil {
		return nil, transportErr("dial", err)
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(requestTimeout))
	if err := conn.WriteMessage(websocket.BinaryMessage, packFrame(body)); err != nil {
		return nil, transportErr("write", err)
	}

	conn.SetReadDeadline(time.Now().Add(requestTimeout))
	messageType, packed, err := conn.ReadMessage()
	if err != nil {
		return nil, transportErr("read", err)
	}

	if messageType != websocket.BinaryMessage {
		return nil, transportErr("read", fmt.Errorf("unexpected message type %v", messageType))
	}

	response, err := unpackFrame(packed)
	if err != nil {
		return nil, transportErr("decode", err)
	}

	return response, nil
}
