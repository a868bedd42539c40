package device

import (
	"time"

	"github.com/rs/zerolog/log"
)

// StartPolling performs one immediate poll-and-deliver and then repeats on
// the configured period. Calling it while already polling is a no-op.
//
// A command-triggered poll and a timer-triggered poll are deliberately not
// serialized against each other; each fetches and delivers independently
// and the handler sees last-write-wins.
func (d *Device) StartPolling() {
	d.mutex.Lock()
	if d.ticker != nil {
		d.mutex.Unlock()
		return
	}

	d.ticker = time.NewTicker(d.interval)
	d.done = make(chan struct{})
	ticker, done := d.ticker, d.done
	d.mutex.Unlock()

	go d.pollAndDeliver()

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}

				d.pollAndDeliver()
			}
		}
	}()
}

// StopPolling disarms the timer. No further timer-triggered deliveries
// happen after it returns, but a poll already in flight may still deliver
// one final snapshot. Stopping a stopped device is a no-op.
func (d *Device) StopPolling() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.ticker == nil {
		return
	}

	d.ticker.Stop()
	close(d.done)
	d.ticker = nil
	d.done = nil
}

// pollAndDeliver fetches, translates and hands the snapshot to the handler.
// A failed fetch skips this cycle; the timer is unaffected and the next
// tick polls again.
func (d *Device) pollAndDeliver() {
	status, err := d.poll()
	if err != nil {
		log.Warn().Err(err).Msg("Poll failed, skipping delivery")
		return
	}

	d.handler.OnStatus(status)
}
