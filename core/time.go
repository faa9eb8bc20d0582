// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) Time {
	var t Time
	if cfg.EventPollDelay > 0 {
		t.eventTicker = time.NewTicker(time.Duration(cfg.EventPollDelay) * time.Millisecond)
	}
	return t
}

// Time contains the tickers that pace the event loop
type Time struct {
	eventTicker *time.Ticker
}

// Wait blocks until the next event poll is due,
// it returns at once when polling is not throttled
func (t *Time) Wait() {
	if t.eventTicker != nil {
		<-t.eventTicker.C
	}
}

// Stop releases the tickers
func (t *Time) Stop() {
	if t.eventTicker != nil {
		t.eventTicker.Stop()
	}
}
