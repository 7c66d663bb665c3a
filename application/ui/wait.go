package ui

import (
	"fmt"
	"time"
)

// Defaults for presence/absence polling.
const (
	DefaultTimeout  = 5 * time.Second
	DefaultInterval = 100 * time.Millisecond
)

// TimeoutError is returned by Poll when the condition never became true
// within the window.
type TimeoutError struct {
	Desc    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s after %s", e.Desc, e.Timeout)
}

// Poll evaluates cond repeatedly, sleeping interval between evaluations,
// until it returns true or timeout elapses. cond must be cheap and safe to
// call repeatedly. Non-positive timeout or interval fall back to the
// package defaults.
func Poll(cond func() bool, timeout, interval time.Duration, desc string) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	deadline := time.Now().Add(timeout)
	for {
		if cond() {
			return nil
		}
		if time.Now().After(deadline) {
			return &TimeoutError{Desc: desc, Timeout: timeout}
		}
		time.Sleep(interval)
	}
}
