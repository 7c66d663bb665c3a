package ui

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

var logger = logrus.StandardLogger()

// SetLogger replaces the package logger used for cache-flush diagnostics.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

// PresenceError is returned when a presence or absence wait times out.
// Label identifies the element by its locator.
type PresenceError struct {
	Label        string
	Timeout      time.Duration
	StillPresent bool
}

func (e *PresenceError) Error() string {
	if e.StillPresent {
		return fmt.Sprintf("%s is still present after %s", e.Label, e.Timeout)
	}
	return fmt.Sprintf("%s is still absent after %s", e.Label, e.Timeout)
}

// IndexError is returned when an indexed lookup finds fewer matches than
// the requested ordinal. It signals a declaration or page-structure bug,
// so it is never retried.
type IndexError struct {
	Label string
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range, %d node(s) matched", e.Label, e.Index, e.Count)
}
