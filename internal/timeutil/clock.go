// Package timeutil provides a testable abstraction over the wall clock.
package timeutil

import "time"

// Clock provides the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Since returns the duration since t.
	Since(t time.Time) time.Duration
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

func (RealClock) Now() time.Time                  { return time.Now() }
func (RealClock) Since(t time.Time) time.Duration { return time.Since(t) }

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time                  { return c.T }
func (c FixedClock) Since(t time.Time) time.Duration { return c.T.Sub(t) }

// FormatTimestamp formats t as a file name suffix, e.g. 20261018_093000.
func FormatTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}
