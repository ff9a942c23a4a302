// Package worker provides background catalog and rule refresh for VitaPlan.
package worker

import "time"

// RefreshConfig holds configuration for the refresh job.
type RefreshConfig struct {
	// Interval between periodic refreshes. Default: 15 minutes.
	Interval time.Duration

	// Timeout for one full refresh pass. Default: 30 seconds.
	Timeout time.Duration
}

// DefaultRefreshConfig returns the default refresh configuration.
func DefaultRefreshConfig() RefreshConfig {
	return RefreshConfig{
		Interval: 15 * time.Minute,
		Timeout:  30 * time.Second,
	}
}

func (c RefreshConfig) withDefaults() RefreshConfig {
	if c.Interval <= 0 {
		c.Interval = 15 * time.Minute
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return c
}
