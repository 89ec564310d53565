package config

import "time"

// TimeoutConfig holds the HTTP server timeouts used by `serve`.
// Store queries have no timeout; a slow query blocks its caller.
type TimeoutConfig struct {
	// Read is the maximum time to read a request. Default: 10s
	Read time.Duration

	// Write is the maximum time to write a response. Default: 30s
	Write time.Duration

	// Idle is how long keep-alive connections stay open. Default: 60s
	Idle time.Duration

	// Shutdown is the grace period for in-flight requests on exit. Default: 10s
	Shutdown time.Duration
}

// DefaultTimeoutConfig returns the default timeout configuration
func DefaultTimeoutConfig() *TimeoutConfig {
	return &TimeoutConfig{
		Read:     10 * time.Second,
		Write:    30 * time.Second,
		Idle:     60 * time.Second,
		Shutdown: 10 * time.Second,
	}
}

func loadTimeouts(l *Loader) *TimeoutConfig {
	d := DefaultTimeoutConfig()
	return &TimeoutConfig{
		Read:     l.Duration("http.read.timeout", d.Read),
		Write:    l.Duration("http.write.timeout", d.Write),
		Idle:     l.Duration("http.idle.timeout", d.Idle),
		Shutdown: l.Duration("http.shutdown.timeout", d.Shutdown),
	}
}
