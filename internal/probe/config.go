package probe

import (
	"runtime"
	"time"
)

// Config holds configuration for a probe run
type Config struct {
	BaseURL  string        // Base URL of the service
	Requests int           // Requests per API route
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Log every violation instead of a sample
}

// DefaultConfig returns the command line defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  "http://localhost:5000",
		Requests: DefaultRequests,
		Workers:  runtime.NumCPU() * WorkerChannelMultiplier,
		Timeout:  DefaultTimeout,
	}
}

// Failure records one bad response.
type Failure struct {
	Route     string
	RequestID string
	Reason    string
}

// Stats holds probe statistics
type Stats struct {
	Healthy          bool
	RequestsSent     int
	RequestsOK       int
	RequestsFailed   int
	Violations       int
	NotFoundVerified bool
	Failures         []Failure
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

// SuccessRate is the percentage of snapshot requests that passed every check.
func (s *Stats) SuccessRate() float64 {
	if s.RequestsSent == 0 {
		return 0
	}
	return float64(s.RequestsOK) / float64(s.RequestsSent) * PercentageMultiplier
}
