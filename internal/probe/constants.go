package probe

import "time"

// Default configuration constants.
const (
	DefaultRequests = 200
	DefaultTimeout  = 10 * time.Second
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Reporting constants.
const (
	PercentageMultiplier = 100
	maxLoggedFailures    = 20
)

// unknownRoute is requested to confirm the JSON not found body.
const unknownRoute = "/api/nonexistent"
