package probe

import "errors"

// Sentinel errors returned by Run.
var (
	ErrInvalidConfig = errors.New("invalid probe config")
	ErrUnhealthy     = errors.New("service unhealthy")
	ErrCheckFailed   = errors.New("probe check failed")
)
