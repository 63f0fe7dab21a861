package sync

import "errors"

var (
	// ErrPassInFlight is returned by RunPass when another pass has not finished yet
	ErrPassInFlight = errors.New("sync pass already in flight")

	// ErrAlreadyRunning is returned by Start on a running scheduler
	ErrAlreadyRunning = errors.New("scheduler already running")

	// ErrInvalidInterval is returned by Start for a non-positive interval
	ErrInvalidInterval = errors.New("sync interval must be positive")
)
