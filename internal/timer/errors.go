package timer

import "errors"

// Domain-specific errors for the timer package.
var (
	ErrEmptyTimerID    = errors.New("timer id is empty")
	ErrNoAPIEndpoint   = errors.New("timer api endpoint is empty")
	ErrNoAccessToken   = errors.New("timer api access token is empty")
	ErrTimerNotStarted = errors.New("timer did not start")
	ErrTimerNotFound   = errors.New("timer not found")
	// ErrUnauthorized means the user no longer grants the timer permission.
	ErrUnauthorized = errors.New("timer permission not granted")
)
