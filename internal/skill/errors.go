package skill

import "errors"

// Domain-specific errors for the skill package.
var (
	ErrNoHandler    = errors.New("no request handler matched")
	ErrHandlerPanic = errors.New("request handler panicked")
	ErrNilInput     = errors.New("input is nil")
)
