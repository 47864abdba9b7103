package skill

import (
	"context"

	"voice-timer-skill/internal/skill/session"
)

// Input is what every handler receives for one envelope.
type Input struct {
	Envelope Envelope
	Session  *session.Attributes
}

// Handler is one entry of the ordered request handler chain.
type Handler interface {
	// CanHandle reports whether the handler applies to in.
	CanHandle(in *Input) bool

	// Handle produces the response for in.
	Handle(ctx context.Context, in *Input) (Response, error)
}

// ErrorHandler turns a handler failure into a response.
type ErrorHandler interface {
	CanHandle(in *Input, err error) bool
	Handle(ctx context.Context, in *Input, err error) Response
}

// Dispatcher routes an Input to exactly one handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, in *Input) Response
}
