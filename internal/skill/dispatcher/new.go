package dispatcher

import (
	"time"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/pkg/log"
)

// Dispatcher holds the ordered handler chain. Handlers are registered once
// at startup and never mutated afterwards; registration is not safe to
// interleave with Dispatch.
type Dispatcher struct {
	l             log.Logger
	handlers      []skill.Handler
	errorHandlers []skill.ErrorHandler
	timeout       time.Duration
	fallback      skill.Response
}

// Ensure Dispatcher implements skill.Dispatcher
var _ skill.Dispatcher = (*Dispatcher)(nil)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTimeout bounds every dispatch, including all remote calls made by the
// chosen handler.
func WithTimeout(d time.Duration) Option {
	return func(disp *Dispatcher) {
		disp.timeout = d
	}
}

// WithFallback overrides the response used when no error handler applies.
func WithFallback(resp skill.Response) Option {
	return func(disp *Dispatcher) {
		disp.fallback = resp
	}
}

// New creates a Dispatcher with an empty chain.
func New(l log.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		l: l,
		fallback: skill.NewResponseBuilder().
			Speak(FallbackSpeech).
			Reprompt(FallbackSpeech).
			Build(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register appends handlers to the chain. Order is significant: the first
// handler whose CanHandle returns true wins, so general handlers go last.
func (d *Dispatcher) Register(handlers ...skill.Handler) *Dispatcher {
	d.handlers = append(d.handlers, handlers...)
	return d
}

// RegisterFunc appends a predicate/action pair.
func (d *Dispatcher) RegisterFunc(name string, pred skill.Predicate, action skill.Action) *Dispatcher {
	return d.Register(skill.Match(name, pred, action))
}

// RegisterErrorHandler appends error handlers, consulted in order.
func (d *Dispatcher) RegisterErrorHandler(handlers ...skill.ErrorHandler) *Dispatcher {
	d.errorHandlers = append(d.errorHandlers, handlers...)
	return d
}

// Len returns the number of registered request handlers.
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}
