package skill

import "context"

// Predicate decides whether an action applies to an input.
type Predicate func(in *Input) bool

// Action produces the response for an input.
type Action func(ctx context.Context, in *Input) (Response, error)

type funcHandler struct {
	name   string
	pred   Predicate
	action Action
}

// Match adapts a predicate/action pair into a named Handler.
func Match(name string, pred Predicate, action Action) Handler {
	return &funcHandler{name: name, pred: pred, action: action}
}

func (h *funcHandler) Name() string { return h.name }

func (h *funcHandler) CanHandle(in *Input) bool { return h.pred(in) }

func (h *funcHandler) Handle(ctx context.Context, in *Input) (Response, error) {
	return h.action(ctx, in)
}

// IntentIs matches intent requests with one of names.
func IntentIs(names ...string) Predicate {
	return func(in *Input) bool {
		return in.Envelope.IsIntent(names...)
	}
}

// RequestIs matches a request type.
func RequestIs(t RequestType) Predicate {
	return func(in *Input) bool {
		return in.Envelope.RequestType == t
	}
}

// Always matches every input.
func Always() Predicate {
	return func(*Input) bool { return true }
}
