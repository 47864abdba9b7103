package dispatcher

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/pkg/metrics"
	"voice-timer-skill/pkg/tracing"
)

// Dispatch runs the first handler that accepts in and returns its response.
// It never fails: handler errors and panics are routed to the error handlers,
// and to the fixed fallback response when none of them applies.
func (d *Dispatcher) Dispatch(ctx context.Context, in *skill.Input) skill.Response {
	start := time.Now()

	if in == nil {
		d.l.Errorf(ctx, "%s: %v", LogPrefixDispatch, skill.ErrNilInput)
		metrics.RecordDispatch(string(skill.RequestUnknown), HandlerNameNilInput, OutcomeFallback, time.Since(start).Seconds())
		return d.fallback
	}

	env := in.Envelope
	ctx, span := tracing.StartSpan(ctx, SpanDispatch)
	defer span.End()
	span.SetAttributes(
		attribute.String(AttrRequestType, string(env.RequestType)),
		attribute.String(AttrIntentName, env.IntentName),
	)

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	h, name := d.find(in)
	span.SetAttributes(attribute.String(AttrHandler, name))

	var (
		resp skill.Response
		err  error
	)
	if h == nil {
		err = fmt.Errorf("%w: type=%s intent=%q", skill.ErrNoHandler, env.RawType, env.IntentName)
	} else {
		resp, err = d.invoke(ctx, h, in)
	}

	outcome := OutcomeHandled
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.l.Errorf(ctx, "%s: handler %s failed: %v", LogPrefixDispatch, name, err)

		var recovered bool
		resp, recovered = d.handleError(ctx, in, err)
		outcome = OutcomeRecovered
		if !recovered {
			outcome = OutcomeFallback
		}
	}

	metrics.RecordDispatch(string(env.RequestType), name, outcome, time.Since(start).Seconds())
	return resp
}

// find returns the first handler accepting in, in registration order.
func (d *Dispatcher) find(in *skill.Input) (skill.Handler, string) {
	for i, h := range d.handlers {
		if d.safeCanHandle(h, in) {
			return h, handlerName(h, i)
		}
	}
	return nil, HandlerNameUnmatched
}

// safeCanHandle treats a panicking predicate as a non-match.
func (d *Dispatcher) safeCanHandle(h skill.Handler, in *skill.Input) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return h.CanHandle(in)
}

func (d *Dispatcher) invoke(ctx context.Context, h skill.Handler, in *skill.Input) (resp skill.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", skill.ErrHandlerPanic, r)
		}
	}()
	return h.Handle(ctx, in)
}

// handleError returns the response of the first applicable error handler, or
// the fallback response and false.
func (d *Dispatcher) handleError(ctx context.Context, in *skill.Input, err error) (resp skill.Response, recovered bool) {
	defer func() {
		if r := recover(); r != nil {
			d.l.Errorf(ctx, "%s: error handler panicked: %v", LogPrefixDispatch, r)
			resp, recovered = d.fallback, false
		}
	}()

	for _, eh := range d.errorHandlers {
		if eh.CanHandle(in, err) {
			return eh.Handle(ctx, in, err), true
		}
	}
	return d.fallback, false
}

func handlerName(h skill.Handler, position int) string {
	if named, ok := h.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T#%d", h, position)
}
