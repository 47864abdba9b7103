package intent

import (
	"context"

	"golang.org/x/sync/errgroup"

	"voice-timer-skill/internal/timer"
	"voice-timer-skill/pkg/metrics"
)

// fanoutResult summarizes one per-timer operation applied to many timers.
type fanoutResult struct {
	Attempted int
	Failed    int
	Errs      []error
}

// AllFailed reports whether at least one call ran and none succeeded.
func (r fanoutResult) AllFailed() bool {
	return r.Attempted > 0 && r.Failed == r.Attempted
}

// Partial reports whether some but not all calls failed.
func (r fanoutResult) Partial() bool {
	return r.Failed > 0 && r.Failed < r.Attempted
}

// fanout runs call for every timer with at most h.cfg.FanoutLimit calls in
// flight and waits for all of them. A failed call never cancels the others.
func (h *handler) fanout(ctx context.Context, op string, timers []timer.Timer, call func(ctx context.Context, id string) error) fanoutResult {
	errs := make([]error, len(timers))

	var g errgroup.Group
	g.SetLimit(h.cfg.FanoutLimit)
	for i, t := range timers {
		i, t := i, t
		g.Go(func() error {
			errs[i] = call(ctx, t.ID)
			metrics.RecordFanoutResult(op, errs[i] == nil)
			return nil
		})
	}
	_ = g.Wait()

	res := fanoutResult{Attempted: len(timers)}
	for _, err := range errs {
		if err != nil {
			res.Failed++
			res.Errs = append(res.Errs, err)
		}
	}
	return res
}
