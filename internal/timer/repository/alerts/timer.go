package alerts

import (
	"context"
	"fmt"
	"time"

	"voice-timer-skill/internal/timer"
	pkgLog "voice-timer-skill/pkg/log"
)

// implRepository implements timer.Service on top of Client.
type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

var _ timer.Service = (*implRepository)(nil)

// List returns all timers of the skill, following nextToken across pages.
func (r *implRepository) List(ctx context.Context) (timer.List, error) {
	var out timer.List
	token := ""
	for page := 0; ; page++ {
		if page == maxListPages {
			return timer.List{}, fmt.Errorf("alerts.List: %w", ErrTooManyPages)
		}
		resp, err := r.client.ListTimers(ctx, token)
		if err != nil {
			return timer.List{}, fmt.Errorf("alerts.List: %w", err)
		}
		for _, t := range resp.Timers {
			out.Timers = append(out.Timers, r.toTimer(ctx, t))
		}
		out.TotalCount = max(resp.TotalCount, len(out.Timers))
		if resp.NextToken == "" || resp.NextToken == token {
			break
		}
		token = resp.NextToken
	}
	r.l.Debugf(ctx, "alerts.List: totalCount=%d", out.TotalCount)
	return out, nil
}

// Create creates a timer from spec.
func (r *implRepository) Create(ctx context.Context, spec timer.CreateSpec) (timer.CreateResult, error) {
	resp, err := r.client.CreateTimer(ctx, toCreateRequest(spec))
	if err != nil {
		return timer.CreateResult{}, fmt.Errorf("alerts.Create: %w", err)
	}
	r.l.Infof(ctx, "alerts.Create: id=%s status=%s", resp.ID, resp.Status)
	return timer.CreateResult{ID: resp.ID, Status: timer.Status(resp.Status)}, nil
}

// Get returns one timer.
func (r *implRepository) Get(ctx context.Context, id string) (timer.Timer, error) {
	if id == "" {
		return timer.Timer{}, timer.ErrEmptyTimerID
	}
	resp, err := r.client.GetTimer(ctx, id)
	if err != nil {
		return timer.Timer{}, fmt.Errorf("alerts.Get: %w", err)
	}
	return r.toTimer(ctx, *resp), nil
}

func (r *implRepository) Pause(ctx context.Context, id string) error {
	if id == "" {
		return timer.ErrEmptyTimerID
	}
	if err := r.client.PauseTimer(ctx, id); err != nil {
		return fmt.Errorf("alerts.Pause: %w", err)
	}
	return nil
}

func (r *implRepository) Resume(ctx context.Context, id string) error {
	if id == "" {
		return timer.ErrEmptyTimerID
	}
	if err := r.client.ResumeTimer(ctx, id); err != nil {
		return fmt.Errorf("alerts.Resume: %w", err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return timer.ErrEmptyTimerID
	}
	if err := r.client.DeleteTimer(ctx, id); err != nil {
		return fmt.Errorf("alerts.Delete: %w", err)
	}
	return nil
}

func (r *implRepository) DeleteAll(ctx context.Context) error {
	if err := r.client.DeleteTimers(ctx); err != nil {
		return fmt.Errorf("alerts.DeleteAll: %w", err)
	}
	return nil
}

// ---- mapping ----

func toCreateRequest(spec timer.CreateSpec) CreateTimerRequest {
	visibility := VisibilityHidden
	if spec.Visible {
		visibility = VisibilityVisible
	}

	req := CreateTimerRequest{
		Duration:   spec.Duration,
		TimerLabel: spec.Label,
		CreationBehavior: CreationBehavior{
			DisplayExperience: DisplayExperience{Visibility: visibility},
		},
		TriggeringBehavior: TriggeringBehavior{
			Operation:          Operation{Type: OperationAnnounce},
			NotificationConfig: NotificationConfig{PlayAudible: spec.PlayAudible},
		},
	}
	if spec.AnnounceText != "" {
		req.TriggeringBehavior.Operation.TextToAnnounce = []TextToAnnounce{
			{Locale: spec.Locale, Text: spec.AnnounceText},
		}
	}
	return req
}

func (r *implRepository) toTimer(ctx context.Context, t TimerResponse) timer.Timer {
	return timer.Timer{
		ID:            t.ID,
		Status:        timer.Status(t.Status),
		Duration:      t.Duration,
		Label:         t.TimerLabel,
		CreatedTime:   r.parseTime(ctx, "createdTime", t.CreatedTime),
		TriggerTime:   r.parseTime(ctx, "triggerTime", t.TriggerTime),
		RemainingTime: t.RemainingTimeWhenPaused,
	}
}

func (r *implRepository) parseTime(ctx context.Context, field, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		r.l.Warnf(ctx, "alerts: unparseable %s %q: %v", field, value, err)
		return time.Time{}
	}
	return ts
}
