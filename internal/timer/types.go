package timer

import "time"

// Status is the lifecycle state of a timer as reported by the timer service.
type Status string

const (
	StatusOn     Status = "ON"
	StatusOff    Status = "OFF"
	StatusPaused Status = "PAUSED"
)

// Timer is a timer owned by the remote timer service.
type Timer struct {
	ID            string
	Status        Status
	Duration      string // ISO-8601, e.g. "PT5M"
	Label         string
	CreatedTime   time.Time
	TriggerTime   time.Time
	RemainingTime string // ISO-8601, set while paused
}

// List is the result of listing timers.
type List struct {
	TotalCount int
	Timers     []Timer
}

// Empty reports whether no timer is set.
func (l List) Empty() bool {
	return l.TotalCount == 0 && len(l.Timers) == 0
}

// WithStatus returns the timers in status s, preserving list order.
func (l List) WithStatus(s Status) []Timer {
	var out []Timer
	for _, t := range l.Timers {
		if t.Status == s {
			out = append(out, t)
		}
	}
	return out
}

// CreateSpec describes a timer to create.
type CreateSpec struct {
	Duration     string
	Label        string
	Locale       string
	AnnounceText string
	Visible      bool
	PlayAudible  bool
}

// CreateResult is what the timer service returns for a created timer.
type CreateResult struct {
	ID     string
	Status Status
}

// Outcome is the checked result of an operation whose success depends on
// the returned payload rather than on the transport.
type Outcome struct {
	OK         bool
	StatusCode int
	Message    string
}

// StatusCodeNotStarted marks a created timer that did not start.
const StatusCodeNotStarted = 308

// Started checks that a created timer is running.
func Started(res CreateResult) Outcome {
	if res.Status == StatusOn && res.ID != "" {
		return Outcome{OK: true, StatusCode: 200}
	}
	return Outcome{
		OK:         false,
		StatusCode: StatusCodeNotStarted,
		Message:    "Timer did not start",
	}
}
