package datemath

import (
	"errors"
	"time"
)

// MaxTimerDuration is the longest timer the timer service accepts.
const MaxTimerDuration = 24 * time.Hour

var (
	ErrInvalidDuration  = errors.New("invalid ISO-8601 duration")
	ErrDurationNotSet   = errors.New("duration must be positive")
	ErrDurationTooLong  = errors.New("duration exceeds 24 hours")
	ErrUnsupportedUnits = errors.New("year, month and week units are not supported")
)
