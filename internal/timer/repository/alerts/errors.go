package alerts

import (
	"errors"
	"fmt"
	"net/http"

	"voice-timer-skill/internal/timer"
)

// ErrTooManyPages is returned when listing does not finish within maxListPages.
var ErrTooManyPages = errors.New("timer list did not finish paging")

// APIError is a non-2xx answer from the timer API.
type APIError struct {
	Operation  string
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("timer API %s error %d (%s): %s", e.Operation, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("timer API %s error %d: %s", e.Operation, e.StatusCode, e.Message)
}

// Is maps status codes onto the timer package errors, so callers can test
// with errors.Is(err, timer.ErrUnauthorized) without knowing about HTTP.
func (e *APIError) Is(target error) bool {
	switch target {
	case timer.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case timer.ErrTimerNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
