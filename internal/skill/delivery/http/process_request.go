package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"voice-timer-skill/pkg/alexa"
)

// processRequest binds the request envelope. Bind errors are returned as is;
// verification failures wrap one of the package errors.
func (h *handler) processRequest(c *gin.Context) (alexa.RequestEnvelope, error) {
	var req alexa.RequestEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.Request.Type == "" {
		return req, ErrMissingRequestType
	}
	return req, nil
}

// verify checks that the envelope targets this skill and is fresh.
func (h *handler) verify(req alexa.RequestEnvelope) error {
	if h.cfg.ApplicationID != "" {
		if got := alexa.GetApplicationID(req); got != h.cfg.ApplicationID {
			return fmt.Errorf("%w: got %q", ErrApplicationMismatch, got)
		}
	}

	if h.cfg.TimestampTolerance <= 0 {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, req.Request.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimestamp, req.Request.Timestamp)
	}
	skew := h.now().Sub(ts)
	if skew < 0 {
		skew = -skew
	}
	if skew > h.cfg.TimestampTolerance {
		return fmt.Errorf("%w: skew %s", ErrStaleRequest, skew)
	}
	return nil
}
