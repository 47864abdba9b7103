package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/skill/session"
	pkgLog "voice-timer-skill/pkg/log"
)

// Handler is the skill endpoint the voice platform calls.
type Handler interface {
	Handle(c *gin.Context)
}

// Config controls request verification.
type Config struct {
	// ApplicationID is the only skill id accepted. Empty accepts any.
	ApplicationID string
	// TimestampTolerance bounds the request timestamp's distance from now.
	// Zero disables the check.
	TimestampTolerance time.Duration
}

type handler struct {
	l     pkgLog.Logger
	disp  skill.Dispatcher
	store *session.Store
	cfg   Config
	now   func() time.Time
}

// New creates the skill endpoint handler.
func New(l pkgLog.Logger, disp skill.Dispatcher, store *session.Store, cfg Config) Handler {
	return &handler{
		l:     l,
		disp:  disp,
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}
