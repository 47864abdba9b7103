package test

import (
	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/skill/session"
	pkgLog "voice-timer-skill/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleDispatch(c *gin.Context)
	HandleResetSession(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(
	l pkgLog.Logger,
	disp skill.Dispatcher,
	store *session.Store,
) Handler {
	return &handler{
		l:     l,
		disp:  disp,
		store: store,
	}
}

// RegisterRoutes maps the simulator under /test.
func RegisterRoutes(r gin.IRouter, h Handler) {
	g := r.Group("/test")
	g.POST("/dispatch", h.HandleDispatch)
	g.POST("/reset", h.HandleResetSession)
	g.GET("/health", h.HandleHealthCheck)
}
