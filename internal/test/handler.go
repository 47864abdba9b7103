package test

import (
	"fmt"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/skill/session"
	pkgLog "voice-timer-skill/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type handler struct {
	l     pkgLog.Logger
	disp  skill.Dispatcher
	store *session.Store
}

// HandleDispatch runs one simulated turn through the real handler chain
// @Summary Simulate a skill turn
// @Description Build an envelope from a compact description, dispatch it and return the response with the session state
// @Tags test
// @Accept json
// @Produce json
// @Param request body DispatchRequest true "Simulated turn"
// @Success 200 {object} DispatchResponse
// @Router /test/dispatch [post]
func (h *handler) HandleDispatch(c *gin.Context) {
	ctx := c.Request.Context()

	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if req.SessionID == "" {
		req.SessionID = "test-session-" + uuid.NewString()
	}

	env := toEnvelope(req)
	attrs := h.store.Load(env.SessionID, nil)
	resp := h.disp.Dispatch(pkgLog.WithSessionID(ctx, env.SessionID), &skill.Input{Envelope: env, Session: attrs})

	kept := h.store.Commit(attrs, resp.EndsSession(env.RequestType))

	h.l.Infof(ctx, "internal.test.HandleDispatch: type=%s intent=%s speech=%q", env.RequestType, env.IntentName, resp.Speech)

	out := DispatchResponse{
		Speech:           resp.Speech,
		Reprompt:         resp.Reprompt,
		HasCard:          resp.Card != nil,
		ShouldEndSession: resp.ShouldEndSession,
		SessionID:        env.SessionID,
		SessionEnded:     kept == nil,
		Session:          attrs.Snapshot(),
	}
	for _, d := range resp.Directives {
		out.Directives = append(out.Directives, d.Type)
	}
	c.JSON(200, out)
}

// HandleResetSession drops a simulated session
// @Summary Reset test session
// @Description Clear the stored state of a session
// @Tags test
// @Accept json
// @Produce json
// @Param request body ResetSessionRequest true "Reset session"
// @Success 200 {object} ResetSessionResponse
// @Router /test/reset [post]
func (h *handler) HandleResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		c.JSON(400, gin.H{"error": "Invalid request", "details": "session_id is required"})
		return
	}

	h.store.Delete(req.SessionID)

	h.l.Infof(ctx, "internal.test.HandleResetSession: Cleared session_id=%s", req.SessionID)

	c.JSON(200, ResetSessionResponse{
		Success:   true,
		Message:   fmt.Sprintf("Session cleared: %s", req.SessionID),
		SessionID: req.SessionID,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(200, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}

func toEnvelope(req DispatchRequest) skill.Envelope {
	rt := skill.RequestType(req.RequestType)
	if rt == "" {
		rt = skill.RequestIntent
	}
	env := skill.Envelope{
		RequestType:    rt,
		RawType:        string(rt),
		RequestID:      "test-" + uuid.NewString(),
		IntentName:     req.Intent,
		Slots:          req.Slots,
		SessionID:      req.SessionID,
		Locale:         "ja-JP",
		ConsentToken:   req.ConsentToken,
		APIEndpoint:    req.APIEndpoint,
		APIAccessToken: req.APIAccessToken,
	}
	if rt == skill.RequestConnectionsResponse {
		env.Connection = &skill.Connection{
			Name:          "AskFor",
			StatusCode:    req.ConnectionStatus,
			PayloadStatus: req.ConsentStatus,
			IsCardThrown:  req.IsCardThrown,
		}
	}
	return env
}
