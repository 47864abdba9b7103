package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/pkg/log"
	"voice-timer-skill/pkg/metrics"
	"voice-timer-skill/pkg/response"
)

// Handle godoc
// @Summary     Skill endpoint
// @Description Receives a voice platform request envelope, dispatches it to the timer skill and returns the response envelope.
// @Tags        Skill
// @Accept      json
// @Produce     json
// @Param       body body alexa.RequestEnvelope true "Request envelope"
// @Success     200 {object} alexa.ResponseEnvelope
// @Failure     400 {object} response.Resp "Malformed envelope"
// @Failure     403 {object} response.Resp "Verification failed"
// @Router      /alexa [POST]
func (h *handler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "skill.delivery.http.Handle: processRequest: %v", err)
		response.Error(c, err, nil)
		return
	}

	if err := h.verify(req); err != nil {
		h.l.Warnf(ctx, "skill.delivery.http.Handle: verify: %v", err)
		response.ForbiddenWithError(c, err)
		return
	}

	env := toEnvelope(req)
	ctx = log.WithSessionID(ctx, env.SessionID)

	attrs := h.store.Load(env.SessionID, sessionSeed(req))
	resp := h.disp.Dispatch(ctx, &skill.Input{Envelope: env, Session: attrs})

	attrs = h.store.Commit(attrs, resp.EndsSession(env.RequestType))
	metrics.SetActiveSessions(h.store.Len())

	c.JSON(http.StatusOK, newResponseEnvelope(resp, attrs))
}
