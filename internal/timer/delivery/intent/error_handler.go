package intent

import (
	"context"

	"voice-timer-skill/internal/skill"
	pkgLog "voice-timer-skill/pkg/log"
)

// errorHandler is the catch-all: it accepts every failure.
type errorHandler struct {
	l pkgLog.Logger
}

func (e *errorHandler) CanHandle(*skill.Input, error) bool { return true }

func (e *errorHandler) Handle(ctx context.Context, in *skill.Input, err error) skill.Response {
	e.l.Errorf(ctx, "%s: type=%s intent=%s: %v", LogPrefixErrorHandle, in.Envelope.RawType, in.Envelope.IntentName, err)
	return skill.NewResponseBuilder().
		Speak(SpeechApology).
		Reprompt(SpeechApology).
		Build()
}
