package intent

import (
	"context"
	"fmt"

	"voice-timer-skill/internal/skill"
)

func (h *handler) help(ctx context.Context, in *skill.Input) (skill.Response, error) {
	return skill.NewResponseBuilder().
		Speak(SpeechHelp).
		Reprompt(SpeechHelp).
		Build(), nil
}

func (h *handler) cancelAndStop(ctx context.Context, in *skill.Input) (skill.Response, error) {
	return skill.NewResponseBuilder().
		Speak(SpeechGoodbye).
		WithShouldEndSession(true).
		Build(), nil
}

// sessionEnded only logs; the platform ignores any speech here and the
// session entry is dropped by the delivery layer.
func (h *handler) sessionEnded(ctx context.Context, in *skill.Input) (skill.Response, error) {
	h.l.Infof(ctx, "%s: session=%s reason=%s", LogPrefixSessionEnd, in.Envelope.SessionID, in.Envelope.SessionEndReason)
	return skill.NewResponseBuilder().WithShouldEndSession(true).Build(), nil
}

// intentReflector echoes intents no other handler claimed.
func (h *handler) intentReflector(ctx context.Context, in *skill.Input) (skill.Response, error) {
	return skill.NewResponseBuilder().
		Speak(fmt.Sprintf(SpeechReflector, in.Envelope.IntentName)).
		Build(), nil
}
