package intent

import (
	"context"

	"voice-timer-skill/internal/skill"
)

func (h *handler) launch(ctx context.Context, in *skill.Input) (skill.Response, error) {
	if resp := EnsureConsent(in.Envelope); resp != nil {
		return *resp, nil
	}

	speech := SpeechWelcome + SpeechIntro
	return skill.NewResponseBuilder().Speak(speech).Reprompt(speech).Build(), nil
}
