package intent

import (
	"context"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/pkg/alexa"
)

func isAskForResponse(in *skill.Input) bool {
	return in.Envelope.RequestType == skill.RequestConnectionsResponse &&
		in.Envelope.Connection != nil &&
		in.Envelope.Connection.Name == alexa.ConnectionAskFor
}

// askForResponse handles the platform's answer to a consent request.
func (h *handler) askForResponse(ctx context.Context, in *skill.Input) (skill.Response, error) {
	conn := in.Envelope.Connection
	b := skill.NewResponseBuilder()

	if conn.StatusCode != ConnectionStatusOK {
		if conn.StatusCode == ConnectionStatusBadRequest {
			h.l.Warnf(ctx, "%s: permission scope missing from the skill configuration: %s", LogPrefixAskFor, conn.StatusMessage)
		} else {
			h.l.Errorf(ctx, "%s: status=%s message=%s", LogPrefixAskFor, conn.StatusCode, conn.StatusMessage)
		}
		return b.Speak(SpeechConsentError).WithShouldEndSession(true).Build(), nil
	}

	switch conn.PayloadStatus {
	case alexa.ConsentAccepted:
		return b.Speak(SpeechConsentAccepted).Reprompt(SpeechWhatNextShort).Build(), nil
	case alexa.ConsentDenied, alexa.ConsentNotAnswered:
		b.Speak(SpeechConsentDenied)
	}

	if !conn.IsCardThrown {
		b.Speak(SpeechConsentCardSent).WithAskForPermissionsConsentCard(alexa.PermissionTimersReadWrite)
	}
	return b.WithShouldEndSession(true).Build(), nil
}
