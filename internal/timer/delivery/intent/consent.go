package intent

import (
	"errors"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/timer"
	"voice-timer-skill/pkg/alexa"
)

// EnsureConsent returns a response asking the platform for the timer
// permission when env carries no consent token, and nil when the caller may
// proceed. Consent-gated actions must return the non-nil response unchanged.
func EnsureConsent(env skill.Envelope) *skill.Response {
	if env.ConsentToken != "" {
		return nil
	}
	resp := consentRequest()
	return &resp
}

func consentRequest() skill.Response {
	b := skill.NewResponseBuilder()
	d, err := alexa.NewAskForPermissionsDirective(alexa.PermissionTimersReadWrite)
	if err != nil {
		b.Speak(SpeechConsentCardSent).WithAskForPermissionsConsentCard(alexa.PermissionTimersReadWrite)
	} else {
		b.AddDirective(d)
	}
	return b.Build()
}

// failure answers a failed timer call. A revoked permission asks for consent
// again, anything else gets the apology.
func failure(err error, speech string) skill.Response {
	if errors.Is(err, timer.ErrUnauthorized) {
		return consentRequest()
	}
	return apology(speech)
}
