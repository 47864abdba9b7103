package skill

import (
	"voice-timer-skill/pkg/alexa"
)

// ResponseBuilder accumulates speech, reprompt and directives.
// The zero value is ready to use and ends the session unless a reprompt is set.
type ResponseBuilder struct {
	resp       Response
	endSession *bool
}

// NewResponseBuilder returns an empty builder.
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

// Speak sets the speech text, replacing any previous value.
func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.resp.Speech = text
	return b
}

// Reprompt sets the reprompt text and keeps the session open.
func (b *ResponseBuilder) Reprompt(text string) *ResponseBuilder {
	b.resp.Reprompt = text
	return b
}

// AddDirective appends d to the directive list.
func (b *ResponseBuilder) AddDirective(d alexa.Directive) *ResponseBuilder {
	b.resp.Directives = append(b.resp.Directives, d)
	return b
}

// WithAskForPermissionsConsentCard attaches a consent card for scopes.
func (b *ResponseBuilder) WithAskForPermissionsConsentCard(scopes ...string) *ResponseBuilder {
	b.resp.Card = &alexa.Card{
		Type:        alexa.CardAskForPermissionsConsent,
		Permissions: scopes,
	}
	return b
}

// WithShouldEndSession overrides the session end flag.
func (b *ResponseBuilder) WithShouldEndSession(end bool) *ResponseBuilder {
	b.endSession = &end
	return b
}

// Build returns the accumulated Response.
func (b *ResponseBuilder) Build() Response {
	resp := b.resp
	resp.Directives = append([]alexa.Directive(nil), b.resp.Directives...)
	switch {
	case b.endSession != nil:
		resp.ShouldEndSession = *b.endSession
	default:
		resp.ShouldEndSession = resp.Reprompt == ""
	}
	return resp
}
