package http

import (
	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/skill/session"
	"voice-timer-skill/pkg/alexa"
)

// toEnvelope normalizes the wire envelope.
func toEnvelope(req alexa.RequestEnvelope) skill.Envelope {
	r := req.Request
	rawType := alexa.GetRequestType(req)
	env := skill.Envelope{
		RequestType:      requestType(rawType),
		RawType:          rawType,
		RequestID:        r.RequestID,
		IntentName:       alexa.GetIntentName(req),
		Locale:           r.Locale,
		ConsentToken:     alexa.GetConsentToken(req),
		SessionEndReason: r.Reason,
	}

	if r.Intent != nil && len(r.Intent.Slots) > 0 {
		env.Slots = make(map[string]string, len(r.Intent.Slots))
		for name, slot := range r.Intent.Slots {
			if slot.Value != "" {
				env.Slots[name] = slot.Value
			}
		}
	}

	if req.Session != nil {
		env.SessionID = req.Session.SessionID
		env.NewSession = req.Session.New
		env.UserID = req.Session.User.UserID
	}
	if req.Context != nil {
		sys := req.Context.System
		env.APIEndpoint = sys.APIEndpoint
		env.APIAccessToken = sys.APIAccessToken
		if env.UserID == "" {
			env.UserID = sys.User.UserID
		}
	}

	if env.RequestType == skill.RequestConnectionsResponse {
		conn := &skill.Connection{Name: r.Name}
		if r.Status != nil {
			conn.StatusCode = r.Status.Code
			conn.StatusMessage = r.Status.Message
		}
		if r.Payload != nil {
			conn.PayloadStatus = r.Payload.Status
			conn.IsCardThrown = r.Payload.IsCardThrown
		}
		env.Connection = conn
	}
	return env
}

func requestType(raw string) skill.RequestType {
	switch raw {
	case alexa.RequestTypeLaunch:
		return skill.RequestLaunch
	case alexa.RequestTypeIntent:
		return skill.RequestIntent
	case alexa.RequestTypeConnectionsResponse:
		return skill.RequestConnectionsResponse
	case alexa.RequestTypeSessionEnded:
		return skill.RequestSessionEnded
	default:
		return skill.RequestUnknown
	}
}

func sessionSeed(req alexa.RequestEnvelope) map[string]any {
	if req.Session == nil {
		return nil
	}
	return req.Session.Attributes
}

// newResponseEnvelope renders resp. attrs is nil once the session is over.
func newResponseEnvelope(resp skill.Response, attrs *session.Attributes) alexa.ResponseEnvelope {
	out := alexa.ResponseEnvelope{Version: alexa.Version}
	if attrs != nil {
		if snap := attrs.Snapshot(); len(snap) > 0 {
			out.SessionAttributes = snap
		}
	}

	if resp.Speech != "" {
		out.Response.OutputSpeech = &alexa.OutputSpeech{Type: alexa.OutputSpeechPlainText, Text: resp.Speech}
	}
	if resp.Reprompt != "" {
		out.Response.Reprompt = &alexa.Reprompt{
			OutputSpeech: alexa.OutputSpeech{Type: alexa.OutputSpeechPlainText, Text: resp.Reprompt},
		}
	}
	out.Response.Card = resp.Card
	out.Response.Directives = resp.Directives

	// The platform rejects shouldEndSession next to a Connections.SendRequest.
	if !resp.HasSendRequest() {
		end := resp.ShouldEndSession
		out.Response.ShouldEndSession = &end
	}
	return out
}
