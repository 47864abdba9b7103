package skill

import (
	"voice-timer-skill/pkg/alexa"
)

// RequestType is the normalized kind of an inbound envelope.
type RequestType string

const (
	RequestLaunch              RequestType = "Launch"
	RequestIntent              RequestType = "Intent"
	RequestConnectionsResponse RequestType = "ConnectionsResponse"
	RequestSessionEnded        RequestType = "SessionEnded"
	RequestUnknown             RequestType = "Unknown"
)

// Envelope is the normalized inbound event. It is treated as immutable for
// the duration of one dispatch.
type Envelope struct {
	RequestType RequestType
	RawType     string
	RequestID   string
	IntentName  string
	Slots       map[string]string
	SessionID   string
	NewSession  bool
	UserID      string
	Locale      string

	// ConsentToken is empty when the user has not granted the timer scope.
	ConsentToken string

	APIEndpoint    string
	APIAccessToken string

	Connection       *Connection
	SessionEndReason string
}

// Connection is the result of a Connections.SendRequest round trip.
type Connection struct {
	Name          string
	StatusCode    string
	StatusMessage string
	PayloadStatus string
	IsCardThrown  bool
}

// Slot returns the value of the named slot, or "".
func (e Envelope) Slot(name string) string {
	return e.Slots[name]
}

// IsIntent reports whether e is an intent request for any of names.
func (e Envelope) IsIntent(names ...string) bool {
	if e.RequestType != RequestIntent {
		return false
	}
	for _, n := range names {
		if e.IntentName == n {
			return true
		}
	}
	return false
}

// Response is the outbound result of one dispatch.
type Response struct {
	Speech           string
	Reprompt         string
	Directives       []alexa.Directive
	Card             *alexa.Card
	ShouldEndSession bool
}

// HasSendRequest reports whether r hands the conversation to the platform
// through a Connections.SendRequest directive.
func (r Response) HasSendRequest() bool {
	for _, d := range r.Directives {
		if d.Type == alexa.DirectiveConnectionsSendRequest {
			return true
		}
	}
	return false
}

// EndsSession reports whether the session is over once r answers a request
// of type rt. A SendRequest keeps it alive for the connection response.
func (r Response) EndsSession(rt RequestType) bool {
	if rt == RequestSessionEnded {
		return true
	}
	return r.ShouldEndSession && !r.HasSendRequest()
}
