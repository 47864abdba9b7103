package alexa

import "encoding/json"

// RequestEnvelope is the body the platform POSTs to the skill endpoint.
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context *Context `json:"context,omitempty"`
	Request Request  `json:"request"`
}

type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	User        User           `json:"user"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID      string       `json:"userId"`
	AccessToken string       `json:"accessToken,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

type Permissions struct {
	ConsentToken string `json:"consentToken,omitempty"`
}

type Context struct {
	System System `json:"System"`
}

type System struct {
	Application    Application `json:"application"`
	User           User        `json:"user"`
	APIEndpoint    string      `json:"apiEndpoint"`
	APIAccessToken string      `json:"apiAccessToken"`
}

// Request is the union of every request type the skill handles.
// Fields not used by a given type are left zero.
type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
	Locale    string `json:"locale,omitempty"`

	// IntentRequest
	Intent *Intent `json:"intent,omitempty"`

	// Connections.Response
	Name    string             `json:"name,omitempty"`
	Status  *ConnectionStatus  `json:"status,omitempty"`
	Payload *ConnectionPayload `json:"payload,omitempty"`
	Token   string             `json:"token,omitempty"`

	// SessionEndedRequest
	Reason string        `json:"reason,omitempty"`
	Error  *RequestError `json:"error,omitempty"`
}

type Intent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

type ConnectionStatus struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ConnectionPayload struct {
	Status          string `json:"status,omitempty"`
	IsCardThrown    bool   `json:"isCardThrown,omitempty"`
	PermissionScope string `json:"permissionScope,omitempty"`
}

type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ResponseEnvelope is the body returned to the platform.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Directives       []Directive   `json:"directives,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type Card struct {
	Type        string   `json:"type"`
	Permissions []string `json:"permissions,omitempty"`
}

// Directive is an opaque platform instruction. Payload is kept raw so that
// directive shapes the skill does not model pass through untouched.
type Directive struct {
	Type    string          `json:"type"`
	Name    string          `json:"name,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Token   string          `json:"token"`
}

// AskForPermissionsPayload is the payload of an AskFor Connections.SendRequest.
type AskForPermissionsPayload struct {
	Type            string `json:"@type"`
	Version         string `json:"@version"`
	PermissionScope string `json:"permissionScope"`
}
