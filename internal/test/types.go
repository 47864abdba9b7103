package test

// DispatchRequest describes a simulated skill turn
type DispatchRequest struct {
	// RequestType is Launch, Intent, ConnectionsResponse or SessionEnded. Defaults to Intent.
	RequestType    string            `json:"request_type"`
	Intent         string            `json:"intent"`
	Slots          map[string]string `json:"slots"`
	SessionID      string            `json:"session_id"`
	ConsentToken   string            `json:"consent_token"`
	APIEndpoint    string            `json:"api_endpoint"`
	APIAccessToken string            `json:"api_access_token"`
	// Connection fields, used with ConnectionsResponse.
	ConnectionStatus string `json:"connection_status"`
	ConsentStatus    string `json:"consent_status"`
	IsCardThrown     bool   `json:"is_card_thrown"`
}

// DispatchResponse is the dispatcher's answer plus the resulting session state
type DispatchResponse struct {
	Speech           string         `json:"speech"`
	Reprompt         string         `json:"reprompt,omitempty"`
	Directives       []string       `json:"directives,omitempty"`
	HasCard          bool           `json:"has_card"`
	ShouldEndSession bool           `json:"should_end_session"`
	SessionID        string         `json:"session_id"`
	SessionEnded     bool           `json:"session_ended"`
	Session          map[string]any `json:"session,omitempty"`
}

// ResetSessionRequest represents a reset session request
type ResetSessionRequest struct {
	SessionID string `json:"session_id"`
}

// ResetSessionResponse represents a reset session response
type ResetSessionResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
