package alexa

import (
	"encoding/json"
	"fmt"
)

// GetRequestType returns the request type of env.
func GetRequestType(env RequestEnvelope) string {
	return env.Request.Type
}

// GetIntentName returns the intent name, or "" for non-intent requests.
func GetIntentName(env RequestEnvelope) string {
	if env.Request.Type != RequestTypeIntent || env.Request.Intent == nil {
		return ""
	}
	return env.Request.Intent.Name
}

// GetConsentToken returns the user's consent token from the System context.
func GetConsentToken(env RequestEnvelope) string {
	if env.Context == nil || env.Context.System.User.Permissions == nil {
		return ""
	}
	return env.Context.System.User.Permissions.ConsentToken
}

// GetApplicationID returns the skill id, preferring the System context.
func GetApplicationID(env RequestEnvelope) string {
	if env.Context != nil && env.Context.System.Application.ApplicationID != "" {
		return env.Context.System.Application.ApplicationID
	}
	if env.Session != nil {
		return env.Session.Application.ApplicationID
	}
	return ""
}

// NewAskForPermissionsDirective builds the Connections.SendRequest directive
// asking the platform to obtain scope from the user.
func NewAskForPermissionsDirective(scope string) (Directive, error) {
	payload, err := json.Marshal(AskForPermissionsPayload{
		Type:            AskForPermissionsConsentRequest,
		Version:         AskForPermissionsConsentVersion,
		PermissionScope: scope,
	})
	if err != nil {
		return Directive{}, fmt.Errorf("failed to marshal AskFor payload: %w", err)
	}
	return Directive{
		Type:    DirectiveConnectionsSendRequest,
		Name:    ConnectionAskFor,
		Payload: payload,
		Token:   "",
	}, nil
}
