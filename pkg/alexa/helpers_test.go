package alexa_test

import (
	"encoding/json"
	"testing"

	"voice-timer-skill/pkg/alexa"
)

const intentBody = `{
  "version": "1.0",
  "session": {
    "new": false,
    "sessionId": "amzn1.echo-api.session.1",
    "application": {"applicationId": "amzn1.ask.skill.session"},
    "attributes": {"lastTimerId": "t1"},
    "user": {"userId": "amzn1.ask.account.u1"}
  },
  "context": {
    "System": {
      "application": {"applicationId": "amzn1.ask.skill.system"},
      "user": {"userId": "amzn1.ask.account.u1", "permissions": {"consentToken": "tok"}},
      "apiEndpoint": "https://api.fe.amazonalexa.com",
      "apiAccessToken": "access"
    }
  },
  "request": {
    "type": "IntentRequest",
    "requestId": "amzn1.echo-api.request.1",
    "timestamp": "2026-10-19T10:00:00Z",
    "locale": "ja-JP",
    "intent": {"name": "setTimerIntent", "slots": {"duration": {"name": "duration", "value": "PT5M"}}}
  }
}`

func TestEnvelopeHelpers(t *testing.T) {
	var env alexa.RequestEnvelope
	if err := json.Unmarshal([]byte(intentBody), &env); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if got := alexa.GetRequestType(env); got != alexa.RequestTypeIntent {
		t.Errorf("unexpected request type %q", got)
	}
	if got := alexa.GetIntentName(env); got != "setTimerIntent" {
		t.Errorf("unexpected intent name %q", got)
	}
	if got := alexa.GetConsentToken(env); got != "tok" {
		t.Errorf("unexpected consent token %q", got)
	}
	if got := alexa.GetApplicationID(env); got != "amzn1.ask.skill.system" {
		t.Errorf("expected System application id to win, got %q", got)
	}
}

func TestHelpersOnSparseEnvelope(t *testing.T) {
	env := alexa.RequestEnvelope{Request: alexa.Request{Type: alexa.RequestTypeLaunch}}

	if alexa.GetIntentName(env) != "" {
		t.Errorf("expected empty intent data for launch request")
	}
	if alexa.GetConsentToken(env) != "" || alexa.GetApplicationID(env) != "" {
		t.Errorf("expected empty context data for sparse envelope")
	}
}

func TestNewAskForPermissionsDirective(t *testing.T) {
	d, err := alexa.NewAskForPermissionsDirective(alexa.PermissionTimersReadWrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Type != alexa.DirectiveConnectionsSendRequest || d.Name != alexa.ConnectionAskFor {
		t.Errorf("unexpected directive header: %+v", d)
	}

	var payload alexa.AskForPermissionsPayload
	if err := json.Unmarshal(d.Payload, &payload); err != nil {
		t.Fatalf("payload unmarshal error: %v", err)
	}
	if payload.Type != "AskForPermissionsConsentRequest" || payload.Version != "1" ||
		payload.PermissionScope != "alexa::alerts:timers:skill:readwrite" {
		t.Errorf("unexpected payload: %+v", payload)
	}

	raw, _ := json.Marshal(d)
	var generic map[string]any
	json.Unmarshal(raw, &generic)
	if _, ok := generic["token"]; !ok {
		t.Errorf("expected token field to be present, got %s", raw)
	}
}
