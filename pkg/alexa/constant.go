package alexa

// Request types.
const (
	RequestTypeLaunch              = "LaunchRequest"
	RequestTypeIntent              = "IntentRequest"
	RequestTypeSessionEnded        = "SessionEndedRequest"
	RequestTypeConnectionsResponse = "Connections.Response"
)

// Directive and card types.
const (
	DirectiveConnectionsSendRequest = "Connections.SendRequest"
	ConnectionAskFor                = "AskFor"
	AskForPermissionsConsentRequest = "AskForPermissionsConsentRequest"
	AskForPermissionsConsentVersion = "1"

	CardAskForPermissionsConsent = "AskForPermissionsConsent"

	OutputSpeechPlainText = "PlainText"
)

// Consent outcomes carried in a Connections.Response payload.
const (
	ConsentAccepted    = "ACCEPTED"
	ConsentDenied      = "DENIED"
	ConsentNotAnswered = "NOT_ANSWERED"
)

// PermissionTimersReadWrite is the scope required by the timer management API.
const PermissionTimersReadWrite = "alexa::alerts:timers:skill:readwrite"

// Version is the response envelope version.
const Version = "1.0"
