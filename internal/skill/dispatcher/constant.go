package dispatcher

// Log prefixes
const (
	LogPrefixDispatch = "internal.skill.dispatcher.Dispatch"
)

// Span names and attributes
const (
	SpanDispatch         = "skill.dispatch"
	AttrRequestType      = "skill.request_type"
	AttrIntentName       = "skill.intent_name"
	AttrHandler          = "skill.handler"
	HandlerNameUnmatched = "unmatched"
	HandlerNameNilInput  = "nil_input"
)

// Dispatch outcomes
const (
	OutcomeHandled   = "handled"
	OutcomeRecovered = "recovered"
	OutcomeFallback  = "fallback"
)

// FallbackSpeech is spoken when a failure reaches no error handler.
const FallbackSpeech = "Sorry, I had trouble doing what you asked. Please try again."
