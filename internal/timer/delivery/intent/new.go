package intent

import (
	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/timer"
	pkgLog "voice-timer-skill/pkg/log"
)

// Config tunes the timer handlers.
type Config struct {
	Locale       string
	TimerLabel   string
	AnnounceText string
	// FanoutLimit bounds concurrent per-timer calls of pause-all/resume-all.
	FanoutLimit int
}

// Handler exposes the timer skill's handler chain for registration.
type Handler interface {
	RequestHandlers() []skill.Handler
	ErrorHandlers() []skill.ErrorHandler
}

type handler struct {
	l      pkgLog.Logger
	timers timer.Factory
	cfg    Config
}

// New creates the timer intent handlers.
func New(l pkgLog.Logger, timers timer.Factory, cfg Config) Handler {
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	if cfg.TimerLabel == "" {
		cfg.TimerLabel = DefaultTimerLabel
	}
	if cfg.AnnounceText == "" {
		cfg.AnnounceText = DefaultAnnounceText
	}
	if cfg.FanoutLimit <= 0 {
		cfg.FanoutLimit = DefaultFanoutLimit
	}
	return &handler{l: l, timers: timers, cfg: cfg}
}

// RequestHandlers returns the handler chain in registration order. The
// reflector matches every intent and must stay last.
func (h *handler) RequestHandlers() []skill.Handler {
	return []skill.Handler{
		skill.Match(NameLaunch, skill.RequestIs(skill.RequestLaunch), h.launch),
		skill.Match(NameSetTimer, skill.IntentIs(IntentSetTimer), h.setTimer),
		skill.Match(NameReadTimer, skill.IntentIs(IntentReadTimer), h.readTimer),
		skill.Match(NameAskForResponse, isAskForResponse, h.askForResponse),
		skill.Match(NamePauseTimer, skill.IntentIs(IntentPause), h.pauseTimers),
		skill.Match(NameResumeTimer, skill.IntentIs(IntentResume), h.resumeTimers),
		skill.Match(NameDeleteTimer, skill.IntentIs(IntentDeleteTimer), h.deleteTimer),
		skill.Match(NameHelp, skill.IntentIs(IntentHelp), h.help),
		skill.Match(NameCancelAndStop, skill.IntentIs(IntentCancel, IntentStop), h.cancelAndStop),
		skill.Match(NameSessionEnded, skill.RequestIs(skill.RequestSessionEnded), h.sessionEnded),
		skill.Match(NameIntentReflector, skill.RequestIs(skill.RequestIntent), h.intentReflector),
	}
}

// ErrorHandlers returns the catch-all error handler.
func (h *handler) ErrorHandlers() []skill.ErrorHandler {
	return []skill.ErrorHandler{&errorHandler{l: h.l}}
}

func (h *handler) service(in *skill.Input) timer.Service {
	return h.timers.Service(in.Envelope.APIEndpoint, in.Envelope.APIAccessToken)
}
