package intent

import (
	"context"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/skill/session"
	"voice-timer-skill/internal/timer"
	"voice-timer-skill/pkg/datemath"
)

func (h *handler) setTimer(ctx context.Context, in *skill.Input) (skill.Response, error) {
	if resp := EnsureConsent(in.Envelope); resp != nil {
		return *resp, nil
	}

	raw := in.Envelope.Slot(SlotDuration)
	if raw == "" {
		return askDuration(), nil
	}
	duration, err := timerDuration(raw)
	if err != nil {
		h.l.Warnf(ctx, "%s: datemath.NormalizeTimerDuration: %v", LogPrefixSetTimer, err)
		return askDuration(), nil
	}

	svc := h.service(in)
	list, err := svc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "%s: svc.List: %v", LogPrefixSetTimer, err)
		return failure(err, SpeechSetFailed), nil
	}
	h.l.Debugf(ctx, "%s: %d timer(s) before create", LogPrefixSetTimer, list.TotalCount)

	res, err := svc.Create(ctx, timer.CreateSpec{
		Duration:     duration,
		Label:        h.cfg.TimerLabel,
		Locale:       h.cfg.Locale,
		AnnounceText: h.cfg.AnnounceText,
		Visible:      true,
		PlayAudible:  true,
	})
	if err != nil {
		h.l.Errorf(ctx, "%s: svc.Create: %v", LogPrefixSetTimer, err)
		return failure(err, SpeechSetFailed), nil
	}

	out := timer.Started(res)
	if !out.OK {
		h.l.Warnf(ctx, "%s: %v: status=%s code=%d", LogPrefixSetTimer, timer.ErrTimerNotStarted, res.Status, out.StatusCode)
		return apology(SpeechSetFailed), nil
	}

	in.Session.Set(session.KeyLastTimerID, res.ID)
	return skill.NewResponseBuilder().
		Speak(SpeechTimerActive).
		Reprompt(SpeechWhatNext).
		Build(), nil
}

// timerDuration canonicalizes ISO-8601 slot values and checks their range.
// Anything else is passed through as spoken and left to the timer service.
func timerDuration(raw string) (string, error) {
	if !datemath.IsISODuration(raw) {
		return raw, nil
	}
	return datemath.NormalizeTimerDuration(raw)
}

func askDuration() skill.Response {
	return skill.NewResponseBuilder().
		Speak(SpeechAskDuration).
		Reprompt(SpeechAskDuration).
		Build()
}

// apology keeps the session open after a failed timer operation.
func apology(speech string) skill.Response {
	return skill.NewResponseBuilder().
		Speak(speech).
		Reprompt(SpeechWhatNext).
		Build()
}
