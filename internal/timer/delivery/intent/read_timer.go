package intent

import (
	"context"
	"fmt"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/skill/session"
	"voice-timer-skill/internal/timer"
)

func (h *handler) readTimer(ctx context.Context, in *skill.Input) (skill.Response, error) {
	svc := h.service(in)
	list, err := svc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "%s: svc.List: %v", LogPrefixReadTimer, err)
		return failure(err, SpeechReadFailed), nil
	}

	var preText string
	if list.TotalCount > 0 {
		preText = fmt.Sprintf(SpeechTimerCount, list.TotalCount)
	}

	id, ok := in.Session.GetString(session.KeyLastTimerID)
	if !ok && len(list.Timers) > 0 {
		id = list.Timers[0].ID
	}
	if id == "" {
		return skill.NewResponseBuilder().
			Speak(preText + SpeechNoTimerRead).
			Reprompt(SpeechWhatNext).
			Build(), nil
	}

	t, err := svc.Get(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "%s: svc.Get: id=%s: %v", LogPrefixReadTimer, id, err)
		return failure(err, SpeechReadFailed), nil
	}

	in.Session.Set(session.KeyLastTimerID, t.ID)
	return skill.NewResponseBuilder().
		Speak(preText + fmt.Sprintf(SpeechTimerStatus, statusSpeech(t.Status))).
		Reprompt(SpeechWhatNext).
		Build(), nil
}

func statusSpeech(s timer.Status) string {
	switch s {
	case timer.StatusOn:
		return SpeechStatusOn
	case timer.StatusOff:
		return SpeechStatusOff
	case timer.StatusPaused:
		return SpeechStatusPause
	default:
		return SpeechStatusOther
	}
}
