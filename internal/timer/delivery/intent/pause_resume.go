package intent

import (
	"context"
	"errors"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/timer"
)

const (
	fanoutOpPause  = "pause"
	fanoutOpResume = "resume"
)

func (h *handler) pauseTimers(ctx context.Context, in *skill.Input) (skill.Response, error) {
	svc := h.service(in)
	list, err := svc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "%s: svc.List: %v", LogPrefixPause, err)
		return failure(err, SpeechPauseFailed), nil
	}
	if list.Empty() {
		return noTimers(), nil
	}

	res := h.fanout(ctx, fanoutOpPause, list.WithStatus(timer.StatusOn), svc.Pause)
	for _, err := range res.Errs {
		h.l.Errorf(ctx, "%s: svc.Pause: %v", LogPrefixPause, err)
	}

	switch {
	case res.AllFailed():
		return failure(errors.Join(res.Errs...), SpeechPauseFailed), nil
	case res.Partial():
		return skill.NewResponseBuilder().
			Speak(SpeechPausePartial + SpeechPaused).
			Reprompt(SpeechWhatNext).
			Build(), nil
	}
	return skill.NewResponseBuilder().
		Speak(SpeechPaused).
		Reprompt(SpeechWhatNext).
		Build(), nil
}

func (h *handler) resumeTimers(ctx context.Context, in *skill.Input) (skill.Response, error) {
	svc := h.service(in)
	list, err := svc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "%s: svc.List: %v", LogPrefixResume, err)
		return failure(err, SpeechResumeFailed), nil
	}
	if list.Empty() {
		return noTimers(), nil
	}

	res := h.fanout(ctx, fanoutOpResume, list.WithStatus(timer.StatusPaused), svc.Resume)
	for _, err := range res.Errs {
		h.l.Errorf(ctx, "%s: svc.Resume: %v", LogPrefixResume, err)
	}

	switch {
	case res.AllFailed():
		return failure(errors.Join(res.Errs...), SpeechResumeFailed), nil
	case res.Partial():
		return skill.NewResponseBuilder().
			Speak(SpeechResumePartial + SpeechResumed).
			Reprompt(SpeechWhatNext).
			Build(), nil
	}
	return skill.NewResponseBuilder().
		Speak(SpeechResumed).
		Reprompt(SpeechWhatNext).
		Build(), nil
}

func noTimers() skill.Response {
	return skill.NewResponseBuilder().
		Speak(SpeechNoTimers).
		Reprompt(SpeechWhatNext).
		Build()
}
