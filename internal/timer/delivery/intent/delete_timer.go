package intent

import (
	"context"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/skill/session"
)

// deleteTimer removes the remembered timer when there is one and every timer
// otherwise. It never does both.
func (h *handler) deleteTimer(ctx context.Context, in *skill.Input) (skill.Response, error) {
	svc := h.service(in)
	list, err := svc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "%s: svc.List: %v", LogPrefixDelete, err)
		return failure(err, SpeechDeleteFailed), nil
	}
	if list.Empty() {
		return noTimers(), nil
	}

	if id, ok := in.Session.GetString(session.KeyLastTimerID); ok {
		if err := svc.Delete(ctx, id); err != nil {
			h.l.Errorf(ctx, "%s: svc.Delete: id=%s: %v", LogPrefixDelete, id, err)
			return failure(err, SpeechDeleteFailed), nil
		}
		in.Session.Delete(session.KeyLastTimerID)
	} else {
		if err := svc.DeleteAll(ctx); err != nil {
			h.l.Errorf(ctx, "%s: svc.DeleteAll: %v", LogPrefixDelete, err)
			return failure(err, SpeechDeleteFailed), nil
		}
	}

	return skill.NewResponseBuilder().
		Speak(SpeechDeleted).
		Reprompt(SpeechWhatNext).
		Build(), nil
}
