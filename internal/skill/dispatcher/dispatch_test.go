package dispatcher_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/skill/dispatcher"
	"voice-timer-skill/internal/skill/session"
	"voice-timer-skill/pkg/log"
)

type recordingErrorHandler struct {
	accept bool
	got    error
	speech string
}

func (h *recordingErrorHandler) CanHandle(in *skill.Input, err error) bool { return h.accept }

func (h *recordingErrorHandler) Handle(ctx context.Context, in *skill.Input, err error) skill.Response {
	h.got = err
	return skill.NewResponseBuilder().Speak(h.speech).Reprompt(h.speech).Build()
}

type panickingErrorHandler struct{}

func (panickingErrorHandler) CanHandle(*skill.Input, error) bool { return true }
func (panickingErrorHandler) Handle(context.Context, *skill.Input, error) skill.Response {
	panic("boom")
}

func speak(text string) skill.Action {
	return func(ctx context.Context, in *skill.Input) (skill.Response, error) {
		return skill.NewResponseBuilder().Speak(text).Build(), nil
	}
}

func newInput(env skill.Envelope) *skill.Input {
	return &skill.Input{Envelope: env, Session: session.NewAttributes(env.SessionID, nil)}
}

func intent(name string) *skill.Input {
	return newInput(skill.Envelope{RequestType: skill.RequestIntent, IntentName: name, SessionID: "s1"})
}

func TestDispatch_FirstMatchWins(t *testing.T) {
	d := dispatcher.New(log.NewNop()).
		RegisterFunc("first", skill.IntentIs("readTimerIntent"), speak("first")).
		RegisterFunc("second", skill.IntentIs("readTimerIntent"), speak("second")).
		RegisterFunc("reflector", skill.RequestIs(skill.RequestIntent), speak("reflector"))

	resp := d.Dispatch(context.Background(), intent("readTimerIntent"))
	assert.Equal(t, "first", resp.Speech)

	resp = d.Dispatch(context.Background(), intent("somethingElse"))
	assert.Equal(t, "reflector", resp.Speech)
	assert.Equal(t, 3, d.Len())
}

func TestDispatch_ExactlyOneActionRuns(t *testing.T) {
	calls := 0
	count := func(ctx context.Context, in *skill.Input) (skill.Response, error) {
		calls++
		return skill.Response{Speech: "ok"}, nil
	}
	d := dispatcher.New(log.NewNop()).
		RegisterFunc("a", skill.Always(), count).
		RegisterFunc("b", skill.Always(), count)

	d.Dispatch(context.Background(), intent("x"))
	assert.Equal(t, 1, calls)
}

func TestDispatch_HandlerErrorGoesToErrorHandler(t *testing.T) {
	cause := errors.New("remote failure")
	eh := &recordingErrorHandler{accept: true, speech: "apology"}
	d := dispatcher.New(log.NewNop()).
		RegisterFunc("failing", skill.Always(), func(ctx context.Context, in *skill.Input) (skill.Response, error) {
			return skill.Response{}, cause
		}).
		RegisterErrorHandler(eh)

	resp := d.Dispatch(context.Background(), intent("x"))
	assert.Equal(t, "apology", resp.Speech)
	assert.Equal(t, "apology", resp.Reprompt)
	assert.False(t, resp.ShouldEndSession)
	assert.ErrorIs(t, eh.got, cause)
}

func TestDispatch_PanicIsRecovered(t *testing.T) {
	eh := &recordingErrorHandler{accept: true, speech: "apology"}
	d := dispatcher.New(log.NewNop()).
		RegisterFunc("panicking", skill.Always(), func(ctx context.Context, in *skill.Input) (skill.Response, error) {
			panic("nil map")
		}).
		RegisterErrorHandler(eh)

	resp := d.Dispatch(context.Background(), intent("x"))
	assert.Equal(t, "apology", resp.Speech)
	assert.ErrorIs(t, eh.got, skill.ErrHandlerPanic)
}

func TestDispatch_PanickingPredicateIsSkipped(t *testing.T) {
	d := dispatcher.New(log.NewNop()).
		RegisterFunc("broken", func(*skill.Input) bool { panic("bad predicate") }, speak("broken")).
		RegisterFunc("next", skill.Always(), speak("next"))

	resp := d.Dispatch(context.Background(), intent("x"))
	assert.Equal(t, "next", resp.Speech)
}

func TestDispatch_UnmatchedRoutesToErrorHandler(t *testing.T) {
	eh := &recordingErrorHandler{accept: true, speech: "apology"}
	d := dispatcher.New(log.NewNop()).
		RegisterFunc("launch", skill.RequestIs(skill.RequestLaunch), speak("welcome")).
		RegisterErrorHandler(eh)

	resp := d.Dispatch(context.Background(), newInput(skill.Envelope{RequestType: skill.RequestUnknown, RawType: "Alexa.Presentation.APL.UserEvent"}))
	assert.Equal(t, "apology", resp.Speech)
	assert.ErrorIs(t, eh.got, skill.ErrNoHandler)
}

func TestDispatch_ErrorHandlersInOrder(t *testing.T) {
	skipped := &recordingErrorHandler{accept: false, speech: "skipped"}
	chosen := &recordingErrorHandler{accept: true, speech: "chosen"}
	d := dispatcher.New(log.NewNop()).RegisterErrorHandler(skipped, chosen)

	resp := d.Dispatch(context.Background(), intent("x"))
	assert.Equal(t, "chosen", resp.Speech)
	assert.Nil(t, skipped.got)
}

func TestDispatch_FallbackWithoutErrorHandlers(t *testing.T) {
	d := dispatcher.New(log.NewNop())

	resp := d.Dispatch(context.Background(), intent("x"))
	assert.Equal(t, dispatcher.FallbackSpeech, resp.Speech)
	assert.Equal(t, dispatcher.FallbackSpeech, resp.Reprompt)
	assert.False(t, resp.ShouldEndSession)

	custom := skill.Response{Speech: "custom"}
	resp = dispatcher.New(log.NewNop(), dispatcher.WithFallback(custom)).Dispatch(context.Background(), intent("x"))
	assert.Equal(t, "custom", resp.Speech)
}

func TestDispatch_PanickingErrorHandlerFallsBack(t *testing.T) {
	d := dispatcher.New(log.NewNop()).RegisterErrorHandler(panickingErrorHandler{})

	resp := d.Dispatch(context.Background(), intent("x"))
	assert.Equal(t, dispatcher.FallbackSpeech, resp.Speech)
}

func TestDispatch_NilInput(t *testing.T) {
	d := dispatcher.New(log.NewNop()).RegisterFunc("all", skill.Always(), speak("never"))

	resp := d.Dispatch(context.Background(), nil)
	assert.Equal(t, dispatcher.FallbackSpeech, resp.Speech)
}

func TestDispatch_TimeoutBoundsHandlerContext(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool
	d := dispatcher.New(log.NewNop(), dispatcher.WithTimeout(time.Second)).
		RegisterFunc("all", skill.Always(), func(ctx context.Context, in *skill.Input) (skill.Response, error) {
			deadline, hasDeadline = ctx.Deadline()
			return skill.Response{Speech: "ok"}, nil
		})

	d.Dispatch(context.Background(), intent("x"))
	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}

func TestDispatch_HandlerSeesSession(t *testing.T) {
	d := dispatcher.New(log.NewNop()).
		RegisterFunc("writer", skill.Always(), func(ctx context.Context, in *skill.Input) (skill.Response, error) {
			in.Session.Set(session.KeyLastTimerID, "t1")
			return skill.Response{}, nil
		})

	in := intent("x")
	d.Dispatch(context.Background(), in)

	id, ok := in.Session.GetString(session.KeyLastTimerID)
	assert.True(t, ok)
	assert.Equal(t, "t1", id)
}
