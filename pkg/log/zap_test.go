package log_test

import (
	"context"
	"testing"

	"voice-timer-skill/pkg/log"
)

func TestContextIDs(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	ctx = log.WithSessionID(ctx, "sess-1")

	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.SessionID(ctx); got != "sess-1" {
		t.Errorf("expected sess-1, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: "", Encoding: ""},
	} {
		l := log.Init(cfg)
		l.Debugf(context.Background(), "debug %d", 1)
		l.Info(log.WithRequestID(context.Background(), "r"), "info")
	}

	log.NewNop().Errorf(context.Background(), "dropped %s", "message")
}
