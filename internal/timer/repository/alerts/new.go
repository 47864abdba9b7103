package alerts

import (
	"context"
	"net/http"
	"time"

	"voice-timer-skill/internal/timer"
	pkgLog "voice-timer-skill/pkg/log"
)

// New creates a timer.Service backed by client.
func New(client *Client, l pkgLog.Logger) timer.Service {
	return &implRepository{client: client, l: l}
}

// FactoryConfig configures how per-request clients are built.
type FactoryConfig struct {
	// EndpointOverride replaces the envelope's apiEndpoint when set.
	EndpointOverride string
	// RequestTimeout bounds each HTTP call.
	RequestTimeout time.Duration
	// Transport is the base round tripper; nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

type factory struct {
	cfg FactoryConfig
	l   pkgLog.Logger
}

// NewFactory returns a timer.Factory producing one authenticated service per
// request envelope.
func NewFactory(cfg FactoryConfig, l pkgLog.Logger) timer.Factory {
	return &factory{cfg: cfg, l: l}
}

func (f *factory) Service(apiEndpoint, apiAccessToken string) timer.Service {
	endpoint := apiEndpoint
	if f.cfg.EndpointOverride != "" {
		endpoint = f.cfg.EndpointOverride
	}
	switch {
	case endpoint == "":
		f.l.Warnf(context.Background(), "alerts.Factory: %v", timer.ErrNoAPIEndpoint)
		return unavailable{err: timer.ErrNoAPIEndpoint}
	case apiAccessToken == "":
		f.l.Warnf(context.Background(), "alerts.Factory: %v", timer.ErrNoAccessToken)
		return unavailable{err: timer.ErrNoAccessToken}
	}
	base := &http.Client{Transport: f.cfg.Transport, Timeout: f.cfg.RequestTimeout}
	return New(NewClient(endpoint, apiAccessToken, base), f.l)
}

// unavailable fails every call; used when the envelope carries no API access.
type unavailable struct {
	err error
}

func (u unavailable) List(context.Context) (timer.List, error) { return timer.List{}, u.err }
func (u unavailable) Create(context.Context, timer.CreateSpec) (timer.CreateResult, error) {
	return timer.CreateResult{}, u.err
}
func (u unavailable) Get(context.Context, string) (timer.Timer, error) { return timer.Timer{}, u.err }
func (u unavailable) Pause(context.Context, string) error              { return u.err }
func (u unavailable) Resume(context.Context, string) error             { return u.err }
func (u unavailable) Delete(context.Context, string) error             { return u.err }
func (u unavailable) DeleteAll(context.Context) error                  { return u.err }
