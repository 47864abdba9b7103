package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"voice-timer-skill/internal/httpserver"
	"voice-timer-skill/internal/middleware"
	"voice-timer-skill/internal/skill"
	"voice-timer-skill/internal/skill/session"
	"voice-timer-skill/internal/test"
	"voice-timer-skill/pkg/log"
)

type stubSkill struct{ calls int }

func (s *stubSkill) Handle(c *gin.Context) {
	s.calls++
	c.JSON(http.StatusOK, gin.H{"version": "1.0"})
}

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(context.Context, *skill.Input) skill.Response { return skill.Response{} }

func newServer(t *testing.T, env string, mwCfg middleware.Config) (*httpserver.HTTPServer, *stubSkill) {
	t.Helper()
	l := log.NewNop()
	sk := &stubSkill{}
	srv, err := httpserver.New(l, httpserver.Config{
		Logger:       l,
		Port:         8080,
		Mode:         gin.TestMode,
		Environment:  env,
		Middleware:   middleware.New(l, mwCfg),
		SkillHandler: sk,
		TestHandler:  test.New(l, nopDispatcher{}, session.NewStore(10, time.Minute)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, sk
}

func serve(srv *httpserver.HTTPServer, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  httpserver.Config
	}{
		{name: "no port", cfg: httpserver.Config{Mode: gin.TestMode, SkillHandler: &stubSkill{}}},
		{name: "no mode", cfg: httpserver.Config{Port: 8080, SkillHandler: &stubSkill{}}},
		{name: "no skill handler", cfg: httpserver.Config{Port: 8080, Mode: gin.TestMode}},
		{name: "bad trusted proxy", cfg: httpserver.Config{Port: 8080, Mode: gin.TestMode, SkillHandler: &stubSkill{}, TrustedProxies: []string{"not-an-ip"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := httpserver.New(l, tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
	if _, err := httpserver.New(nil, httpserver.Config{Port: 8080, Mode: gin.TestMode, SkillHandler: &stubSkill{}}); err == nil {
		t.Error("expected an error without logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newServer(t, "development", middleware.Config{})

	for _, path := range []string{"/health", "/ready", "/live", "/metrics"} {
		if w := serve(srv, http.MethodGet, path); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}

	w := serve(srv, http.MethodGet, "/health")
	if !strings.Contains(w.Body.String(), httpserver.ServiceName) {
		t.Errorf("health body = %s", w.Body.String())
	}
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Error("request id header missing")
	}
}

func TestSkillRoute(t *testing.T) {
	srv, sk := newServer(t, "development", middleware.Config{})
	if w := serve(srv, http.MethodPost, "/alexa"); w.Code != http.StatusOK {
		t.Fatalf("POST /alexa = %d", w.Code)
	}
	if sk.calls != 1 {
		t.Errorf("skill calls = %d", sk.calls)
	}

	guarded, sk := newServer(t, "development", middleware.Config{AllowedIPs: []string{"203.0.113.1"}})
	if w := serve(guarded, http.MethodPost, "/alexa"); w.Code != http.StatusForbidden {
		t.Errorf("POST /alexa from outside the allowlist = %d, want 403", w.Code)
	}
	if sk.calls != 0 {
		t.Error("skill handler should not run for rejected clients")
	}

	req := httptest.NewRequest(http.MethodPost, "/alexa", strings.NewReader(`{}`))
	req.Header.Set("X-Forwarded-For", "203.0.113.1")
	req.Header.Set("X-Real-IP", "203.0.113.1")
	w := httptest.NewRecorder()
	guarded.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusForbidden || sk.calls != 0 {
		t.Errorf("POST /alexa with a forged forwarding header = %d, want 403", w.Code)
	}
}

func TestTestRoutesOutsideProduction(t *testing.T) {
	dev, _ := newServer(t, "development", middleware.Config{})
	if w := serve(dev, http.MethodGet, "/test/health"); w.Code != http.StatusOK {
		t.Errorf("development /test/health = %d", w.Code)
	}

	prod, _ := newServer(t, "production", middleware.Config{})
	if w := serve(prod, http.MethodGet, "/test/health"); w.Code != http.StatusNotFound {
		t.Errorf("production /test/health = %d, want 404", w.Code)
	}
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := httpserver.New(l, httpserver.Config{
		Logger:       l,
		Port:         18089,
		Mode:         gin.TestMode,
		Middleware:   middleware.New(l, middleware.Config{}),
		SkillHandler: &stubSkill{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil && !strings.Contains(err.Error(), "address already in use") {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
