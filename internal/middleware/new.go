package middleware

import (
	"voice-timer-skill/pkg/log"
)

// Config holds the network guards of the skill endpoint.
type Config struct {
	// AllowedIPs lists addresses or CIDR ranges. Empty allows everyone.
	AllowedIPs []string
	// RateLimitPerMin is the per-client request budget. Zero disables it.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l, cfg: cfg}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
