package middleware

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"voice-timer-skill/pkg/response"
)

// IPAllowlist rejects clients outside cfg.AllowedIPs with 403.
func (m Middleware) IPAllowlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.validateIP(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.IPAllowlist: %v", err)
			response.ForbiddenWithError(c, err)
			return
		}
		c.Next()
	}
}

// RateLimit rejects clients over their per-minute budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if err := m.limiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// validateIP checks ip, as resolved by gin from the socket address and the
// forwarding headers of trusted proxies only.
func (m Middleware) validateIP(ip string) error {
	if len(m.cfg.AllowedIPs) == 0 {
		return nil
	}

	parsed := net.ParseIP(ip)
	for _, allowed := range m.cfg.AllowedIPs {
		if ip == allowed {
			return nil
		}
		if strings.Contains(allowed, "/") {
			_, ipNet, err := net.ParseCIDR(allowed)
			if err != nil {
				continue
			}
			if parsed != nil && ipNet.Contains(parsed) {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// rateLimiter keeps one token bucket per client; idle clients expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimitExceeded, key)
	}
	return nil
}
