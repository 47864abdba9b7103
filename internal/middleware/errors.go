package middleware

import "errors"

var (
	ErrIPNotAllowed      = errors.New("ip not allowed")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)
