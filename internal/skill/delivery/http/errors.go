package http

import "errors"

var (
	ErrApplicationMismatch = errors.New("application id mismatch")
	ErrInvalidTimestamp    = errors.New("invalid request timestamp")
	ErrStaleRequest        = errors.New("request timestamp outside tolerance")
	ErrMissingRequestType  = errors.New("request type is required")
)
