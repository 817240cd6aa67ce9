package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("ratelimiter: invalid configuration")
	ErrInvalidTokenCount = errors.New("ratelimiter: token count must be positive")
	ErrAlreadyStarted    = errors.New("ratelimiter: cleanup already started")
	ErrNotStarted        = errors.New("ratelimiter: cleanup not started")
	ErrCleanupDisabled   = errors.New("ratelimiter: cleanup interval must be positive")
)
