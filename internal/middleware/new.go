package middleware

import (
	"chat-task-manager/config"
	"chat-task-manager/pkg/log"
)

// Header carrying the already-authenticated caller.
const UserIDHeader = "X-User-ID"

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. The rate limiter is off when cfg.Enabled is false.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxTrackedUsers)
	}
	return mw
}
