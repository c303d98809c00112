package middleware

import (
	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/pkg/log"
)

type Middleware struct {
	l           log.Logger
	environment model.Environment
	limiter     *rateLimiter
}

// Config carries the middleware knobs.
type Config struct {
	Environment      model.Environment
	RateLimitPerMin  int
	RateLimitEnabled bool
}

func New(l log.Logger, cfg Config) Middleware {
	var limiter *rateLimiter
	if cfg.RateLimitEnabled {
		limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return Middleware{
		l:           l,
		environment: cfg.Environment,
		limiter:     limiter,
	}
}
