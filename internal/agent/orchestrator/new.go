package orchestrator

import (
	"time"

	"calendar-booking-agent/internal/agent"
	"calendar-booking-agent/internal/session"
	"calendar-booking-agent/pkg/gemini"
	pkgLog "calendar-booking-agent/pkg/log"
)

type Orchestrator struct {
	l          pkgLog.Logger
	llm        gemini.IGemini
	dispatcher *agent.Dispatcher
	sessions   session.Store
	timezone   string
	now        func() time.Time
}

// Config carries the orchestrator knobs.
type Config struct {
	Timezone string
	Now      func() time.Time
}

func New(l pkgLog.Logger, llm gemini.IGemini, dispatcher *agent.Dispatcher, sessions session.Store, cfg Config) *Orchestrator {
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Orchestrator{
		l:          l,
		llm:        llm,
		dispatcher: dispatcher,
		sessions:   sessions,
		timezone:   cfg.Timezone,
		now:        cfg.Now,
	}
}
