package usecase

import (
	"time"

	"calendar-booking-agent/internal/scheduling"
	pkgLog "calendar-booking-agent/pkg/log"
)

// Operation limits.
const (
	MaxSuggestions     = 5
	DefaultHorizonDays = 30
)

// Config tunes the scheduling use case.
type Config struct {
	Hours       scheduling.WorkingHours
	HorizonDays int              // forward search limit for FindNext
	Timezone    string           // IANA name shown in user-facing labels
	Now         func() time.Time // overridable clock, defaults to time.Now
}

type implUseCase struct {
	l           pkgLog.Logger
	provider    scheduling.CalendarProvider
	hours       scheduling.WorkingHours
	horizonDays int
	timezone    string
	now         func() time.Time
}

// New creates a new scheduling UseCase instance.
func New(l pkgLog.Logger, provider scheduling.CalendarProvider, cfg Config) *implUseCase {
	horizon := cfg.HorizonDays
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	hours := cfg.Hours
	if hours.Granularity <= 0 {
		hours.Granularity = 30 * time.Minute
	}
	if hours.Location == nil {
		hours.Location = time.UTC
	}

	return &implUseCase{
		l:           l,
		provider:    provider,
		hours:       hours,
		horizonDays: horizon,
		timezone:    cfg.Timezone,
		now:         now,
	}
}

var _ scheduling.UseCase = (*implUseCase)(nil)
