package scheduling

import "errors"

// Domain-specific errors for the scheduling package.
var (
	ErrInvalidRange       = errors.New("time range start must be before end")
	ErrInvalidDuration    = errors.New("duration must be positive")
	ErrNoWeekdays         = errors.New("recurrence needs at least one weekday")
	ErrInvalidDailyWindow = errors.New("daily start time must be before daily end time")
	ErrRangeEndPast       = errors.New("recurrence end date is in the past")
	ErrAccessDenied       = errors.New("calendar access denied")
	ErrProviderError      = errors.New("calendar provider request failed")
)
