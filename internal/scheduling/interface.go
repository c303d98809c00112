package scheduling

import (
	"context"
	"time"

	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/pkg/gcalendar"
)

// CalendarProvider abstracts the external calendar API for mocking.
type CalendarProvider interface {
	// ListEvents returns busy intervals overlapping [TimeMin, TimeMax),
	// single-occurrence expanded and ordered by start time.
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)

	// CreateEvent writes one event and returns its provider-assigned id and link.
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)

	// GetCalendar fetches calendar metadata; used for access validation.
	GetCalendar(ctx context.Context, calendarID string) (*gcalendar.CalendarInfo, error)
}

// UseCase defines the business logic interface for the scheduling domain.
type UseCase interface {
	// IsAvailable reports whether no existing event overlaps the range.
	// Provider errors are absorbed and treated as busy (fail-closed).
	IsAvailable(ctx context.Context, sc model.Scope, r TimeRange) bool

	// SuggestSlots enumerates free slots of the requested duration on one day.
	SuggestSlots(ctx context.Context, sc model.Scope, input SuggestSlotsInput) (SuggestSlotsOutput, error)

	// FindNext scans forward from now for the first free slot inside working hours.
	FindNext(ctx context.Context, sc model.Scope, input FindNextInput) (FindNextOutput, error)

	// Materialize expands a recurrence spec into concrete dated occurrences.
	Materialize(spec RecurrenceSpec, from time.Time) ([]Occurrence, error)

	// BookOnce re-checks availability and creates a single event.
	BookOnce(ctx context.Context, sc model.Scope, input BookOnceInput) (BookOnceOutput, error)

	// BookRecurring books every occurrence of the spec independently.
	BookRecurring(ctx context.Context, sc model.Scope, input BookRecurringInput) (BookRecurringOutput, error)

	// ValidateAccess verifies the service account can reach the scoped calendar.
	ValidateAccess(ctx context.Context, sc model.Scope) error
}
