package usecase

import (
	"context"

	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/internal/scheduling"
	"calendar-booking-agent/pkg/gcalendar"
)

// IsAvailable reports whether no existing event overlaps the range on the
// scoped calendar. Invalid ranges are rejected before any provider call.
// Fail-closed: a provider error counts as busy.
func (uc *implUseCase) IsAvailable(ctx context.Context, sc model.Scope, r scheduling.TimeRange) bool {
	if err := r.Validate(); err != nil {
		uc.l.Warnf(ctx, "IsAvailable: rejected invalid range [%s, %s): %v", r.Start, r.End, err)
		return false
	}

	events, err := uc.provider.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: sc.CalendarID,
		TimeMin:    r.Start,
		TimeMax:    r.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "IsAvailable: check failed for calendar %q, treating slot as busy: %v", sc.CalendarID, err)
		return false
	}

	return len(events) == 0
}
