package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/internal/scheduling"
	"calendar-booking-agent/pkg/gcalendar"
)

// BookOnce re-checks availability immediately before creation, closing the
// gap between a prior suggestion and the write. A race against a concurrent
// external writer remains possible: the provider offers no conditional write.
func (uc *implUseCase) BookOnce(ctx context.Context, sc model.Scope, input scheduling.BookOnceInput) (scheduling.BookOnceOutput, error) {
	if input.DurationMinutes <= 0 {
		return scheduling.BookOnceOutput{}, scheduling.ErrInvalidDuration
	}

	start := input.Start.In(uc.hours.Location)
	end := start.Add(time.Duration(input.DurationMinutes) * time.Minute)
	rng, err := scheduling.NewTimeRange(start, end)
	if err != nil {
		return scheduling.BookOnceOutput{}, err
	}

	out := scheduling.BookOnceOutput{
		Title:      input.Title,
		CalendarID: sc.CalendarID,
		TimeRangeLocal: fmt.Sprintf("%s at %s (%s)",
			start.Format("Monday, January 02"), scheduling.FormatClockRange(start, end), uc.timezone),
	}

	uc.l.Infof(ctx, "BookOnce: title=%q start=%s duration=%dm calendar=%q",
		input.Title, start, input.DurationMinutes, sc.CalendarID)

	if !uc.IsAvailable(ctx, sc, rng) {
		out.Result = scheduling.BookingResult{Reason: scheduling.FailNotAvailable}
		return out, nil
	}

	created, err := uc.provider.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  sc.CalendarID,
		Summary:     input.Title,
		Description: input.Description,
		StartTime:   rng.Start,
		EndTime:     rng.End,
		Timezone:    "UTC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "BookOnce: create failed for %q: %v", input.Title, err)
		out.Result = scheduling.BookingResult{Reason: scheduling.FailProviderError}
		return out, nil
	}

	out.Result = scheduling.BookingResult{
		Created:  true,
		EventID:  created.ID,
		HTMLLink: created.HtmlLink,
	}
	return out, nil
}

// ValidateAccess checks that the scoped calendar has been shared with the
// service credentials.
func (uc *implUseCase) ValidateAccess(ctx context.Context, sc model.Scope) error {
	if _, err := uc.provider.GetCalendar(ctx, sc.CalendarID); err != nil {
		uc.l.Warnf(ctx, "ValidateAccess: failed for calendar %q: %v", sc.CalendarID, err)
		if gcalendar.IsAccessDenied(err) {
			return scheduling.ErrAccessDenied
		}
		return fmt.Errorf("%w: %v", scheduling.ErrProviderError, err)
	}
	return nil
}
