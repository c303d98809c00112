package usecase

import (
	"context"
	"time"

	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/internal/scheduling"
)

// FindNext scans forward from now across the search horizon for the first
// free slot of the requested duration inside working hours (first-fit).
// Exhausting the horizon yields Found=false, a legitimate negative result.
func (uc *implUseCase) FindNext(ctx context.Context, sc model.Scope, input scheduling.FindNextInput) (scheduling.FindNextOutput, error) {
	if input.DurationMinutes <= 0 {
		return scheduling.FindNextOutput{}, scheduling.ErrInvalidDuration
	}

	loc := uc.hours.Location
	duration := time.Duration(input.DurationMinutes) * time.Minute
	start := uc.now().In(loc)
	deadline := start.AddDate(0, 0, uc.horizonDays)

	uc.l.Infof(ctx, "FindNext: duration=%dm horizon=%dd calendar=%q",
		input.DurationMinutes, uc.horizonDays, sc.CalendarID)

	cursor := start
	for cursor.Before(deadline) {
		cursor = ceilToHalfHour(cursor)

		// Day-level skip: weekends and out-of-hours cursors jump to the
		// following day's window start.
		if isWeekend(cursor.Weekday()) || cursor.Hour() < uc.hours.StartHour || cursor.Hour() >= uc.hours.EndHour {
			cursor = uc.nextDayWindowStart(cursor)
			continue
		}

		end := cursor.Add(duration)
		if end.Hour() > uc.hours.EndHour || (end.Hour() == uc.hours.EndHour && end.Minute() > 0) || !sameDay(cursor, end) {
			cursor = uc.nextDayWindowStart(cursor)
			continue
		}

		candidate := scheduling.TimeRange{Start: cursor.UTC(), End: end.UTC()}
		if uc.IsAvailable(ctx, sc, candidate) {
			return scheduling.FindNextOutput{Found: true, Slot: scheduling.NewSlot(cursor, end)}, nil
		}

		cursor = cursor.Add(uc.hours.Granularity)
	}

	return scheduling.FindNextOutput{Found: false}, nil
}

// ceilToHalfHour snaps a local time forward to the next :00 or :30 boundary.
func ceilToHalfHour(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	switch {
	case t.Minute() == 0 || t.Minute() == 30:
		return t
	case t.Minute() < 30:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 30, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location()).Add(time.Hour)
	}
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (uc *implUseCase) nextDayWindowStart(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), uc.hours.StartHour, 0, 0, 0, t.Location())
}
