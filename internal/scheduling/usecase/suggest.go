package usecase

import (
	"context"
	"time"

	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/internal/scheduling"
)

// SuggestSlots walks the working window of the requested day in fixed
// granularity steps and collects up to MaxSuggestions free slots.
// An empty result is a valid outcome, not an error.
func (uc *implUseCase) SuggestSlots(ctx context.Context, sc model.Scope, input scheduling.SuggestSlotsInput) (scheduling.SuggestSlotsOutput, error) {
	if input.DurationMinutes <= 0 {
		return scheduling.SuggestSlotsOutput{}, scheduling.ErrInvalidDuration
	}

	day := input.Day.In(uc.hours.Location)
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), uc.hours.StartHour, 0, 0, 0, uc.hours.Location)
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), uc.hours.EndHour, 0, 0, 0, uc.hours.Location)
	duration := time.Duration(input.DurationMinutes) * time.Minute

	uc.l.Infof(ctx, "SuggestSlots: day=%s duration=%dm calendar=%q",
		day.Format(scheduling.DateFormat), input.DurationMinutes, sc.CalendarID)

	slots := make([]scheduling.Slot, 0, MaxSuggestions)
	for cursor := windowStart; !cursor.Add(duration).After(windowEnd); cursor = cursor.Add(uc.hours.Granularity) {
		end := cursor.Add(duration)
		candidate := scheduling.TimeRange{Start: cursor.UTC(), End: end.UTC()}

		if uc.IsAvailable(ctx, sc, candidate) {
			slots = append(slots, scheduling.NewSlot(cursor, end))
		}
		if len(slots) >= MaxSuggestions {
			break
		}
	}

	return scheduling.SuggestSlotsOutput{Day: day, Slots: slots}, nil
}
