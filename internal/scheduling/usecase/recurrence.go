package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/internal/scheduling"
	"calendar-booking-agent/pkg/gcalendar"
)

// rruleWeekday maps time.Weekday onto rrule BYDAY values.
var rruleWeekday = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// Materialize expands the recurrence spec into one occurrence per matching
// calendar date between from and RangeEnd inclusive, in ascending order.
// An empty result means no weekday matched in the window, which is a valid
// reportable outcome.
func (uc *implUseCase) Materialize(spec scheduling.RecurrenceSpec, from time.Time) ([]scheduling.Occurrence, error) {
	loc := uc.hours.Location
	if err := spec.Validate(from, loc); err != nil {
		return nil, err
	}

	fromLocal := from.In(loc)
	dtstart := time.Date(fromLocal.Year(), fromLocal.Month(), fromLocal.Day(),
		spec.DailyStart.Hour, spec.DailyStart.Minute, 0, 0, loc)
	endLocal := spec.RangeEnd.In(loc)
	until := time.Date(endLocal.Year(), endLocal.Month(), endLocal.Day(),
		spec.DailyStart.Hour, spec.DailyStart.Minute, 0, 0, loc)

	byweekday := make([]rrule.Weekday, 0, len(spec.Weekdays))
	for _, wd := range spec.Weekdays {
		byweekday = append(byweekday, rruleWeekday[wd])
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byweekday,
		Dtstart:   dtstart,
		Until:     until,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build recurrence rule: %w", err)
	}

	starts := rule.All()
	occurrences := make([]scheduling.Occurrence, 0, len(starts))
	for _, startLocal := range starts {
		occEnd := time.Date(startLocal.Year(), startLocal.Month(), startLocal.Day(),
			spec.DailyEnd.Hour, spec.DailyEnd.Minute, 0, 0, loc)
		occurrences = append(occurrences, scheduling.Occurrence{
			Range:     scheduling.TimeRange{Start: startLocal.UTC(), End: occEnd.UTC()},
			DateLabel: startLocal.Format(scheduling.DateFormat),
			TimeLabel: scheduling.FormatClockRange(startLocal, occEnd),
		})
	}
	return occurrences, nil
}

// BookRecurring books every occurrence of the spec independently: a single
// conflict or provider failure never aborts the remaining occurrences.
// Created and failed lists preserve iteration order.
func (uc *implUseCase) BookRecurring(ctx context.Context, sc model.Scope, input scheduling.BookRecurringInput) (scheduling.BookRecurringOutput, error) {
	occurrences, err := uc.Materialize(input.Spec, uc.now())
	if err != nil {
		return scheduling.BookRecurringOutput{}, err
	}

	out := scheduling.BookRecurringOutput{
		Title:     input.Title,
		Total:     len(occurrences),
		Created:   make([]scheduling.CreatedOccurrence, 0, len(occurrences)),
		Failed:    make([]scheduling.FailedOccurrence, 0),
		TimeRange: fmt.Sprintf("%s - %s (%s)", input.Spec.DailyStart, input.Spec.DailyEnd, uc.timezone),
		EndDate:   input.Spec.RangeEnd.In(uc.hours.Location).Format("January 02, 2006"),
	}

	uc.l.Infof(ctx, "BookRecurring: title=%q occurrences=%d calendar=%q", input.Title, out.Total, sc.CalendarID)

	for _, occ := range occurrences {
		if !uc.IsAvailable(ctx, sc, occ.Range) {
			out.Failed = append(out.Failed, scheduling.FailedOccurrence{
				Date:   occ.DateLabel,
				Reason: scheduling.FailNotAvailable,
			})
			continue
		}

		created, err := uc.provider.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  sc.CalendarID,
			Summary:     input.Title,
			Description: input.Description,
			StartTime:   occ.Range.Start,
			EndTime:     occ.Range.End,
			Timezone:    "UTC",
		})
		if err != nil {
			uc.l.Errorf(ctx, "BookRecurring: create failed for %s: %v", occ.DateLabel, err)
			out.Failed = append(out.Failed, scheduling.FailedOccurrence{
				Date:   occ.DateLabel,
				Reason: scheduling.FailProviderError,
			})
			continue
		}

		out.Created = append(out.Created, scheduling.CreatedOccurrence{
			EventID:  created.ID,
			HTMLLink: created.HtmlLink,
			Date:     occ.DateLabel,
		})
	}

	return out, nil
}
