package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/internal/scheduling"
	"calendar-booking-agent/pkg/datemath"
	pkgLog "calendar-booking-agent/pkg/log"
)

// Outcome is what one operation produced: the text handed back to the model
// as the function response, plus structured booking details when an event
// was actually created. Message carries the user-facing confirmation for
// successful bookings.
type Outcome struct {
	Response    string
	BookingMade bool
	Booking     map[string]interface{}
	Message     string
}

// Dispatcher executes decoded requests against the scheduling use case.
type Dispatcher struct {
	l           pkgLog.Logger
	uc          scheduling.UseCase
	parser      *datemath.Parser
	timezone    string
	horizonDays int
	now         func() time.Time
}

// DispatcherConfig carries the dispatcher knobs.
type DispatcherConfig struct {
	Timezone    string
	HorizonDays int
	Now         func() time.Time
}

// NewDispatcher creates a dispatcher over the scheduling use case.
func NewDispatcher(l pkgLog.Logger, uc scheduling.UseCase, parser *datemath.Parser, cfg DispatcherConfig) *Dispatcher {
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = 30
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Dispatcher{
		l:           l,
		uc:          uc,
		parser:      parser,
		timezone:    cfg.Timezone,
		horizonDays: cfg.HorizonDays,
		now:         cfg.Now,
	}
}

// Execute runs one operation and renders its user-facing result. The switch
// is exhaustive over the Request variants.
func (d *Dispatcher) Execute(ctx context.Context, sc model.Scope, req Request) Outcome {
	switch r := req.(type) {
	case FindNextRequest:
		return d.findNext(ctx, sc, r)
	case SuggestSlotsRequest:
		return d.suggestSlots(ctx, sc, r)
	case BookOnceRequest:
		return d.bookOnce(ctx, sc, r)
	case BookRecurringRequest:
		return d.bookRecurring(ctx, sc, r)
	case ValidateAccessRequest:
		return d.validateAccess(ctx, sc, r)
	}
	return Outcome{Response: "Error: unsupported operation."}
}

func (d *Dispatcher) findNext(ctx context.Context, sc model.Scope, r FindNextRequest) Outcome {
	d.l.Infof(ctx, "agent.findNext: duration=%dm calendar=%s", r.DurationMinutes, sc.CalendarID)

	if err := d.uc.ValidateAccess(ctx, sc); err != nil {
		return Outcome{Response: accessDeniedMsg(sc.CalendarID)}
	}

	out, err := d.uc.FindNext(ctx, sc, scheduling.FindNextInput{DurationMinutes: r.DurationMinutes})
	if err != nil {
		return Outcome{Response: fmt.Sprintf("Error: %v", err)}
	}
	if !out.Found {
		return Outcome{Response: fmt.Sprintf(
			"I'm sorry, I couldn't find any available %d-minute slots in the next %d days.",
			r.DurationMinutes, d.horizonDays)}
	}

	return Outcome{Response: fmt.Sprintf(
		"Success! The next available %d-minute slot is on %s.",
		r.DurationMinutes, out.Slot.StartLocal.Format("Monday, January 02 at 03:04 PM MST"))}
}

func (d *Dispatcher) suggestSlots(ctx context.Context, sc model.Scope, r SuggestSlotsRequest) Outcome {
	d.l.Infof(ctx, "agent.suggestSlots: date=%q duration=%dm calendar=%s", r.Date, r.DurationMinutes, sc.CalendarID)

	if err := d.uc.ValidateAccess(ctx, sc); err != nil {
		return Outcome{Response: accessDeniedMsg(sc.CalendarID)}
	}

	day, err := d.parser.Parse(r.Date, d.now())
	if err != nil {
		return Outcome{Response: fmt.Sprintf("Error: I couldn't understand the date '%s'.", r.Date)}
	}

	out, err := d.uc.SuggestSlots(ctx, sc, scheduling.SuggestSlotsInput{
		Day:             day,
		DurationMinutes: r.DurationMinutes,
	})
	if err != nil {
		return Outcome{Response: fmt.Sprintf("Error: %v", err)}
	}

	dayLabel := day.Format("Monday, January 02")
	if len(out.Slots) == 0 {
		return Outcome{Response: fmt.Sprintf(
			"Sorry, no available %d-minute slots on %s.", r.DurationMinutes, dayLabel)}
	}

	var lines []string
	for _, slot := range out.Slots {
		lines = append(lines, "- "+slot.Display)
	}
	return Outcome{Response: fmt.Sprintf(
		"I found a few slots for %s:\n%s\nWhich one works for you?",
		dayLabel, strings.Join(lines, "\n"))}
}

func (d *Dispatcher) bookOnce(ctx context.Context, sc model.Scope, r BookOnceRequest) Outcome {
	d.l.Infof(ctx, "agent.bookOnce: title=%q start=%q duration=%dm calendar=%s",
		r.Title, r.StartTime, r.DurationMinutes, sc.CalendarID)

	if err := d.uc.ValidateAccess(ctx, sc); err != nil {
		return Outcome{Response: jsonError(accessDeniedMsg(sc.CalendarID))}
	}

	start, err := d.parser.ParseDateTime(r.StartTime, d.now())
	if err != nil {
		return Outcome{Response: jsonError(fmt.Sprintf("I couldn't understand the time '%s'.", r.StartTime))}
	}

	out, err := d.uc.BookOnce(ctx, sc, scheduling.BookOnceInput{
		Title:           r.Title,
		Description:     r.Description,
		Start:           start,
		DurationMinutes: r.DurationMinutes,
	})
	if err != nil {
		return Outcome{Response: jsonError(fmt.Sprintf("Error: %v", err))}
	}

	if !out.Result.Created {
		if out.Result.Reason == scheduling.FailNotAvailable {
			return Outcome{Response: jsonError("Sorry, that time is no longer available.")}
		}
		return Outcome{Response: jsonError("Error creating the event on Google Calendar.")}
	}

	message := fmt.Sprintf("Great! I've booked '%s' for you.", out.Title)
	details := map[string]interface{}{
		"title":                out.Title,
		"time_range_local":     out.TimeRangeLocal,
		"google_calendar_link": out.Result.HTMLLink,
		"event_id":             out.Result.EventID,
		"calendar_id":          sc.CalendarID,
	}
	return Outcome{
		Response: jsonBody(map[string]interface{}{
			"success": true,
			"message": message,
			"details": details,
		}),
		BookingMade: true,
		Booking:     details,
		Message:     message,
	}
}

func (d *Dispatcher) bookRecurring(ctx context.Context, sc model.Scope, r BookRecurringRequest) Outcome {
	d.l.Infof(ctx, "agent.bookRecurring: title=%q weekdays=%q window=%s-%s until=%q calendar=%s",
		r.Title, r.Weekdays, r.StartTime, r.EndTime, r.EndDate, sc.CalendarID)

	if err := d.uc.ValidateAccess(ctx, sc); err != nil {
		return Outcome{Response: jsonError(accessDeniedMsg(sc.CalendarID))}
	}

	endDate, err := d.parser.Parse(r.EndDate, d.now())
	if err != nil {
		return Outcome{Response: jsonError(fmt.Sprintf("I couldn't understand the end date '%s'.", r.EndDate))}
	}

	weekdays, err := datemath.ParseWeekdays(r.Weekdays)
	if err != nil {
		return Outcome{Response: jsonError(fmt.Sprintf(
			"I couldn't understand the weekdays '%s'. Please use format like 'tuesday,thursday,friday'.", r.Weekdays))}
	}

	startHour, startMin, err := datemath.ParseClock(r.StartTime)
	if err != nil {
		return Outcome{Response: jsonError("Please use HH:MM format for times (e.g., '16:15', '18:00').")}
	}
	endHour, endMin, err := datemath.ParseClock(r.EndTime)
	if err != nil {
		return Outcome{Response: jsonError("Please use HH:MM format for times (e.g., '16:15', '18:00').")}
	}

	out, err := d.uc.BookRecurring(ctx, sc, scheduling.BookRecurringInput{
		Title:       r.Title,
		Description: r.Description,
		Spec: scheduling.RecurrenceSpec{
			Weekdays:   weekdays,
			DailyStart: scheduling.TimeOfDay{Hour: startHour, Minute: startMin},
			DailyEnd:   scheduling.TimeOfDay{Hour: endHour, Minute: endMin},
			RangeEnd:   endDate,
		},
	})
	if err != nil {
		if errors.Is(err, scheduling.ErrRangeEndPast) {
			return Outcome{Response: jsonError("No matching dates found for the specified weekdays and date range.")}
		}
		return Outcome{Response: jsonError(fmt.Sprintf("Error: %v", err))}
	}

	if out.Total == 0 {
		return Outcome{Response: jsonError("No matching dates found for the specified weekdays and date range.")}
	}
	if len(out.Created) == 0 {
		return Outcome{Response: jsonError("Failed to create any recurring appointments. Please check for time conflicts.")}
	}

	summary := fmt.Sprintf("Successfully booked %d out of %d recurring appointments for '%s'",
		len(out.Created), out.Total, out.Title)
	if len(out.Failed) > 0 {
		summary += fmt.Sprintf(". %d appointments couldn't be created due to conflicts.", len(out.Failed))
	}

	var weekdayNames []string
	for _, wd := range weekdays {
		weekdayNames = append(weekdayNames, wd.String())
	}
	details := map[string]interface{}{
		"title":          out.Title,
		"weekdays":       weekdayNames,
		"time_range":     out.TimeRange,
		"end_date":       out.EndDate,
		"created_events": out.Created,
		"failed_events":  out.Failed,
		"calendar_id":    sc.CalendarID,
	}
	return Outcome{
		Response: jsonBody(map[string]interface{}{
			"success": true,
			"message": summary,
			"details": details,
		}),
		BookingMade: true,
		Booking:     details,
		Message:     summary,
	}
}

func (d *Dispatcher) validateAccess(ctx context.Context, sc model.Scope, r ValidateAccessRequest) Outcome {
	if r.CalendarID != "" {
		sc.CalendarID = r.CalendarID
	}
	d.l.Infof(ctx, "agent.validateAccess: calendar=%s", sc.CalendarID)

	err := d.uc.ValidateAccess(ctx, sc)
	if err == nil {
		return Outcome{Response: fmt.Sprintf(
			"✅ Calendar access validated successfully for '%s'. You're all set!", sc.CalendarID)}
	}
	if errors.Is(err, scheduling.ErrAccessDenied) {
		return Outcome{Response: fmt.Sprintf(
			"❌ Cannot access calendar '%s'. Please ensure the service account has been granted access with 'Make changes to events' permission.", sc.CalendarID)}
	}
	return Outcome{Response: fmt.Sprintf("Error: Could not validate calendar '%s': %v", sc.CalendarID, err)}
}

func accessDeniedMsg(calendarID string) string {
	return fmt.Sprintf(
		"Error: Cannot access calendar '%s'. Please ensure the service account has been granted access to your calendar.",
		calendarID)
}

func jsonError(msg string) string {
	return jsonBody(map[string]interface{}{"error": msg})
}

func jsonBody(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return `{"error": "internal encoding failure"}`
	}
	return string(raw)
}
