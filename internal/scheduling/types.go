package scheduling

import (
	"fmt"
	"time"
)

// Display formats for user-facing slot and occurrence labels.
const (
	ClockFormat = "03:04 PM"
	DateFormat  = "Monday, January 02, 2006"
)

// TimeRange is a half-open [Start, End) interval in UTC.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange builds a validated UTC time range.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	r := TimeRange{Start: start.UTC(), End: end.UTC()}
	if err := r.Validate(); err != nil {
		return TimeRange{}, err
	}
	return r, nil
}

// Validate checks the start < end invariant.
func (r TimeRange) Validate() error {
	if !r.Start.Before(r.End) {
		return ErrInvalidRange
	}
	return nil
}

// WorkingHours is the process-wide booking window configuration.
// Read-only after initialization; shared by all scan/suggest operations.
type WorkingHours struct {
	StartHour   int
	EndHour     int
	Granularity time.Duration
	Location    *time.Location
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Hour < other.Hour || (t.Hour == other.Hour && t.Minute < other.Minute)
}

// String renders the time-of-day as "03:04 PM".
func (t TimeOfDay) String() string {
	ref := time.Date(0, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC)
	return ref.Format(ClockFormat)
}

// Slot is a candidate free interval plus its user-facing label.
type Slot struct {
	Range      TimeRange
	StartLocal time.Time
	Display    string // e.g. "09:00 AM - 10:00 AM"
}

// RecurrenceSpec describes a weekly repeating daily window up to an end date.
type RecurrenceSpec struct {
	Weekdays   []time.Weekday
	DailyStart TimeOfDay
	DailyEnd   TimeOfDay
	RangeEnd   time.Time // calendar date, interpreted in the working-hours location
}

// Validate checks the spec invariants. The reference time anchors the
// "range end must not be in the past" rule.
func (s RecurrenceSpec) Validate(now time.Time, loc *time.Location) error {
	if len(s.Weekdays) == 0 {
		return ErrNoWeekdays
	}
	if !s.DailyStart.Before(s.DailyEnd) {
		return ErrInvalidDailyWindow
	}
	today := startOfDay(now.In(loc))
	if s.RangeEnd.In(loc).Before(today) {
		return ErrRangeEndPast
	}
	return nil
}

// Occurrence is one concrete dated instance of a recurrence spec.
type Occurrence struct {
	Range     TimeRange
	DateLabel string // e.g. "Monday, July 07, 2025"
	TimeLabel string // e.g. "04:15 PM - 06:00 PM"
}

// FailReason classifies why a booking attempt did not create an event.
type FailReason string

const (
	FailNotAvailable  FailReason = "not_available"
	FailProviderError FailReason = "provider_error"
)

// Message returns the user-facing description for the reason.
func (r FailReason) Message() string {
	switch r {
	case FailNotAvailable:
		return "Time slot not available"
	case FailProviderError:
		return "Failed to create event"
	default:
		return string(r)
	}
}

// BookingResult is the outcome of a single booking attempt.
type BookingResult struct {
	Created  bool
	EventID  string
	HTMLLink string
	Reason   FailReason // set only when Created is false
}

// SuggestSlotsInput asks for free slots on one calendar day.
type SuggestSlotsInput struct {
	Day             time.Time // any instant on the requested local day
	DurationMinutes int
}

// SuggestSlotsOutput carries the ordered suggestions (at most MaxSuggestions).
type SuggestSlotsOutput struct {
	Day   time.Time
	Slots []Slot
}

// FindNextInput asks for the first free slot from now.
type FindNextInput struct {
	DurationMinutes int
}

// FindNextOutput reports the first-fit slot, if any was found in the horizon.
type FindNextOutput struct {
	Found bool
	Slot  Slot
}

// BookOnceInput books a single event at an already-parsed local start time.
type BookOnceInput struct {
	Title           string
	Description     string
	Start           time.Time
	DurationMinutes int
}

// BookOnceOutput is the booking result plus display details for the caller.
type BookOnceOutput struct {
	Result         BookingResult
	Title          string
	TimeRangeLocal string
	CalendarID     string
}

// BookRecurringInput books one event per matching date of the spec.
type BookRecurringInput struct {
	Title       string
	Description string
	Spec        RecurrenceSpec
}

// CreatedOccurrence records one successfully booked occurrence.
type CreatedOccurrence struct {
	EventID  string `json:"event_id"`
	HTMLLink string `json:"html_link"`
	Date     string `json:"date"`
}

// FailedOccurrence records one occurrence that could not be booked.
type FailedOccurrence struct {
	Date   string     `json:"date"`
	Reason FailReason `json:"reason"`
}

// BookRecurringOutput partitions occurrences into created and failed,
// both preserving iteration order.
type BookRecurringOutput struct {
	Title     string
	Total     int
	Created   []CreatedOccurrence
	Failed    []FailedOccurrence
	TimeRange string
	EndDate   string
}

// NewSlot builds a slot from a local candidate interval. The stored range is
// normalized to UTC; the display label keeps the local wall-clock times.
func NewSlot(startLocal, endLocal time.Time) Slot {
	return Slot{
		Range:      TimeRange{Start: startLocal.UTC(), End: endLocal.UTC()},
		StartLocal: startLocal,
		Display:    FormatClockRange(startLocal, endLocal),
	}
}

// FormatClockRange renders "09:00 AM - 10:00 AM" style labels.
func FormatClockRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format(ClockFormat), end.Format(ClockFormat))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
