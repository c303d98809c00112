package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts natural-language date and time strings to absolute
// time.Time values in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	isoDateRe    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	monthDayRe   = regexp.MustCompile(`^([a-z]+) (\d{1,2})(?:st|nd|rd|th)?(?:,? (\d{4}))?$`)
	clock12Re    = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)
	clock24Re    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// Parse converts a date string to midnight of the named day. The baseTime is
// the reference point (usually time.Now()). Text it cannot understand yields
// ErrUnparsable so callers can ask the user to rephrase.
func (p *Parser) Parse(text string, baseTime time.Time) (time.Time, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	switch text {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(text, "in ") {
		return p.parseInDuration(text, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(text, "next ") {
		return p.parseNextWeekday(strings.TrimPrefix(text, "next "), baseTime)
	}

	// Bare weekday name means the upcoming one.
	if _, ok := weekdayNames[text]; ok {
		return p.parseNextWeekday(text, baseTime)
	}

	// Absolute forms: "2025-07-11", "july 11", "july 11th 2025".
	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		t, err := time.ParseInLocation("2006-01-02", text, p.location)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
		}
		return t, nil
	}
	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		if t, err := p.parseMonthDay(m, baseTime); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
}

// ParseDateTime converts "<date> at <clock>" or a bare clock (meaning today)
// into an absolute instant, e.g. "tomorrow at 3 pm", "next monday at 10:30 am".
func (p *Parser) ParseDateTime(text string, baseTime time.Time) (time.Time, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	datePart := text
	clockPart := ""
	if idx := strings.LastIndex(text, " at "); idx >= 0 {
		datePart = strings.TrimSpace(text[:idx])
		clockPart = strings.TrimSpace(text[idx+4:])
	} else if clock12Re.MatchString(text) || clock24Re.MatchString(text) {
		datePart = "today"
		clockPart = text
	}

	day, err := p.Parse(datePart, baseTime)
	if err != nil {
		return time.Time{}, err
	}
	if clockPart == "" {
		return day, nil
	}

	hour, minute, err := parseClockText(clockPart)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location), nil
}

// ParseClock parses a strict 24-hour "HH:MM" wall-clock string.
func ParseClock(text string) (hour, minute int, err error) {
	m := clock24Re.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: expected HH:MM, got %q", ErrUnparsable, text)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: out of range clock %q", ErrUnparsable, text)
	}
	return hour, minute, nil
}

// weekdayNames accepts both full names and common three-letter abbreviations.
var weekdayNames = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// ParseWeekdays parses a comma-separated weekday list like
// "tuesday,thursday,friday" or "mon,wed,fri". Order is preserved and
// duplicates removed.
func ParseWeekdays(text string) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]bool)
	var out []time.Weekday
	for _, part := range strings.Split(text, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		wd, ok := weekdayNames[part]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrUnparsable, part)
		}
		if !seen[wd] {
			seen[wd] = true
			out = append(out, wd)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no weekdays in %q", ErrUnparsable, text)
	}
	return out, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(text string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(text)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration %q", ErrUnparsable, text)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return time.Time{}, fmt.Errorf("%w: unknown time unit in %q", ErrUnparsable, text)
}

// parseNextWeekday handles "monday", "friday" etc., resolving to the next
// future instance of that weekday.
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdayNames[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnparsable, dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// parseMonthDay handles "july 11", "july 11th", "july 11 2025". A date with
// no year that already passed this year rolls to the next year.
func (p *Parser) parseMonthDay(m []string, baseTime time.Time) (time.Time, error) {
	month, ok := monthNames[m[1]]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown month %q", ErrUnparsable, m[1])
	}
	day, _ := strconv.Atoi(m[2])
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: day out of range in %q", ErrUnparsable, m[0])
	}

	base := baseTime.In(p.location)
	year := base.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if m[3] == "" && t.Before(p.startOfDay(base)) {
		t = t.AddDate(1, 0, 0)
	}
	return t, nil
}

// parseClockText accepts "3 pm", "3:30pm", "15:04".
func parseClockText(text string) (hour, minute int, err error) {
	text = strings.TrimSpace(text)
	if m := clock12Re.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: out of range clock %q", ErrUnparsable, text)
		}
		if hour == 12 {
			hour = 0
		}
		if m[3] == "pm" {
			hour += 12
		}
		return hour, minute, nil
	}
	return ParseClock(text)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
