package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Kolkata"

	// Recurrence holds optional RFC 5545 RRULE lines, e.g.
	// "RRULE:FREQ=WEEKLY;BYDAY=TU,TH;UNTIL=20250711T000000Z".
	Recurrence []string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// CalendarInfo is metadata of a calendar the credentials can reach.
type CalendarInfo struct {
	ID       string
	Summary  string
	Timezone string
}
