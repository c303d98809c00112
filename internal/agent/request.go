package agent

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Operation names exposed to the model for function calling.
const (
	OpFindNextSlot  = "find_next_available_slot"
	OpSuggestSlots  = "suggest_available_slots"
	OpBookOnce      = "book_appointment"
	OpBookRecurring = "book_recurring_appointment"
	OpValidateSetup = "validate_calendar_setup"
)

// ErrUnknownOperation is returned when the model asks for an operation
// outside the supported set.
var ErrUnknownOperation = errors.New("unknown operation")

// Request is one decoded operation the model asked for. The variant set is
// closed; Dispatcher.Execute switches over every variant.
type Request interface {
	isRequest()
}

// FindNextRequest asks for the soonest free slot starting from now.
type FindNextRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

// SuggestSlotsRequest asks for free slots on one natural-language date.
type SuggestSlotsRequest struct {
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration_minutes"`
}

// BookOnceRequest books a single appointment at a natural-language time.
type BookOnceRequest struct {
	Title           string `json:"title"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description"`
}

// BookRecurringRequest books one appointment per matching weekday until an
// end date. Times are strict HH:MM; weekdays a comma-separated name list.
type BookRecurringRequest struct {
	Title       string `json:"title"`
	Weekdays    string `json:"weekdays"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// ValidateAccessRequest checks that the scoped calendar is reachable.
// CalendarID, when set, overrides the session's calendar.
type ValidateAccessRequest struct {
	CalendarID string `json:"calendar_id"`
}

func (FindNextRequest) isRequest()       {}
func (SuggestSlotsRequest) isRequest()   {}
func (BookOnceRequest) isRequest()       {}
func (BookRecurringRequest) isRequest()  {}
func (ValidateAccessRequest) isRequest() {}

// DecodeRequest maps a model function call onto its typed request. Missing
// duration fields default to 60 minutes.
func DecodeRequest(name string, args map[string]interface{}) (Request, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode args for %s: %w", name, err)
	}

	switch name {
	case OpFindNextSlot:
		req := FindNextRequest{DurationMinutes: 60}
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("failed to parse %s args: %w", name, err)
		}
		return req, nil
	case OpSuggestSlots:
		req := SuggestSlotsRequest{DurationMinutes: 60}
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("failed to parse %s args: %w", name, err)
		}
		return req, nil
	case OpBookOnce:
		req := BookOnceRequest{DurationMinutes: 60}
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("failed to parse %s args: %w", name, err)
		}
		return req, nil
	case OpBookRecurring:
		var req BookRecurringRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("failed to parse %s args: %w", name, err)
		}
		return req, nil
	case OpValidateSetup:
		var req ValidateAccessRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("failed to parse %s args: %w", name, err)
		}
		return req, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
}
