package http

import (
	"errors"
	"strings"
)

var errMessageRequired = errors.New("message is required")

// chatReq is the chat endpoint request body.
type chatReq struct {
	Message    string `json:"message"`
	SessionID  string `json:"session_id"`
	CalendarID string `json:"calendar_id"`
}

func (r *chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errMessageRequired
	}
	return nil
}

// chatResp is the chat endpoint response body. SessionID echoes the caller's
// session or carries a freshly minted one when none was supplied.
type chatResp struct {
	Response       string                 `json:"response"`
	SessionID      string                 `json:"session_id"`
	BookingMade    bool                   `json:"booking_made"`
	BookingDetails map[string]interface{} `json:"booking_details,omitempty"`
}

// validateCalendarReq is the calendar validation request body.
type validateCalendarReq struct {
	CalendarID string `json:"calendar_id"`
}

// validateCalendarResp reports whether the calendar can be reached.
type validateCalendarResp struct {
	Valid      bool   `json:"valid"`
	CalendarID string `json:"calendar_id"`
	Message    string `json:"message"`
}

// instructionsResp walks a new user through sharing their calendar.
type instructionsResp struct {
	ServiceAccountEmail string   `json:"service_account_email"`
	Instructions        []string `json:"instructions"`
	RecurringExamples   []string `json:"recurring_examples"`
}
