package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultCalendarID = "primary"

// processChatReq binds and validates the chat request body. A missing
// session ID gets a freshly minted one; a missing calendar ID falls back to
// the primary calendar.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	if req.CalendarID == "" {
		req.CalendarID = defaultCalendarID
	}
	return req, nil
}

// processValidateCalendarReq binds the calendar validation request body.
func (h *handler) processValidateCalendarReq(c *gin.Context) (validateCalendarReq, error) {
	var req validateCalendarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.CalendarID == "" {
		req.CalendarID = defaultCalendarID
	}
	return req, nil
}
