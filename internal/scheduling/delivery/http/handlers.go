package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/pkg/response"
)

// Chat godoc
// @Summary     Chat with the booking assistant
// @Description Sends one message to the conversational agent. The agent may check availability, suggest slots or create events before answering.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{SessionID: req.SessionID, CalendarID: req.CalendarID}
	result, err := h.conv.ProcessMessage(ctx, sc, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "conv.ProcessMessage: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, chatResp{
		Response:       result.Reply,
		SessionID:      req.SessionID,
		BookingMade:    result.BookingMade,
		BookingDetails: result.BookingDetails,
	})
}

// ValidateCalendar godoc
// @Summary     Validate calendar access
// @Description Checks whether the service account can reach the given calendar.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body validateCalendarReq true "Calendar to validate"
// @Success     200 {object} validateCalendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /validate-calendar [POST]
func (h *handler) ValidateCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processValidateCalendarReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	err = h.uc.ValidateAccess(ctx, model.Scope{CalendarID: req.CalendarID})
	resp := validateCalendarResp{
		Valid:      err == nil,
		CalendarID: req.CalendarID,
		Message:    "Calendar access validated successfully.",
	}
	if err != nil {
		h.l.Warnf(ctx, "uc.ValidateAccess: %v", err)
		resp.Message = fmt.Sprintf(
			"Cannot access calendar '%s'. Please ensure you've granted access to the service account.",
			req.CalendarID)
	}

	response.OK(c, resp)
}

// Instructions godoc
// @Summary     Calendar sharing instructions
// @Description Returns the steps a new user follows to share their calendar with the service account.
// @Tags        Scheduling
// @Produce     json
// @Success     200 {object} instructionsResp
// @Router      /instructions [GET]
func (h *handler) Instructions(c *gin.Context) {
	response.OK(c, instructionsResp{
		ServiceAccountEmail: h.serviceAccountEmail,
		Instructions: []string{
			"1. Go to Google Calendar (calendar.google.com)",
			"2. Click on your calendar in the left sidebar",
			"3. Select 'Settings and sharing'",
			"4. Scroll to 'Share with specific people or groups'",
			fmt.Sprintf("5. Add: %s", h.serviceAccountEmail),
			"6. Set permission to 'Make changes to events'",
			"7. (Optional) Get your Calendar ID from 'Integrate calendar' section",
			"8. Use 'primary' for your main calendar or paste your specific Calendar ID",
			"9. Start using the assistant!",
		},
		RecurringExamples: []string{
			"Book a meeting every Tuesday and Thursday from 2 PM to 4 PM until July 15th",
			"Schedule eco423 class every Tuesday, Thursday, and Friday from 4:15 PM to 6:00 PM till July 11th",
			"Set up weekly team meeting every Monday from 10 AM to 11 AM until end of month",
		},
	})
}
