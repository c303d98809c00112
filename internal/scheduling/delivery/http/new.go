package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"calendar-booking-agent/internal/agent/orchestrator"
	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/internal/scheduling"
	"calendar-booking-agent/pkg/log"
)

// Conversation runs one chat turn through the agent loop.
type Conversation interface {
	ProcessMessage(ctx context.Context, sc model.Scope, message string) (orchestrator.Result, error)
}

// Handler is the public interface for the scheduling HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ValidateCalendar(c *gin.Context)
	Instructions(c *gin.Context)
}

type handler struct {
	l                   log.Logger
	conv                Conversation
	uc                  scheduling.UseCase
	serviceAccountEmail string
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the scheduling domain.
func New(l log.Logger, conv Conversation, uc scheduling.UseCase, serviceAccountEmail string) Handler {
	return &handler{
		l:                   l,
		conv:                conv,
		uc:                  uc,
		serviceAccountEmail: serviceAccountEmail,
	}
}
