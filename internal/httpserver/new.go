package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-booking-agent/internal/middleware"
	schedulingHTTP "calendar-booking-agent/internal/scheduling/delivery/http"
	"calendar-booking-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware middleware.Middleware

	// Scheduling domain
	schedulingHandler schedulingHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	SchedulingHandler schedulingHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 cfg.Logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		middleware:        cfg.Middleware,
		schedulingHandler: cfg.SchedulingHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.schedulingHandler == nil {
		return errors.New("scheduling handler is required")
	}
	return nil
}
