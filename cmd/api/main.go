package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-booking-agent/config"
	_ "calendar-booking-agent/docs" // Swagger docs
	"calendar-booking-agent/internal/agent"
	"calendar-booking-agent/internal/agent/orchestrator"
	"calendar-booking-agent/internal/httpserver"
	"calendar-booking-agent/internal/middleware"
	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/internal/scheduling"
	schedulingHTTP "calendar-booking-agent/internal/scheduling/delivery/http"
	"calendar-booking-agent/internal/scheduling/usecase"
	"calendar-booking-agent/internal/session"
	"calendar-booking-agent/pkg/datemath"
	"calendar-booking-agent/pkg/gcalendar"
	"calendar-booking-agent/pkg/gemini"
	"calendar-booking-agent/pkg/log"
)

// @title       Calendar Booking Agent API
// @description Conversational appointment booking over Google Calendar, driven by Gemini function calling.
// @version     2.0.0
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Booking Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Scheduling.Timezone)

	// 3. Timezone & date parsing
	location, err := time.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduling.Timezone, err)
		location = time.UTC
	}

	dateParser, err := datemath.NewParser(location.String())
	if err != nil {
		logger.Error(ctx, "Failed to initialize date parser: ", err)
		return
	}

	// 4. Google Calendar provider
	var provider scheduling.CalendarProvider
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Error(ctx, "Google Calendar not available: ", calErr)
			logger.Warn(ctx, "→ Check google_calendar.credentials_path and the service account key file")
			return
		}
		provider = calendarClient
		logger.Info(ctx, "✅ Google Calendar initialized")
	} else {
		logger.Error(ctx, "google_calendar.credentials_path is required")
		return
	}

	// 5. Scheduling use case
	schedulingUC := usecase.New(logger, provider, usecase.Config{
		Hours: scheduling.WorkingHours{
			StartHour:   cfg.Scheduling.WorkHoursStart,
			EndHour:     cfg.Scheduling.WorkHoursEnd,
			Granularity: time.Duration(cfg.Scheduling.GranularityMinutes) * time.Minute,
			Location:    location,
		},
		HorizonDays: cfg.Scheduling.SearchLimitDays,
		Timezone:    cfg.Scheduling.Timezone,
	})

	// 6. Gemini LLM client
	llm, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
		APIURL: cfg.Gemini.APIURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}

	// 7. Agent loop: sessions, dispatcher, orchestrator
	sessions := session.NewStore(session.Config{
		MaxEntries: cfg.Session.MaxEntries,
		TTL:        time.Duration(cfg.Session.TTLMinutes) * time.Minute,
	})

	dispatcher := agent.NewDispatcher(logger, schedulingUC, dateParser, agent.DispatcherConfig{
		Timezone:    cfg.Scheduling.Timezone,
		HorizonDays: cfg.Scheduling.SearchLimitDays,
	})

	conversation := orchestrator.New(logger, llm, dispatcher, sessions, orchestrator.Config{
		Timezone: cfg.Scheduling.Timezone,
	})

	// 8. HTTP delivery
	schedulingHandler := schedulingHTTP.New(logger, conversation, schedulingUC, cfg.GoogleCalendar.ServiceAccountEmail)

	mw := middleware.New(logger, middleware.Config{
		Environment:      model.Environment(cfg.Environment.Name),
		RateLimitPerMin:  cfg.RateLimit.PerMin,
		RateLimitEnabled: cfg.RateLimit.Enabled,
	})

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        mw,
		SchedulingHandler: schedulingHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
