package usecase_test

import (
	"context"
	"time"

	"calendar-booking-agent/internal/scheduling"
	"calendar-booking-agent/internal/scheduling/usecase"
	"calendar-booking-agent/pkg/gcalendar"
	pkgLog "calendar-booking-agent/pkg/log"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var _ pkgLog.Logger = (*mockLogger)(nil)

// mockProvider implements scheduling.CalendarProvider with overridable hooks.
// Defaults: calendar is fully free, creates succeed with a fixed id.
type mockProvider struct {
	listFunc   func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	createFunc func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	getFunc    func(calendarID string) (*gcalendar.CalendarInfo, error)

	listCalls   []gcalendar.ListEventsRequest
	createCalls []gcalendar.CreateEventRequest
}

func (m *mockProvider) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.listCalls = append(m.listCalls, req)
	if m.listFunc != nil {
		return m.listFunc(req)
	}
	return nil, nil
}

func (m *mockProvider) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.createCalls = append(m.createCalls, req)
	if m.createFunc != nil {
		return m.createFunc(req)
	}
	return &gcalendar.Event{
		ID:       "event-123",
		HtmlLink: "https://calendar.google.com/event-123",
	}, nil
}

func (m *mockProvider) GetCalendar(ctx context.Context, calendarID string) (*gcalendar.CalendarInfo, error) {
	if m.getFunc != nil {
		return m.getFunc(calendarID)
	}
	return &gcalendar.CalendarInfo{ID: calendarID}, nil
}

var _ scheduling.CalendarProvider = (*mockProvider)(nil)

// busyDuring reports ≥1 overlapping event for requests intersecting the range.
func busyDuring(busyStart, busyEnd time.Time) func(gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
		if req.TimeMin.Before(busyEnd) && req.TimeMax.After(busyStart) {
			return []gcalendar.Event{{ID: "busy-1", Summary: "Existing Event", StartTime: busyStart, EndTime: busyEnd}}, nil
		}
		return nil, nil
	}
}

func testLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic(err)
	}
	return loc
}

func newTestUseCase(provider *mockProvider, now time.Time) scheduling.UseCase {
	loc := testLocation()
	return usecase.New(&mockLogger{}, provider, usecase.Config{
		Hours: scheduling.WorkingHours{
			StartHour:   9,
			EndHour:     17,
			Granularity: 30 * time.Minute,
			Location:    loc,
		},
		HorizonDays: 30,
		Timezone:    "Asia/Kolkata",
		Now:         func() time.Time { return now },
	})
}
