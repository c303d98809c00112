package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-booking-agent/internal/model"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func newRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.CORS(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestCORS(t *testing.T) {
	t.Run("Development Allows Any Origin", func(t *testing.T) {
		mw := New(mockLogger{}, Config{Environment: model.EnvironmentDevelopment})
		r := newRouter(mw)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected wildcard origin, got %q", got)
		}
	})

	t.Run("Production Echoes Origin", func(t *testing.T) {
		mw := New(mockLogger{}, Config{Environment: model.EnvironmentProduction})
		r := newRouter(mw)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://booking.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://booking.example.com" {
			t.Errorf("expected echoed origin, got %q", got)
		}
	})

	t.Run("Preflight Short Circuits", func(t *testing.T) {
		mw := New(mockLogger{}, Config{Environment: model.EnvironmentDevelopment})
		r := newRouter(mw)

		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204 for preflight, got %d", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("Throttles After Burst", func(t *testing.T) {
		mw := New(mockLogger{}, Config{
			Environment:      model.EnvironmentDevelopment,
			RateLimitEnabled: true,
			RateLimitPerMin:  10, // burst of 1
		})
		r := newRouter(mw)

		codes := make(map[int]int)
		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			codes[w.Code]++
		}
		if codes[http.StatusTooManyRequests] == 0 {
			t.Errorf("expected some requests throttled, got %v", codes)
		}
		if codes[http.StatusOK] == 0 {
			t.Errorf("expected the first request to pass, got %v", codes)
		}
	})

	t.Run("Clients Limited Independently", func(t *testing.T) {
		mw := New(mockLogger{}, Config{
			Environment:      model.EnvironmentDevelopment,
			RateLimitEnabled: true,
			RateLimitPerMin:  10,
		})
		r := newRouter(mw)

		exhaust := httptest.NewRequest(http.MethodGet, "/ping", nil)
		exhaust.RemoteAddr = "10.0.0.1:1234"
		for i := 0; i < 5; i++ {
			r.ServeHTTP(httptest.NewRecorder(), exhaust)
		}

		other := httptest.NewRequest(http.MethodGet, "/ping", nil)
		other.Header.Set("X-Forwarded-For", "10.0.0.2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, other)

		if w.Code != http.StatusOK {
			t.Errorf("expected fresh client to pass, got %d", w.Code)
		}
	})

	t.Run("Disabled Is A No-Op", func(t *testing.T) {
		mw := New(mockLogger{}, Config{Environment: model.EnvironmentDevelopment})
		r := newRouter(mw)

		for i := 0; i < 20; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d throttled with limiter disabled", i)
			}
		}
	})
}
