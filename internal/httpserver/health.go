package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"calendar-booking-agent/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Calendar Booking Agent API is running!"
	HealthVersion = "2.0.0"
	ServiceName   = "calendar-booking-agent"
)

// root handles requests to the API root
// @Summary Root
// @Description API identity and status
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API identity"
// @Router / [get]
func (srv HTTPServer) root(c *gin.Context) {
	response.OK(c, gin.H{
		"message": HealthMessage,
		"status":  "healthy",
		"version": HealthVersion,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":       "healthy",
		"service":      ServiceName,
		"version":      HealthVersion,
		"current_time": time.Now().Format(time.RFC3339),
	})
}

// readyCheck handles readiness check — returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"service": ServiceName,
		"version": HealthVersion,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
		"version": HealthVersion,
	})
}
