package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)
	rg.POST("/validate-calendar", h.ValidateCalendar)
	rg.GET("/instructions", h.Instructions)
}
