package http

import (
	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cal := rg.Group("/calendar")
	{
		cal.GET("/google/calendars/writable", mw.Auth(), h.ListWritable)
	}
}
