package http

import (
	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Preview hits the LLM vendor, so it carries the parse rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tl := rg.Group("/timeline")
	{
		tl.GET("/providers", mw.Auth(), h.Providers)
		tl.POST("/preview", mw.Auth(), mw.ParseRateLimit(), h.Preview)
		tl.POST("/create-events", mw.Auth(), h.CreateEvents)
	}
}
