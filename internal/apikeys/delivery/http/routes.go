package http

import (
	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require a Bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	keys := rg.Group("/api-keys")
	{
		keys.GET("/providers", mw.Auth(), h.Providers)
		keys.GET("/list", mw.Auth(), h.List)
		keys.POST("/save", mw.Auth(), h.Save)
		keys.DELETE("/remove/:provider", mw.Auth(), h.Remove)
		keys.GET("/test/:provider", mw.Auth(), h.Test)
		keys.GET("/models/:provider", mw.Auth(), h.Models)
	}
}
