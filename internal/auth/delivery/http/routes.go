package http

import (
	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The OAuth entry points and token verification are public; everything
// else requires a Bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.GET("/google", h.Login)
		authGroup.GET("/google/callback", h.Callback)
		authGroup.GET("/verify", h.Verify)

		authGroup.GET("/profile", mw.Auth(), h.Profile)
		authGroup.POST("/logout", mw.Auth(), mw.InvalidateSession(), h.Logout)
		authGroup.GET("/system-prompt", mw.Auth(), h.GetSystemPrompt)
		authGroup.POST("/system-prompt", mw.Auth(), h.SaveSystemPrompt)
		authGroup.GET("/calendar-status", mw.Auth(), h.CalendarStatus)
	}
}
