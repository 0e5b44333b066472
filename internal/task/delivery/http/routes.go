package http

import (
	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Parse hits the LLM vendor, so it carries the parse rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("/lists", mw.Auth(), h.ListLists)
		tasks.POST("/lists", mw.Auth(), h.CreateList)

		tasks.GET("/:listId", mw.Auth(), h.ListTasks)
		tasks.POST("/:listId/tasks", mw.Auth(), h.CreateTask)
		tasks.PATCH("/:listId/tasks/:id", mw.Auth(), h.UpdateTask)
		tasks.DELETE("/:listId/tasks/:id", mw.Auth(), h.DeleteTask)

		tasks.POST("/:listId/parse", mw.Auth(), mw.ParseRateLimit(), h.Parse)
		tasks.POST("/:listId/sync", mw.Auth(), h.Sync)
	}
}
