package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	apikeysHTTP "timeline-to-calendar/internal/apikeys/delivery/http"
	authHTTP "timeline-to-calendar/internal/auth/delivery/http"
	calendarHTTP "timeline-to-calendar/internal/calendar/delivery/http"
	"timeline-to-calendar/internal/middleware"
	"timeline-to-calendar/internal/model"
	taskHTTP "timeline-to-calendar/internal/task/delivery/http"
	timelineHTTP "timeline-to-calendar/internal/timeline/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.authUC, srv.config)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	srv.l.Infof(ctx, "CORS allowed origin: %s", srv.config.Auth.FrontendURL)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI stays off the public surface in production.
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes wires every domain handler under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, srv.authUC), mw)
	srv.l.Infof(ctx, "Auth domain registered")

	apikeysHTTP.RegisterRoutes(api, apikeysHTTP.New(srv.l, srv.apiKeysUC), mw)
	srv.l.Infof(ctx, "API keys domain registered")

	timelineHTTP.RegisterRoutes(api, timelineHTTP.New(srv.l, srv.timelineUC), mw)
	srv.l.Infof(ctx, "Timeline domain registered")

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC), mw)
	srv.l.Infof(ctx, "Task domain registered")

	calendarHTTP.RegisterRoutes(api, calendarHTTP.New(srv.l, srv.calendarUC), mw)
	srv.l.Infof(ctx, "Calendar domain registered")

	return nil
}
