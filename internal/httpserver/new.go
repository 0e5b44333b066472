package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timeline-to-calendar/config"
	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/calendar"
	"timeline-to-calendar/internal/task"
	"timeline-to-calendar/internal/timeline"
	"timeline-to-calendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	config      *config.Config

	// Domains
	authUC     auth.UseCase
	apiKeysUC  apikeys.UseCase
	timelineUC timeline.UseCase
	taskUC     task.UseCase
	calendarUC calendar.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	AuthUC     auth.UseCase
	APIKeysUC  apikeys.UseCase
	TimelineUC timeline.UseCase
	TaskUC     task.UseCase
	CalendarUC calendar.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.AppConfig,
		authUC:      cfg.AuthUC,
		apiKeysUC:   cfg.APIKeysUC,
		timelineUC:  cfg.TimelineUC,
		taskUC:      cfg.TaskUC,
		calendarUC:  cfg.CalendarUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("app config is required")
	}
	if srv.authUC == nil {
		return errors.New("auth usecase is required")
	}
	return nil
}
