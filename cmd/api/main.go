package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timeline-to-calendar/config"
	_ "timeline-to-calendar/docs"
	apikeysStore "timeline-to-calendar/internal/apikeys/repository/file"
	apikeysUC "timeline-to-calendar/internal/apikeys/usecase"
	authStore "timeline-to-calendar/internal/auth/repository/file"
	authUC "timeline-to-calendar/internal/auth/usecase"
	calendarUC "timeline-to-calendar/internal/calendar/usecase"
	"timeline-to-calendar/internal/httpserver"
	taskStore "timeline-to-calendar/internal/task/repository/file"
	taskUC "timeline-to-calendar/internal/task/usecase"
	timelineUC "timeline-to-calendar/internal/timeline/usecase"
	"timeline-to-calendar/pkg/encrypter"
	"timeline-to-calendar/pkg/googleauth"
	"timeline-to-calendar/pkg/llmprovider"
	"timeline-to-calendar/pkg/log"
	"timeline-to-calendar/pkg/scope"
)

// @title       Timeline to Calendar API
// @description Converts free-form timeline text into Google Calendar events and Google Tasks via LLM providers.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Timeline to Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data dir: %s", cfg.Storage.DataDir)

	// 3. Shared infrastructure
	jwtManager := scope.NewManager(cfg.Auth.JWTSecret)

	keyEncrypter, err := encrypter.New(cfg.Encryption.APIKeySecret)
	if err != nil {
		logger.Error(ctx, "Failed to initialize encrypter: ", err)
		return
	}

	oauthService, err := googleauth.New(googleauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google OAuth: ", err)
		return
	}

	catalog := llmprovider.NewCatalog(cfg.LLM.ModelCacheSize, cfg.LLM.ModelCacheTTL)

	// 4. Repositories
	authRepo, err := authStore.New(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open auth store: ", err)
		return
	}
	keysRepo, err := apikeysStore.New(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open api key store: ", err)
		return
	}
	taskRepo, err := taskStore.New(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open task store: ", err)
		return
	}

	// 5. UseCases
	auth := authUC.New(authRepo, oauthService, jwtManager, authUC.Config{
		SessionHours: cfg.Auth.SessionHours,
		FrontendURL:  cfg.Auth.FrontendURL,
	}, logger)
	apiKeys := apikeysUC.New(keysRepo, keyEncrypter, catalog, logger)
	timeline := timelineUC.New(auth, apiKeys, logger)
	tasks := taskUC.New(taskRepo, auth, apiKeys, logger)
	calendars := calendarUC.New(auth, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		AuthUC:      auth,
		APIKeysUC:   apiKeys,
		TimelineUC:  timeline,
		TaskUC:      tasks,
		CalendarUC:  calendars,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
