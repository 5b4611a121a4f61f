package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"

	"legal-practice-assistant/config"
	applyHTTP "legal-practice-assistant/internal/apply/delivery/http"
	applySqlite "legal-practice-assistant/internal/apply/repository/sqlite"
	applyUC "legal-practice-assistant/internal/apply/usecase"
	assistantHTTP "legal-practice-assistant/internal/assistant/delivery/http"
	"legal-practice-assistant/internal/assistant/parser"
	assistantUC "legal-practice-assistant/internal/assistant/usecase"
	"legal-practice-assistant/internal/httpserver"
	"legal-practice-assistant/internal/middleware"
	"legal-practice-assistant/pkg/fuzzydate"
	"legal-practice-assistant/pkg/gcalendar"
	"legal-practice-assistant/pkg/log"
)

// @title       Legal Practice Assistant API
// @description Rule-based natural language command parsing for legal practice management.
// @version     1
// @host        localhost:8080
// @schemes     http
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

	logger.Info(ctx, "Starting Legal Practice Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Assistant domain (pure parsing)
	dates, err := fuzzydate.NewResolver(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		dates, _ = fuzzydate.NewResolver("UTC")
	}

	assistantUseCase, err := assistantUC.New(logger, parser.New(dates), nil, cfg.Assistant.CacheSize)
	if err != nil {
		logger.Error(ctx, "Failed to initialize assistant use case: ", err)
		return
	}
	assistantHandler := assistantHTTP.New(logger, assistantUseCase)

	// 4. Apply domain (storage, audit, optional calendar mirror)
	db, err := sql.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	repo, err := applySqlite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize repository: ", err)
		return
	}

	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	applyUseCase := applyUC.New(logger, repo, calendarClient, cfg.Assistant.Timezone, nil)
	applyHandler := applyHTTP.New(logger, applyUseCase)

	// 5. Middleware
	mw := middleware.New(logger, cfg.Assistant.RateLimitPerMin)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHandler,
		ApplyHandler:     applyHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
