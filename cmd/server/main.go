// Package main initializes and starts the scholardesk HTTP server, setting
// up configuration, logging, the database adapter, repositories, services
// and handlers.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/okravets/scholardesk/internal/config"
	"github.com/okravets/scholardesk/internal/db"
	"github.com/okravets/scholardesk/internal/logger"
	"github.com/okravets/scholardesk/internal/repository"
	"github.com/okravets/scholardesk/internal/server/handler/http"
	"github.com/okravets/scholardesk/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the storage engine: PostgreSQL when a DSN is given, SQLite
	// otherwise. The schema is created idempotently on startup.
	database, err := db.Open(ctx, options.DatabaseDSN, options.SQLitePath)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer func() { _ = database.Close() }()

	// Initialize repositories for every resource family.
	authRepo := repository.NewAuthRepository(database)
	portfolioRepo := repository.NewPortfolioRepository(database)
	trackerRepo := repository.NewTrackerRepository(database)
	calendarRepo := repository.NewCalendarRepository(database)
	profileRepo := repository.NewProfileRepository(database)

	// Initialize business-logic services.
	authService := service.NewAuthService(authRepo)
	portfolioService := service.NewPortfolioService(portfolioRepo)
	trackerService := service.NewTrackerService(trackerRepo)
	calendarService := service.NewCalendarService(calendarRepo)
	profileService := service.NewProfileService(profileRepo)
	resumeService := service.NewResumeService(profileRepo)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService, Log: zapLogger}
	portfolioHandler := &http.PortfolioHandler{Service: portfolioService, Log: zapLogger}
	trackerHandler := &http.TrackerHandler{Service: trackerService, Log: zapLogger}
	calendarHandler := &http.CalendarHandler{Service: calendarService, Log: zapLogger}
	profileHandler := &http.ProfileHandler{Service: profileService, Resume: resumeService, Log: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, portfolioHandler, trackerHandler, calendarHandler, profileHandler, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	go func() {
		zapLogger.Info("starting HTTP server",
			zap.String("addr", options.Addr),
			zap.String("engine", database.Dialect.Name()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("shutdown", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
