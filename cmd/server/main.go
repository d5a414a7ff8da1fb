package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	_ "repodash/docs"
	"repodash/internal/application/service"
	"repodash/internal/config"
	"repodash/internal/database"
	"repodash/internal/dogceo"
	"repodash/internal/domain/events"
	"repodash/internal/domain/repo"
	"repodash/internal/github"
	infraGitHub "repodash/internal/infrastructure/github"
	"repodash/internal/infrastructure/persistence"
	"repodash/internal/logger"
	"repodash/internal/middleware"
	"repodash/internal/openmeteo"
	"repodash/internal/presentation"
	"repodash/internal/presentation/handlers"
)

// @title repodash API
// @version 1.0
// @description Original-repository dashboard for GitHub accounts, with weather and image sidebar

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization
// @description Session token returned by POST /dashboard/sessions

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	// Fetch history: Postgres when configured, memory otherwise
	var history repo.FetchHistoryRepo
	historyBackend := "memory"
	if cfg.HistoryPersistent() {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}
		defer db.Close()

		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = db.Migrate(migrateCtx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}

		history = persistence.NewFetchHistoryRepository(db)
		historyBackend = "postgres"
	} else {
		history = persistence.NewMemoryFetchHistoryRepository(persistence.DefaultHistoryCapacity)
	}

	// External service clients
	githubClient, err := github.NewClient(github.Options{
		BaseURL:   cfg.GitHub.BaseURL,
		UserAgent: cfg.GitHub.UserAgent,
		Token:     cfg.GitHub.Token,
		Timeout:   cfg.GitHub.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize GitHub client")
	}
	weatherClient := openmeteo.NewClient(cfg.Sidebar.WeatherURL, cfg.GitHub.UserAgent, cfg.Sidebar.Timeout)
	imageClient := dogceo.NewClient(cfg.Sidebar.ImageURL, cfg.GitHub.UserAgent, cfg.Sidebar.Timeout)

	// Infrastructure implementations of domain ports
	githubService := infraGitHub.NewGitHubService(githubClient)
	sessionRepository := persistence.NewMemorySessionRepository()

	// Application services (use cases)
	dispatcher := events.NewDispatcher()
	repositoryService := service.NewRepositoryService(githubService, dispatcher, cfg.Dashboard.PageSize)
	dashboardService := service.NewDashboardService(sessionRepository, repositoryService, dispatcher, service.DashboardOptions{
		DefaultAccount: cfg.GitHub.DefaultAccount,
		SessionTTL:     cfg.Dashboard.SessionTTL,
	})
	sidebarService := service.NewSidebarService(weatherClient, imageClient, service.SidebarOptions{
		Latitude:      cfg.Sidebar.Latitude,
		Longitude:     cfg.Sidebar.Longitude,
		FallbackImage: cfg.Sidebar.FallbackImage,
	})
	historyService := service.NewHistoryService(history)
	historyService.Register(dispatcher)

	sseManager := handlers.NewSSEManager()
	sseManager.Register(dispatcher, dashboardService)

	sessionAuth, err := middleware.NewSessionAuth(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session auth")
	}

	// HTTP handlers
	gin.SetMode(cfg.Server.GinMode)
	router := presentation.NewRouter(presentation.Handlers{
		Health:     handlers.NewHealthHandler(sessionRepository, historyBackend),
		Repository: handlers.NewRepositoryHandler(repositoryService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService, sessionAuth, sseManager),
		Sidebar:    handlers.NewSidebarHandler(sidebarService),
		History:    handlers.NewHistoryHandler(historyService),
		Auth:       sessionAuth,
	}, cfg.Server.CORSOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go dashboardService.RunJanitor(ctx, cfg.Dashboard.SweepInterval)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.GetServerAddress()).Str("history", historyBackend).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server exited")
}
