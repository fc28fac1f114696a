package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harsha/nutrition-dashboard/internal/api"
	"github.com/harsha/nutrition-dashboard/internal/config"
	"github.com/harsha/nutrition-dashboard/internal/identity"
	"github.com/harsha/nutrition-dashboard/internal/logger"
	"github.com/harsha/nutrition-dashboard/internal/repository/sqlite"
	"github.com/harsha/nutrition-dashboard/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine; the environment still applies.
		slog.Debug("no .env file loaded", slog.Any("error", err))
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)
	slog.SetDefault(log)

	// Initialize database
	db, err := sqlite.NewConnection(cfg.DatabasePath)
	if err != nil {
		log.Error("failed to open database", slog.String("path", cfg.DatabasePath), slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize repositories and services
	repos := sqlite.NewRepositories(db)
	services := service.NewServices(repos, cfg)
	identities := identity.New(cfg.IdentityCacheTTL)

	// Initialize router
	router := api.NewRouter(services, identities, cfg)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", slog.String("port", cfg.Port), slog.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped")
}
