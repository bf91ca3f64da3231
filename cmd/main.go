package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/dguzman/sigae-sync/internal/config"
	v1 "github.com/dguzman/sigae-sync/internal/handler/http/v1"
	"github.com/dguzman/sigae-sync/internal/repository"
	"github.com/dguzman/sigae-sync/internal/scheduler"
	"github.com/dguzman/sigae-sync/internal/service"
	"github.com/dguzman/sigae-sync/internal/sigae"
	"github.com/dguzman/sigae-sync/internal/webhook"
	"github.com/dguzman/sigae-sync/pkg/logger"
	"github.com/dguzman/sigae-sync/pkg/postgres"
	redisclient "github.com/dguzman/sigae-sync/pkg/redis"
	"github.com/sirupsen/logrus"
)

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Context for graceful shutdown of the background loops.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	webhookPublisher := webhook.NewRedisPublisher(redisClient)

	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)

	sigaeClient := sigae.NewClient(cfg.SigaeBaseURL, sigae.Credentials{
		IP:         cfg.SigaeIP,
		User:       cfg.SigaeUser,
		Password:   cfg.SigaePassword,
		SystemCode: cfg.SigaeSystemCode,
	}, cfg.SigaeTimeout)

	syncService := service.NewSyncService(incidentRepo, sigaeClient, log, cfg, webhookPublisher)

	syncScheduler := scheduler.NewScheduler(syncService, log, cfg)
	syncScheduler.Start(ctx)

	handler := v1.NewHandler(syncService, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
