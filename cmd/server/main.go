package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bigrusstattoo/studio/internal/config"
	"github.com/bigrusstattoo/studio/internal/database"
	"github.com/bigrusstattoo/studio/internal/di"
	"github.com/bigrusstattoo/studio/internal/events"
	"github.com/bigrusstattoo/studio/internal/handler"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
	"github.com/bigrusstattoo/studio/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tel, err := telemetry.Init(ctx, &cfg.OTel, cfg.App.Version)
	if err != nil {
		return fmt.Errorf("failed to init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = tel.Shutdown(shutdownCtx)
	}()

	db, err := database.NewPostgres(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	redisClient, err := database.NewRedis(ctx, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	publisher, err := events.NewPublisher(&cfg.Kafka, log)
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}
	defer publisher.Close()

	// The whole deployment serves one studio; resolve it once.
	tenantRepo := repository.NewPostgresTenantRepository(db.Pool)
	tenant, err := tenantRepo.GetBySlug(ctx, cfg.Studio.Slug)
	if err != nil {
		return fmt.Errorf("failed to resolve tenant: %w", err)
	}
	if tenant == nil {
		return fmt.Errorf("tenant %q not found, run migrations and seed it first", cfg.Studio.Slug)
	}

	container, err := di.NewContainer(&di.ContainerConfig{
		Config:    cfg,
		Tenant:    tenant,
		DB:        db,
		Redis:     redisClient,
		Publisher: publisher,
		Log:       log,
		Version:   cfg.App.Version,
	})
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	router := handler.NewRouter(container.Handlers, container.Tokens, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("tenant", tenant.Slug),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
