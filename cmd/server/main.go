// @title Labrinth File Validation API
// @version 1.0
// @description Upload, classification and storage of mod and modpack files.
// @host localhost:8000
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/leocth/labrinth/docs"
	"github.com/leocth/labrinth/internal/config"
	"github.com/leocth/labrinth/internal/handler"
	"github.com/leocth/labrinth/internal/logging"
	"github.com/leocth/labrinth/internal/repository/postgres"
	"github.com/leocth/labrinth/internal/router"
	"github.com/leocth/labrinth/internal/service"
	s3storage "github.com/leocth/labrinth/internal/storage/s3"
	"github.com/leocth/labrinth/internal/validator"
	"github.com/leocth/labrinth/internal/validator/mods"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(ctx, &cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	versionRepo := postgres.NewVersionRepo(db)
	fileRepo := postgres.NewVersionFileRepo(db)
	gameVersionRepo := postgres.NewGameVersionRepo(db)

	// Initialize storage
	fileHost, err := s3storage.NewFileHost(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Validation engine: the registry is built once and never changes.
	registry := mods.NewRegistry()
	engine := validator.NewEngine(registry, validator.NewPool(cfg.Validation.Workers), logger)
	logger.Info("validators registered",
		zap.Int("count", registry.Len()),
		zap.Int("workers", cfg.Validation.Workers))

	// Initialize services
	fileSvc := service.NewVersionFileService(versionRepo, fileRepo, gameVersionRepo,
		fileHost, engine, &cfg.S3, logger)
	gameVersionSvc := service.NewGameVersionService(gameVersionRepo)

	// Initialize handlers
	fileH := handler.NewVersionFileHandler(fileSvc)
	gameVersionH := handler.NewGameVersionHandler(gameVersionSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, logger, fileH, gameVersionH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Port), zap.String("env", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
