package main

// @title           Library Manager API
// @version         1.0
// @description     API for managing books and writers.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/snnyvrz/library-manager/internal/config"
	"github.com/snnyvrz/library-manager/internal/db"
	docs "github.com/snnyvrz/library-manager/internal/docs"
	"github.com/snnyvrz/library-manager/internal/handler"
	"github.com/snnyvrz/library-manager/internal/logging"
	"github.com/snnyvrz/library-manager/internal/middleware"
	"github.com/snnyvrz/library-manager/internal/repository"
	"github.com/snnyvrz/library-manager/internal/service"
)

const appVersion = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.GinMode, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.EnvFile != "" {
		logger.Info("loaded env file", zap.String("path", cfg.EnvFile))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.ConnectWithRetry(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Warn("closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(database); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)

	e := gin.New()
	e.Use(
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.Recovery(logger),
	)

	if err := e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	}); err != nil {
		return err
	}

	docs.SwaggerInfo.BasePath = "/api"

	bookRepo := repository.NewGormBookRepository(database)
	writerRepo := repository.NewGormWriterRepository(database)

	healthHandler := handler.NewHealthHandler(func(ctx context.Context) error {
		return db.Ping(ctx, database)
	}, cfg.DBDriver, startTime, appVersion, logger)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	{
		bookHandler := handler.NewBookHandler(service.NewBookService(bookRepo, writerRepo, logger))
		bookHandler.RegisterRoutes(api)

		writerHandler := handler.NewWriterHandler(service.NewWriterService(writerRepo, logger))
		writerHandler.RegisterRoutes(api)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr), zap.String("version", appVersion))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
