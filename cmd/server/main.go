package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/DeValentRT/Horario-Prototipo/config"
	"github.com/DeValentRT/Horario-Prototipo/internal/api/handler"
	"github.com/DeValentRT/Horario-Prototipo/internal/api/router"
	"github.com/DeValentRT/Horario-Prototipo/internal/repository"
	"github.com/DeValentRT/Horario-Prototipo/internal/service"
	"github.com/DeValentRT/Horario-Prototipo/pkg/database"
	applogger "github.com/DeValentRT/Horario-Prototipo/pkg/logger"
	"github.com/DeValentRT/Horario-Prototipo/pkg/redis"
)

func main() {
	// 1. Configuration.
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}

	// 2. Logging.
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting planner server",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Database.
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connected")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("acquire sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. Redis (optional: degrade without the cache and rate limiting).
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis connection failed, cache and rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	// 5. Dependency wiring: Repository → Service → Handler.
	// NewService loads the persisted planner state, so a broken blob store
	// fails the boot instead of serving an empty planner.
	repo := repository.NewRepository(db)
	svc, err := service.NewService(context.Background(), repo, rdb, logger)
	if err != nil {
		logger.Fatal("load planner state failed", zap.Error(err))
	}
	h := handler.NewHandler(cfg, svc)

	// 6. Router.
	engine := router.Setup(cfg, h, rdb, logger)

	// 7. HTTP server with graceful shutdown.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
