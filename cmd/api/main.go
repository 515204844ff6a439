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

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/realtime"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	timezone.SetDefault(cfg.DefaultTimezone)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("database: %v", err)
	}

	// --------------------------------------------------
	// Realtime broker: Redis when reachable, in-process otherwise
	// --------------------------------------------------
	var broker realtime.Broker
	if cfg.RedisURL != "" {
		client, err := realtime.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, live events stay in-process: %v", err)
			broker = realtime.NewMemoryBroker()
		} else {
			defer client.Close()
			broker = realtime.NewRedisBroker(client, log)
			log.Info("realtime events via redis")
		}
	} else {
		broker = realtime.NewMemoryBroker()
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log, cfg.AuditQueueSize)

	r := gin.Default()

	routes.RegisterRoutes(r, db, cfg, routes.Infra{
		Log:     log,
		Audit:   auditDispatcher,
		Broker:  broker,
		Metrics: metrics.New(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown: %v", err)
	}

	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("Server stopped")
}
