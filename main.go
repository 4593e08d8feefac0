package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos-backend/configs"
	"pos-backend/pkg/logger"
	"pos-backend/routes"
	"pos-backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	slog.SetDefault(log)

	// DB
	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Error("migrate failed", "error", err)
		os.Exit(1)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(db, log); err != nil {
			log.Error("seed demo failed", "error", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := ws.NewOrderHub(log)
	go hub.Run(ctx)

	// HTTP
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	if err := routes.RegisterRoutes(r, db, cfg, hub, log); err != nil {
		log.Error("register routes failed", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", srv.Addr, "db", cfg.DBDriver, "prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
