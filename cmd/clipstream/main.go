// Package main starts the clipstream sync service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipstream/internal/app"
	"clipstream/internal/config"
	"clipstream/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutdown signal received")
		cancel()
	}()

	factory := app.NewComponentFactory(cfg, log)

	db, err := factory.CreateDatabase(ctx)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("Failed to close database connection", zap.Error(err))
		}
	}()

	httpClient := factory.CreateHTTPClient()

	vimeoClient, err := factory.CreateVimeoClient(httpClient)
	if err != nil {
		log.Fatal("Failed to create vimeo client", zap.Error(err))
	}

	adminClient, err := factory.CreateAdminClient(httpClient)
	if err != nil {
		log.Fatal("Failed to create admin client", zap.Error(err))
	}

	svc := factory.CreateService(db, adminClient, vimeoClient, factory.CreateCache())
	srv := factory.CreateServer(svc)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("HTTP server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("Starting HTTP server", zap.String("addr", cfg.ListenAddr))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("HTTP server stopped with error", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Server stopped successfully")
}
