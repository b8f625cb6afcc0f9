package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-data-generator/config"
	"hotel-data-generator/server"
	"hotel-data-generator/storage"
	"hotel-data-generator/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Hotel Data Generator starting ===")
	logger.Info("Config — port: %s | dataset cache: %d | postgres export: %v",
		cfg.ServerPort, cfg.DatasetCacheSize, cfg.PostgresExport)

	store := storage.NewDatasetStore(cfg.DatasetCacheSize)

	var exporter storage.BookingWriter
	if cfg.PostgresExport {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			logger.Error("Continuing without the Postgres export endpoint")
		} else {
			defer pgWriter.Close()
			exporter = pgWriter
		}
	}

	var dirWriter storage.TableWriter
	if cfg.OutputDir != "" {
		dw, err := storage.NewDirWriter(cfg.OutputDir)
		if err != nil {
			logger.Error("Failed to create output dir: %v", err)
			os.Exit(1)
		}
		dirWriter = dw
		logger.Info("Datasets will also be dumped to %s", cfg.OutputDir)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: server.New(cfg, logger, store, exporter, dirWriter).Router(),
	}

	go func() {
		logger.Info("Listening on http://localhost:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown: %v", err)
		os.Exit(1)
	}

	logger.Info("Server exited")
}
