// Package main provides the entry point for the El Bustan content API server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Karimnasr7/el-bustan-clean/internal/api"
	"github.com/Karimnasr7/el-bustan-clean/internal/auth"
	"github.com/Karimnasr7/el-bustan-clean/internal/blob"
	"github.com/Karimnasr7/el-bustan-clean/internal/config"
	"github.com/Karimnasr7/el-bustan-clean/internal/metrics"
	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
)

const version = "1.0.0"

func main() {
	// Local development convenience; the file is absent in production
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	logLevel.Set(parseLogLevel(cfg.LogLevel))
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// run wires storage, auth, blob client, and the router, then serves.
// Separated from main() so failures flow back as errors.
func run(cfg *config.Config, logger *slog.Logger) error {
	store, err := storage.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		//nolint:errcheck
		store.Close()
	}()

	if cfg.InitialPasswordHash != "" {
		if err := store.SeedAdminCredential(context.Background(), cfg.InitialPasswordHash); err != nil {
			return err
		}
	}

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret))

	var blobOpts []blob.Option
	if cfg.StorageEndpoint != "" {
		blobOpts = append(blobOpts, blob.WithEndpoint(cfg.StorageEndpoint))
	}
	uploader := blob.NewClient(cfg.StorageZone, cfg.StorageAccessKey, cfg.CDNBaseURL, blobOpts...)

	if err := metrics.Init(prometheus.DefaultRegisterer); err != nil {
		return err
	}

	// Metrics on a dedicated listener, kept off the public address
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		logger.Info("metrics listener starting", "addr", cfg.MetricsListenAddr)
		if err := http.ListenAndServe(cfg.MetricsListenAddr, mux); err != nil {
			logger.Error("metrics listener failed", "error", err)
		}
	}()

	handler := api.NewHandler(store, tokens, uploader, logger)

	logger.Info("el-bustan content API starting",
		"version", version,
		"addr", cfg.ListenAddr,
		"database", cfg.DatabasePath,
	)

	return http.ListenAndServe(cfg.ListenAddr, handler.NewRouter())
}

// parseLogLevel maps the configured level name to a slog level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
