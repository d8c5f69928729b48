package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/notifyhub/regionhealth/internal/api"
	"github.com/notifyhub/regionhealth/internal/config"
	"github.com/notifyhub/regionhealth/internal/domain"
	"github.com/notifyhub/regionhealth/internal/logging"
	"github.com/notifyhub/regionhealth/internal/server"
)

func main() {
	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// ---- logging ----
	logger, cleanup, err := logging.New(logging.FromConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	logger.Info("configuration loaded",
		zap.String("addr", cfg.Addr()),
		zap.String("region", domain.Region),
		zap.String("log_level", cfg.LogLevel),
	)

	// ---- HTTP server ----
	router := api.NewRouter(domain.Region, nil, logger)
	srv := server.New(cfg, router, logger)

	// ---- graceful shutdown ----
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
}
