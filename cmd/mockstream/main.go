package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/otto-handler/mockstream/internal/config"
	"github.com/otto-handler/mockstream/internal/logging"
	"github.com/otto-handler/mockstream/internal/server"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(&cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)

	addr := cfg.Server.Addr()
	logger.Info().Msgf("mock SSE server listening on http://%s", addr)
	logger.Info().Msgf("stream: http://%s/api/v1/log-streaming/test/mock-stream/test-task-123", addr)
	logger.Info().Msgf("health: http://%s/api/v1/log-streaming/health", addr)

	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}
