package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"cricket-scoring-service/internal/config"
	"cricket-scoring-service/internal/logging"
	"cricket-scoring-service/internal/server"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config(cfg.Log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("server startup failed", "error", err)
		stop()
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
