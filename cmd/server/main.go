package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/thereayou/socialgraph/internal/config"
	"github.com/thereayou/socialgraph/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.IsProd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := NewServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	return srv.Run(ctx)
}
