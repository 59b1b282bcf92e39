package main

import (
	"context"
	"log"
	"os"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/logging"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/config"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = run(context.Background(), cfg, logger)
	if s, ok := logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	if err != nil {
		os.Exit(1)
	}

}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		return err
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped with error", "error", err)
		return err
	}
	return nil
}
