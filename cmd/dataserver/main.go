package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"risecli/internal/config"
	"risecli/internal/infrastructure"
	"risecli/internal/server"
)

func main() {
	port := flag.Int("port", 0, "listen port (overrides configuration)")
	dataDir := flag.String("data", "", "directory of dataset archives to serve (defaults to the configured data directory)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if *port != 0 {
		cfg.Server.Port = *port
	}

	dir := *dataDir
	if dir == "" {
		paths, err := config.NewPaths(cfg.Paths)
		if err != nil {
			logger.Error("Failed to resolve paths", "error", err)
			os.Exit(1)
		}
		if err := paths.EnsureDirectories(); err != nil {
			logger.Error("Failed to create directories", "error", err)
			os.Exit(1)
		}
		dir = paths.DataDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, dir, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
