package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"risecli/internal/client"
	"risecli/internal/config"
	"risecli/internal/infrastructure"
)

func main() {
	list := flag.Bool("list", false, "list the datasets available on the API")
	dataset := flag.String("dataset", "", "dataset id to download and extract")
	outDir := flag.String("out", "", "destination directory (defaults to the configured data directory)")
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

	if !*list && *dataset == "" {
		fmt.Fprintln(os.Stderr, "usage: fetcher -list | -dataset <id> [-out <dir>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(cfg.API, logger)

	if *list {
		datasets, err := c.ListDatasets(ctx)
		if err != nil {
			logger.Error("Failed to list datasets", "error", err)
			os.Exit(1)
		}
		for _, name := range datasets {
			fmt.Println(name)
		}
		return
	}

	dest := *outDir
	if dest == "" {
		paths, err := config.NewPaths(cfg.Paths)
		if err != nil {
			logger.Error("Failed to resolve paths", "error", err)
			os.Exit(1)
		}
		if err := paths.EnsureDirectories(); err != nil {
			logger.Error("Failed to create directories", "error", err)
			os.Exit(1)
		}
		dest = paths.DataDir
	}

	logger.Info("Downloading dataset",
		slog.String("dataset_id", *dataset),
		slog.String("destination", dest))

	extracted, err := c.DownloadDataset(ctx, *dataset, dest, printProgress)
	if err != nil {
		fmt.Fprintln(os.Stderr)
		logger.Error("Download failed", "error", err, "dataset_id", *dataset)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr)

	logger.Info("Dataset extracted",
		slog.String("dataset_id", *dataset),
		slog.Int("files", len(extracted)))
	for _, path := range extracted {
		fmt.Println(path)
	}
}

// printProgress writes a single updating progress line to stderr.
func printProgress(received, total int64) {
	if total > 0 {
		fmt.Fprintf(os.Stderr, "\rDownloading... %3.0f%% (%d/%d bytes)",
			float64(received)/float64(total)*100, received, total)
		return
	}
	fmt.Fprintf(os.Stderr, "\rDownloading... %d bytes", received)
}
