package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/cumaker/makerspace/internal/config"
	"github.com/cumaker/makerspace/internal/makerspace"
	"github.com/cumaker/makerspace/internal/seed"
	"github.com/cumaker/makerspace/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Catalog ---
	cat, err := seed.FromDir(cfg.SeedDir)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	source := cfg.SeedDir
	if source == "" {
		source = "embedded"
	}
	logger.Info("loaded catalog",
		"source", source,
		"equipment", cat.Registry().Len(),
		"tracks", len(cat.Tracks()),
		"printers", len(cat.PrintersAt("")),
		"workshops", len(cat.Workshops(makerspace.WorkshopFilter{})),
	)

	// --- HTTP Server ---
	srv := server.New(server.Options{
		Addr:             cfg.HTTPAddr,
		SPADir:           cfg.SPADir,
		PassingThreshold: cfg.PassingThreshold,
	}, logger, cat)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
