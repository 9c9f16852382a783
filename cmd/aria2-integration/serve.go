package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aria2-integration/internal/background"
	"aria2-integration/internal/bridge"

	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the background and wait for the browser shim",
		RunE: func(*cobra.Command, []string) error {
			slog.Info("Starting aria2 integration", "version", version, "platform", a.cfg.BrowserPlatform)

			server := bridge.NewServer(a.cfg.BridgeAddr())
			bg := background.New(a.store, server, a.dispatcher(), a.conn,
				background.Capabilities{SynchronousFilename: a.cfg.SynchronousFilename()},
				a.cfg.InflightTTL)
			server.SetHandler(bg)

			return runServer(server, bg, a.cfg.BadgeInterval)
		},
	}
}

func runServer(server *bridge.Server, bg *background.Background, badgeInterval time.Duration) error {
	// Create main context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := bg.Run(ctx, badgeInterval); err != nil {
			slog.Error("Background stopped", "error", err)
		}
	}()

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-sigChan:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	// Cancel context to stop the background
	cancel()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server gracefully: %w", err)
	}

	slog.Info("Server shutdown complete")
	return nil
}
