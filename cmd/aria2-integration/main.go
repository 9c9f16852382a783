package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"aria2-integration/internal/aria2"
	"aria2-integration/internal/config"
	"aria2-integration/internal/database"
	"aria2-integration/internal/dispatch"
	"aria2-integration/internal/options"
	"aria2-integration/pkg/models"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	a := &app{}
	defer a.close()

	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	return cmd.Execute()
}

// app carries what every command opens before running
type app struct {
	cfg   *config.Config
	db    *database.DB
	store *options.Store
}

func (a *app) open() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	setupLogging(cfg.LogLevel)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db
	a.store = options.NewStore(db)
	return nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
	a.db = nil
}

func (a *app) conn(server models.Server) aria2.Conn {
	return aria2.New(server, a.cfg.RPCTimeout)
}

func (a *app) dispatcher() *dispatch.Dispatcher {
	return dispatch.New(dispatch.NewHTTPFetcher(a.cfg.FetchTimeout))
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "aria2-integration",
		Short:         "Send browser downloads to aria2 daemons",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.open()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newServeCommand(a),
		newServersCommand(a),
		newPresetsCommand(a),
		newCaptureCommand(a),
		newTorrentCommand(a),
		newToggleCommand(a),
		newStatsCommand(a),
		newTasksCommand(a),
	)
	return root
}

// setupLogging configures structured logging based on the log level
func setupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	handler := slog.NewTextHandler(os.Stdout, opts)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// resolveServer returns the server with id, or the capture server, or the
// first configured server
func resolveServer(opts *models.ExtensionOptions, id string) (models.Server, error) {
	if id != "" {
		server, ok := opts.Servers[id]
		if !ok {
			return models.Server{}, fmt.Errorf("unknown server %q", id)
		}
		return server, nil
	}
	if server, ok := opts.Servers[opts.CaptureServer]; ok {
		return server, nil
	}
	ids := opts.ServerIDs()
	if len(ids) == 0 {
		return models.Server{}, options.ErrNoServers
	}
	return opts.Servers[ids[0]], nil
}
