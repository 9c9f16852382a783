package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"aria2-integration/internal/messages"
	"aria2-integration/internal/options"
	"aria2-integration/pkg/fuzzy"

	"github.com/spf13/cobra"
)

func newCaptureCommand(a *app) *cobra.Command {
	var serverID, dir, preset, referer, cookies string

	cmd := &cobra.Command{
		Use:   "capture <url>...",
		Short: "Send URLs to a server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.store.Load()
			if err != nil {
				return err
			}
			server, err := resolveServer(opts, serverID)
			if err != nil {
				return err
			}
			if preset != "" {
				match, ok := fuzzy.NewMatcher().MatchPreset(preset, opts.FolderPresets)
				if !ok {
					return fmt.Errorf("no folder preset matches %q", preset)
				}
				dir = match.Path
			}
			if dir == "" {
				dir = opts.DefaultFolder
			}

			conn := a.conn(server)
			d := a.dispatcher()
			w := cmd.OutOrStdout()
			var errs []error
			for _, url := range args {
				gids, err := d.CaptureURL(cmd.Context(), conn, server, url, referer, cookies, dir, "")
				if err != nil {
					errs = append(errs, err)
					fmt.Fprintln(w, messages.Get(messages.AddURLError, server.Name))
					continue
				}
				fmt.Fprintf(w, "%s %v\n", messages.Get(messages.AddURLSuccess, server.Name), gids)
			}
			return errors.Join(errs...)
		},
	}

	f := cmd.Flags()
	f.StringVar(&serverID, "server", "", "server id, defaults to the capture server")
	f.StringVar(&dir, "dir", "", "download directory")
	f.StringVar(&preset, "preset", "", "folder preset name or id")
	f.StringVar(&referer, "referer", "", "Referer header")
	f.StringVar(&cookies, "cookies", "", "Cookie header")
	cmd.MarkFlagsMutuallyExclusive("dir", "preset")
	return cmd
}

func newTorrentCommand(a *app) *cobra.Command {
	var serverID string

	cmd := &cobra.Command{
		Use:   "torrent <file>",
		Short: "Upload a local torrent or metalink file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.store.Load()
			if err != nil {
				return err
			}
			server, err := resolveServer(opts, serverID)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			gids, err := a.dispatcher().CaptureTorrentFromFile(cmd.Context(), a.conn(server), server, filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", messages.Get(messages.AddFileSuccess, server.Name), gids)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverID, "server", "", "server id, defaults to the capture server")
	return cmd
}

func newToggleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Turn download capture on or off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.store.ToggleCapture()
			if errors.Is(err, options.ErrNoServers) {
				return errors.New(messages.Get(messages.ToggleCaptureDownloadsNoServer))
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.CaptureDownloads {
				fmt.Fprintln(w, messages.Get(messages.ToggleCaptureDownloadsEnabled, opts.Servers[opts.CaptureServer].Name))
				return nil
			}
			fmt.Fprintln(w, messages.Get(messages.ToggleCaptureDownloadsDisabled))
			return nil
		},
	}
}
