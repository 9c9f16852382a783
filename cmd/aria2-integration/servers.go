package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"aria2-integration/pkg/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newServersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Manage the configured aria2 daemons",
	}
	cmd.AddCommand(newServersListCommand(a), newServersAddCommand(a), newServersRemoveCommand(a))
	return cmd
}

func newServersListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.store.Load()
			if err != nil {
				return err
			}
			printServers(cmd.OutOrStdout(), opts)
			return nil
		},
	}
}

func printServers(w io.Writer, opts *models.ExtensionOptions) {
	if len(opts.Servers) == 0 {
		fmt.Fprintln(w, "No server configured")
		return
	}

	t := plainTable().Headers("ID", "NAME", "ENDPOINT", "CAPTURE")
	for _, id := range opts.ServerIDs() {
		server := opts.Servers[id]
		capture := ""
		if opts.CaptureDownloads && opts.CaptureServer == id {
			capture = "yes"
		}
		t = t.Row(id, server.Name, server.Endpoint(), capture)
	}
	fmt.Fprintln(w, t.Render())
}

func newServersAddCommand(a *app) *cobra.Command {
	server := models.NewServer()
	var params []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseParams(params)
			if err != nil {
				return err
			}
			server.RPCParameters = parsed

			if _, err := a.store.AddServer(server); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added server %s (%s)\n", server.Name, server.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&server.Name, "name", server.Name, "display name")
	f.StringVar(&server.Host, "host", server.Host, "daemon host")
	f.IntVar(&server.Port, "port", server.Port, "daemon RPC port")
	f.BoolVar(&server.Secure, "secure", server.Secure, "use https")
	f.StringVar(&server.Path, "path", server.Path, "RPC path")
	f.StringVar(&server.Secret, "secret", server.Secret, "RPC secret token")
	f.StringArrayVar(&params, "param", nil, "extra aria2 option as key=value, repeatable")
	return cmd
}

// parseParams turns key=value pairs into the server parameter map
func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

func newServersRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.store.Load()
			if err != nil {
				return err
			}
			if _, ok := opts.Servers[args[0]]; !ok {
				return fmt.Errorf("unknown server %q", args[0])
			}
			if _, err := a.store.DeleteServer(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed server %s\n", args[0])
			return nil
		},
	}
}

func newPresetsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage folder presets",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List folder presets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				opts, err := a.store.Load()
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if len(opts.FolderPresets) == 0 {
					fmt.Fprintln(w, "No folder preset")
					return nil
				}
				t := plainTable().Headers("ID", "NAME", "PATH")
				for _, p := range opts.FolderPresets {
					t = t.Row(p.ID, p.Name, p.Path)
				}
				fmt.Fprintln(w, t.Render())
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <name> <path>",
			Short: "Add a folder preset",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				preset := models.NewFolderPreset(args[0], args[1])
				if _, err := a.store.AddFolderPreset(preset); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added preset %s (%s)\n", preset.Name, preset.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a folder preset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := a.store.DeleteFolderPreset(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed preset %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func plainTable() *table.Table {
	return table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(2)
		})
}

func formatPercent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 1, 64) + "%"
}
