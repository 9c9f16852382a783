package main

import (
	"fmt"
	"io"

	"aria2-integration/internal/dispatch"
	"aria2-integration/pkg/models"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the global counters of every server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.store.Load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(opts.Servers) == 0 {
				fmt.Fprintln(w, "No server configured")
				return nil
			}

			t := plainTable().Headers("SERVER", "ACTIVE", "WAITING", "STOPPED", "DOWN", "UP")
			for _, id := range opts.ServerIDs() {
				server := opts.Servers[id]
				stat, err := a.conn(server).GetGlobalStat(cmd.Context())
				if err != nil {
					t = t.Row(server.Name, "unreachable", "", "", "", "")
					continue
				}
				t = t.Row(server.Name,
					fmt.Sprint(stat.NumActive),
					fmt.Sprint(stat.NumWaiting),
					fmt.Sprint(stat.NumStopped),
					humanize.IBytes(uint64(stat.DownloadSpeed))+"/s",
					humanize.IBytes(uint64(stat.UploadSpeed))+"/s",
				)
			}
			fmt.Fprintln(w, t.Render())
			return nil
		},
	}
}

func newTasksCommand(a *app) *cobra.Command {
	var serverID string

	// withTasks resolves the server and its task list for a subcommand
	withTasks := func(cmd *cobra.Command, fn func(server models.Server, tasks []models.Task) error) error {
		opts, err := a.store.Load()
		if err != nil {
			return err
		}
		server, err := resolveServer(opts, serverID)
		if err != nil {
			return err
		}
		tasks, err := dispatch.ListTasks(cmd.Context(), a.conn(server))
		if err != nil {
			return err
		}
		return fn(server, tasks)
	}

	findTask := func(tasks []models.Task, gid string) (models.Task, error) {
		task, ok := lo.Find(tasks, func(t models.Task) bool { return t.GID == gid })
		if !ok {
			return models.Task{}, fmt.Errorf("unknown task %q", gid)
		}
		return task, nil
	}

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List and manage the tasks of a server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withTasks(cmd, func(_ models.Server, tasks []models.Task) error {
				printTasks(cmd.OutOrStdout(), tasks)
				return nil
			})
		},
	}
	cmd.PersistentFlags().StringVar(&serverID, "server", "", "server id, defaults to the capture server")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "pause <gid>",
			Short: "Pause or resume a task",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withTasks(cmd, func(server models.Server, tasks []models.Task) error {
					task, err := findTask(tasks, args[0])
					if err != nil {
						return err
					}
					return dispatch.TogglePause(cmd.Context(), a.conn(server), task)
				})
			},
		},
		&cobra.Command{
			Use:   "remove <gid>",
			Short: "Remove a task or its stopped result",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withTasks(cmd, func(server models.Server, tasks []models.Task) error {
					task, err := findTask(tasks, args[0])
					if err != nil {
						return err
					}
					return dispatch.RemoveTask(cmd.Context(), a.conn(server), task)
				})
			},
		},
		&cobra.Command{
			Use:   "retry <gid>",
			Short: "Restart a failed task",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withTasks(cmd, func(server models.Server, tasks []models.Task) error {
					task, err := findTask(tasks, args[0])
					if err != nil {
						return err
					}
					gid, err := a.dispatcher().RetryTask(cmd.Context(), a.conn(server), server, task)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Restarted as %s\n", gid)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "purge",
			Short: "Forget every stopped task",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				opts, err := a.store.Load()
				if err != nil {
					return err
				}
				server, err := resolveServer(opts, serverID)
				if err != nil {
					return err
				}
				return dispatch.PurgeStopped(cmd.Context(), a.conn(server))
			},
		},
	)
	return cmd
}

func printTasks(w io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No task")
		return
	}

	t := plainTable().Headers("GID", "STATUS", "NAME", "SIZE", "PROGRESS", "SPEED")
	for _, task := range tasks {
		t = t.Row(
			task.GID,
			string(task.Status),
			task.Filename(),
			humanize.IBytes(uint64(task.TotalLength)),
			formatPercent(task.Progress()),
			humanize.IBytes(uint64(task.DownloadSpeed))+"/s",
		)
	}
	fmt.Fprintln(w, t.Render())
}
