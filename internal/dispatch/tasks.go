package dispatch

import (
	"context"
	"fmt"

	"aria2-integration/internal/aria2"
	"aria2-integration/pkg/models"

	"github.com/samber/lo"
)

// TogglePause pauses an active task and resumes any other
func TogglePause(ctx context.Context, conn aria2.Conn, task models.Task) error {
	var err error
	if task.IsActive() {
		_, err = conn.Pause(ctx, task.GID)
	} else {
		_, err = conn.Unpause(ctx, task.GID)
	}
	return err
}

// RemoveTask drops the result of a stopped task and stops any other
func RemoveTask(ctx context.Context, conn aria2.Conn, task models.Task) error {
	if task.IsStopped() {
		return conn.RemoveDownloadResult(ctx, task.GID)
	}
	_, err := conn.Remove(ctx, task.GID)
	return err
}

// PurgeStopped forgets every stopped task of the daemon
func PurgeStopped(ctx context.Context, conn aria2.Conn) error {
	return conn.PurgeDownloadResult(ctx)
}

// ListTasks returns every task of the daemon: active first, then waiting,
// then stopped
func ListTasks(ctx context.Context, conn aria2.Conn) ([]models.Task, error) {
	stat, err := conn.GetGlobalStat(ctx)
	if err != nil {
		return nil, err
	}
	lists, err := conn.TellAll(ctx, stat.NumWaiting, stat.NumStopped)
	if err != nil {
		return nil, err
	}
	return lo.Flatten([][]models.Task{lists.Active, lists.Waiting, lists.Stopped}), nil
}

// RetryTask re-adds the sources of an errored single-file task into its
// directory and drops the failed result. The daemon treats every URI of one
// addUri as a mirror of the same file, so multi-file tasks are refused.
func (d *Dispatcher) RetryTask(ctx context.Context, conn aria2.Conn, server models.Server, task models.Task) (string, error) {
	if !task.IsError() {
		return "", fmt.Errorf("task %s is %s, only errored tasks can be retried", task.GID, task.Status)
	}

	if len(task.Files) != 1 {
		return "", fmt.Errorf("task %s has %d files, only single-file tasks can be retried", task.GID, len(task.Files))
	}

	uris := lo.Uniq(lo.Map(task.Files[0].URIs, func(u models.URI, _ int) string { return u.URI }))
	if len(uris) == 0 {
		return "", fmt.Errorf("task %s has no source URI to retry", task.GID)
	}

	options := baseOptions(server)
	if task.Dir != "" {
		options["dir"] = task.Dir
	}

	gid, err := conn.AddURI(ctx, uris, options)
	if err != nil {
		return "", fmt.Errorf("failed to retry task %s: %w", task.GID, err)
	}

	if err := conn.RemoveDownloadResult(ctx, task.GID); err != nil {
		d.logger.Warn("Failed to remove retried task result", "gid", task.GID, "error", err)
	}

	d.logger.Info("Task retried", "server", server.Name, "old_gid", task.GID, "gid", gid)
	return gid, nil
}
