package background

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"aria2-integration/internal/messages"
	"aria2-integration/internal/options"

	"golang.org/x/sync/errgroup"
)

// Keyboard commands
const (
	CommandOpenPopup              = "open_popup"
	CommandToggleCaptureDownloads = "toggle_capture_downloads"
)

const (
	// AlarmName is the recurring timer refreshing the badge
	AlarmName = "set-badge"
	// BadgeColor is the badge background
	BadgeColor = "#666666"
)

// OnCommand runs a keyboard command
func (b *Background) OnCommand(ctx context.Context, command string) {
	switch command {
	case CommandOpenPopup:
		if err := b.platform.OpenPopup(ctx); err != nil {
			b.logger.Error("Failed to open popup", "error", err)
		}
	case CommandToggleCaptureDownloads:
		b.toggleCapture(ctx)
	default:
		b.logger.Debug("Unknown command", "command", command)
	}
}

func (b *Background) toggleCapture(ctx context.Context) {
	opts, err := b.store.ToggleCapture()
	if errors.Is(err, options.ErrNoServers) {
		b.notify(ctx, messages.Get(messages.ToggleCaptureDownloadsNoServer))
		return
	}
	if err != nil {
		b.logger.Error("Failed to toggle capture", "error", err)
		return
	}

	if opts.CaptureDownloads {
		b.notify(ctx, messages.Get(messages.ToggleCaptureDownloadsEnabled, opts.Servers[opts.CaptureServer].Name))
		return
	}
	b.notify(ctx, messages.Get(messages.ToggleCaptureDownloadsDisabled))
}

// OnAlarm handles a timer tick
func (b *Background) OnAlarm(ctx context.Context, name string) {
	if name != AlarmName {
		return
	}
	b.RunAlarm(ctx)
}

// RunAlarm forgets stale downloads awaiting a file name and shows the number
// of active tasks across every server on the badge
func (b *Background) RunAlarm(ctx context.Context) {
	b.evictInflight()

	text := BadgeText(b.activeTasks(ctx))
	if err := b.platform.SetBadgeText(ctx, text); err != nil {
		b.logger.Debug("Failed to set badge text", "error", err)
		return
	}
	if err := b.platform.SetBadgeBackgroundColor(ctx, BadgeColor); err != nil {
		b.logger.Debug("Failed to set badge color", "error", err)
	}
}

// activeTasks sums the active task counts of every reachable server
func (b *Background) activeTasks(ctx context.Context) int {
	var (
		g     errgroup.Group
		mu    sync.Mutex
		total int
	)

	for id, conn := range b.snapshotConnections() {
		g.Go(func() error {
			stat, err := conn.GetGlobalStat(ctx)
			if err != nil {
				b.logger.Debug("Skipping unreachable server", "server_id", id, "error", err)
				return nil
			}
			mu.Lock()
			total += stat.NumActive
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return total
}

// BadgeText renders an active task count; zero clears the badge
func BadgeText(active int) string {
	if active == 0 {
		return ""
	}
	return strconv.Itoa(active)
}
