// Package background reacts to browser events: it decides which downloads
// and links go to which daemon, keeps the context menus and toolbar badge in
// sync with the settings and reports outcomes through notifications.
package background

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"aria2-integration/internal/aria2"
	"aria2-integration/internal/dispatch"
	"aria2-integration/internal/messages"
	"aria2-integration/internal/options"
	"aria2-integration/pkg/models"

	"golang.org/x/sync/errgroup"
)

const (
	// MenuParentID is the id of the parent menu entry shown with several servers
	MenuParentID = "aria2-integration"
	// InstallReason is the install event reason that opens the settings
	InstallReason = "install"
)

// Background owns the daemon connections and the downloads awaiting a file name
type Background struct {
	store       *options.Store
	platform    Platform
	dispatcher  *dispatch.Dispatcher
	newConn     ConnFactory
	caps        Capabilities
	inflightTTL time.Duration
	logger      *slog.Logger
	now         func() time.Time

	mu    sync.RWMutex
	conns map[string]aria2.Conn

	inflightMu sync.Mutex
	inflight   map[int]inflightDownload
}

// New creates a background. inflightTTL bounds how long a download waits for
// its file name before being forgotten.
func New(store *options.Store, platform Platform, dispatcher *dispatch.Dispatcher, newConn ConnFactory, caps Capabilities, inflightTTL time.Duration) *Background {
	return &Background{
		store:       store,
		platform:    platform,
		dispatcher:  dispatcher,
		newConn:     newConn,
		caps:        caps,
		inflightTTL: inflightTTL,
		logger:      slog.Default(),
		now:         time.Now,
		conns:       map[string]aria2.Conn{},
		inflight:    map[int]inflightDownload{},
	}
}

// Run loads the settings, then follows settings changes and refreshes the
// badge every badgeInterval until ctx is done
func (b *Background) Run(ctx context.Context, badgeInterval time.Duration) error {
	if err := b.Reload(ctx); err != nil {
		b.logger.Warn("Initial reload incomplete", "error", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b.Watch(ctx)
		return nil
	})
	g.Go(func() error {
		b.runBadgeTimer(ctx, badgeInterval)
		return nil
	})
	return g.Wait()
}

// Watch reloads connections and menus on every settings write until ctx is done
func (b *Background) Watch(ctx context.Context) {
	changes, stop := b.store.Changes()
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			b.OnOptionsChanged(ctx)
		}
	}
}

func (b *Background) runBadgeTimer(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.OnAlarm(ctx, AlarmName)
		}
	}
}

// OnOptionsChanged rebuilds connections and menus from the stored settings
func (b *Background) OnOptionsChanged(ctx context.Context) {
	if err := b.Reload(ctx); err != nil {
		b.logger.Error("Failed to apply settings change", "error", err)
	}
}

// Reload replaces every connection and recreates the context menus
func (b *Background) Reload(ctx context.Context) error {
	opts, err := b.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	b.rebuildConnections(opts)

	if err := b.rebuildMenus(ctx, opts); err != nil {
		return fmt.Errorf("failed to rebuild context menus: %w", err)
	}
	return nil
}

func (b *Background) rebuildConnections(opts *models.ExtensionOptions) {
	conns := make(map[string]aria2.Conn, len(opts.Servers))
	for id, server := range opts.Servers {
		conns[id] = b.newConn(server)
	}

	b.mu.Lock()
	b.conns = conns
	b.mu.Unlock()

	b.logger.Debug("Connections rebuilt", "servers", len(conns))
}

func (b *Background) connection(serverID string) (aria2.Conn, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	conn, ok := b.conns[serverID]
	return conn, ok
}

func (b *Background) snapshotConnections() map[string]aria2.Conn {
	b.mu.RLock()
	defer b.mu.RUnlock()
	conns := make(map[string]aria2.Conn, len(b.conns))
	for id, conn := range b.conns {
		conns[id] = conn
	}
	return conns
}

// rebuildMenus removes every menu entry, then creates one flat entry for a
// single server or a parent entry with one child per server
func (b *Background) rebuildMenus(ctx context.Context, opts *models.ExtensionOptions) error {
	if err := b.platform.RemoveAllMenus(ctx); err != nil {
		return err
	}

	ids := opts.ServerIDs()
	switch len(ids) {
	case 0:
		return nil
	case 1:
		return b.platform.CreateMenu(ctx, models.MenuItem{
			ID:       ids[0],
			Title:    messages.Get(messages.ContextMenusTitle),
			Contexts: models.MenuContexts,
		})
	}

	if err := b.platform.CreateMenu(ctx, models.MenuItem{
		ID:       MenuParentID,
		Title:    messages.Get(messages.ContextMenusTitle),
		Contexts: models.MenuContexts,
	}); err != nil {
		return err
	}
	for _, id := range ids {
		if err := b.platform.CreateMenu(ctx, models.MenuItem{
			ID:       id,
			ParentID: MenuParentID,
			Title:    opts.Servers[id].Name,
			Contexts: models.MenuContexts,
		}); err != nil {
			return err
		}
	}
	return nil
}

// OnInstalled opens the settings page on first install
func (b *Background) OnInstalled(ctx context.Context, reason string) {
	if reason != InstallReason {
		return
	}
	if err := b.platform.OpenOptionsPage(ctx); err != nil {
		b.logger.Error("Failed to open options page", "error", err)
	}
}

func (b *Background) notify(ctx context.Context, message string) {
	if err := b.platform.Notify(ctx, messages.NotificationTitle, message); err != nil {
		b.logger.Warn("Failed to show notification", "message", message, "error", err)
	}
}
