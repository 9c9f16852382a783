package background

import (
	"context"

	"aria2-integration/internal/aria2"
	"aria2-integration/internal/capture"
	"aria2-integration/internal/messages"
	"aria2-integration/pkg/models"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentLinks bounds the add calls issued for one selection
const maxConcurrentLinks = 4

// OnMenuClicked sends the clicked link, or the URLs of the selected text, to
// the server of the clicked menu entry
func (b *Background) OnMenuClicked(ctx context.Context, click models.MenuClick) {
	b.captureLinks(ctx, click.MenuItemID, click)
}

// CaptureSelection sends the current link or selection to the capture
// server, or to the first server when none is designated
func (b *Background) CaptureSelection(ctx context.Context, click models.MenuClick) {
	opts, err := b.store.Load()
	if err != nil {
		b.logger.Error("Failed to load settings", "error", err)
		return
	}

	serverID := opts.CaptureServer
	if serverID == "" {
		ids := opts.ServerIDs()
		if len(ids) == 0 {
			b.logger.Warn("Selection not captured, no server configured")
			return
		}
		serverID = ids[0]
	}

	if click.Tab == nil {
		click.Tab = b.activeTab(ctx)
	}
	b.captureLinks(ctx, serverID, click)
}

func (b *Background) captureLinks(ctx context.Context, serverID string, click models.MenuClick) {
	opts, err := b.store.Load()
	if err != nil {
		b.logger.Error("Failed to load settings", "error", err)
		return
	}
	server, ok := opts.Servers[serverID]
	if !ok {
		b.logger.Warn("Unknown server", "server_id", serverID)
		return
	}
	conn, ok := b.connection(serverID)
	if !ok {
		b.logger.Warn("No connection for server", "server", server.Name)
		return
	}

	urls := capture.SelectedURLs(click)
	if len(urls) == 0 {
		return
	}

	referer, storeID := "", ""
	if click.Tab != nil {
		referer = click.Tab.URL
		storeID = click.Tab.CookieStoreID
	}
	cookies := b.cookies(ctx, referer, storeID)

	if opts.AskForFolderOnDownload {
		pending := models.PendingDownload{
			ServerID:  serverID,
			URLs:      urls,
			Referer:   referer,
			Cookies:   cookies,
			CreatedAt: b.now(),
		}
		if err := b.store.SavePendingDownload(pending); err != nil {
			b.logger.Error("Failed to save pending download", "error", err)
			return
		}
		if err := b.platform.OpenFolderPicker(ctx); err != nil {
			b.logger.Error("Failed to open folder picker", "error", err)
		}
		return
	}

	b.captureURLs(ctx, opts, conn, server, urls, referer, cookies, opts.DefaultFolder)
}

// OnFolderPickerResponse dispatches the pending download into the chosen
// folder. The pending descriptor is cleared even on cancellation.
func (b *Background) OnFolderPickerResponse(ctx context.Context, resp models.FolderPickerResponse) {
	pending, err := b.store.TakePendingDownload()
	if err != nil {
		b.logger.Error("Failed to read pending download", "error", err)
		return
	}
	if pending == nil || resp.Cancelled {
		return
	}

	opts, err := b.store.Load()
	if err != nil {
		b.logger.Error("Failed to load settings", "error", err)
		return
	}
	server, ok := opts.Servers[pending.ServerID]
	if !ok {
		b.logger.Warn("Pending download targets an unknown server", "server_id", pending.ServerID)
		return
	}
	conn, ok := b.connection(pending.ServerID)
	if !ok {
		b.logger.Warn("No connection for server", "server", server.Name)
		return
	}

	b.captureURLs(ctx, opts, conn, server, pending.URLs, pending.Referer, pending.Cookies, resp.Folder)
}

// captureURLs adds every url concurrently and notifies each outcome
func (b *Background) captureURLs(ctx context.Context, opts *models.ExtensionOptions, conn aria2.Conn, server models.Server, urls []string, referer, cookies, directory string) {
	var g errgroup.Group
	g.SetLimit(maxConcurrentLinks)

	for _, url := range urls {
		g.Go(func() error {
			if _, err := b.dispatcher.CaptureURL(ctx, conn, server, url, referer, cookies, directory, ""); err != nil {
				b.logger.Error("Failed to capture URL", "url", url, "server", server.Name, "error", err)
				if opts.NotifyErrorOccurs {
					b.notify(ctx, messages.Get(messages.AddURLError, server.Name))
				}
				return nil
			}
			if opts.NotifyURLIsAdded {
				b.notify(ctx, messages.Get(messages.AddURLSuccess, server.Name))
			}
			return nil
		})
	}
	_ = g.Wait()
}
