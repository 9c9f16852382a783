package background

import (
	"context"
	"time"

	"aria2-integration/internal/aria2"
	"aria2-integration/internal/capture"
	"aria2-integration/internal/messages"
	"aria2-integration/pkg/models"
)

// blankReferrer is reported for downloads started outside of a page
const blankReferrer = "about:blank"

// inflightDownload is a download waiting for its file name. While the
// creation handler is still evaluating it, a file name reported in the
// meantime is kept on the entry for that handler to pick up.
type inflightDownload struct {
	item       models.DownloadItem
	addedAt    time.Time
	evaluating bool
	filename   string
}

// captureTarget is everything resolved for an accepted download
type captureTarget struct {
	opts     *models.ExtensionOptions
	conn     aria2.Conn
	server   models.Server
	referrer string
	cookies  string
}

// OnDownloadCreated captures a new browser download when the rules accept it.
// Without a synchronous file name the download is parked until
// OnDownloadChanged reports the name.
func (b *Background) OnDownloadCreated(ctx context.Context, item models.DownloadItem) {
	if b.caps.SynchronousFilename {
		if target, ok := b.accept(ctx, item); ok {
			b.captureDownload(ctx, target, item)
		}
		return
	}

	// parked before the first platform call so a file name reported during
	// the evaluation finds the entry
	b.inflightMu.Lock()
	b.inflight[item.ID] = inflightDownload{item: item, addedAt: b.now(), evaluating: true}
	b.inflightMu.Unlock()

	_, ok := b.accept(ctx, item)

	b.inflightMu.Lock()
	entry, parked := b.inflight[item.ID]
	switch {
	case !parked:
		b.inflightMu.Unlock()
		return
	case !ok || entry.filename != "":
		delete(b.inflight, item.ID)
	default:
		entry.evaluating = false
		b.inflight[item.ID] = entry
	}
	b.inflightMu.Unlock()

	if !ok {
		return
	}
	if entry.filename != "" {
		b.resumeDownload(ctx, item, entry.filename)
		return
	}
	b.logger.Debug("Download awaiting file name", "id", item.ID, "url", item.EffectiveURL)
}

// OnDownloadChanged resumes a parked download once its file name is known.
// The download is re-evaluated with the name and dropped from the table
// whatever the outcome.
func (b *Background) OnDownloadChanged(ctx context.Context, delta models.DownloadDelta) {
	if !delta.FilenameDetermined() {
		return
	}

	b.inflightMu.Lock()
	entry, ok := b.inflight[delta.ID]
	if !ok {
		b.inflightMu.Unlock()
		return
	}
	if entry.evaluating {
		entry.filename = delta.FilenameCurrent
		b.inflight[delta.ID] = entry
		b.inflightMu.Unlock()
		return
	}
	delete(b.inflight, delta.ID)
	b.inflightMu.Unlock()

	b.resumeDownload(ctx, entry.item, delta.FilenameCurrent)
}

func (b *Background) resumeDownload(ctx context.Context, item models.DownloadItem, filename string) {
	item.Filename = filename

	target, ok := b.accept(ctx, item)
	if !ok {
		return
	}
	b.captureDownload(ctx, target, item)
}

// InflightCount returns the number of downloads awaiting a file name
func (b *Background) InflightCount() int {
	b.inflightMu.Lock()
	defer b.inflightMu.Unlock()
	return len(b.inflight)
}

// evictInflight forgets downloads whose file name never arrived
func (b *Background) evictInflight() {
	if b.inflightTTL <= 0 {
		return
	}
	cutoff := b.now().Add(-b.inflightTTL)

	b.inflightMu.Lock()
	defer b.inflightMu.Unlock()
	for id, entry := range b.inflight {
		if entry.addedAt.Before(cutoff) {
			delete(b.inflight, id)
			b.logger.Debug("Evicted download awaiting file name", "id", id)
		}
	}
}

// accept resolves the referrer and cookies of item and evaluates the capture
// rules against the current settings
func (b *Background) accept(ctx context.Context, item models.DownloadItem) (*captureTarget, bool) {
	opts, err := b.store.Load()
	if err != nil {
		b.logger.Error("Failed to load settings", "error", err)
		return nil, false
	}
	if !opts.CaptureDownloads {
		return nil, false
	}
	conn, ok := b.connection(opts.CaptureServer)
	if !ok {
		return nil, false
	}

	tab := b.activeTab(ctx)
	referrer := item.Referrer
	if referrer == "" || referrer == blankReferrer {
		referrer = ""
		if tab != nil {
			referrer = tab.URL
		}
	}
	storeID := item.CookieStoreID
	if storeID == "" && tab != nil {
		storeID = tab.CookieStoreID
	}
	cookies := b.cookies(ctx, referrer, storeID)

	if !capture.ShouldCapture(opts, item, referrer) {
		b.logger.Debug("Download not captured", "id", item.ID, "url", item.EffectiveURL)
		return nil, false
	}

	return &captureTarget{
		opts:     opts,
		conn:     conn,
		server:   opts.Servers[opts.CaptureServer],
		referrer: referrer,
		cookies:  cookies,
	}, true
}

// captureDownload removes the native download, hands it to the daemon and
// notifies the outcome
func (b *Background) captureDownload(ctx context.Context, target *captureTarget, item models.DownloadItem) {
	b.removeNativeDownload(ctx, item.ID)

	_, err := b.dispatcher.CaptureDownloadItem(ctx, target.conn, target.server, item,
		target.referrer, target.cookies, target.opts.UseCompleteFilePath)
	if err != nil {
		b.logger.Error("Failed to capture download", "id", item.ID, "server", target.server.Name, "error", err)
		if target.opts.NotifyErrorOccurs {
			b.notify(ctx, messages.Get(messages.AddFileError, target.server.Name))
		}
		return
	}

	if target.opts.NotifyFileIsAdded {
		b.notify(ctx, messages.Get(messages.AddFileSuccess, target.server.Name))
	}
}

// removeNativeDownload cancels the browser transfer, deletes the file when the
// transfer already finished, and always erases the record
func (b *Background) removeNativeDownload(ctx context.Context, id int) {
	if err := b.platform.CancelDownload(ctx, id); err != nil {
		b.logger.Debug("Cancel failed, removing file", "id", id, "error", err)
		if err := b.platform.RemoveDownloadFile(ctx, id); err != nil {
			b.logger.Warn("Failed to remove downloaded file", "id", id, "error", err)
		}
	}
	if err := b.platform.EraseDownload(ctx, id); err != nil {
		b.logger.Warn("Failed to erase download", "id", id, "error", err)
	}
}

func (b *Background) activeTab(ctx context.Context) *models.Tab {
	tab, err := b.platform.ActiveTab(ctx)
	if err != nil {
		b.logger.Debug("No active tab", "error", err)
		return nil
	}
	return tab
}

func (b *Background) cookies(ctx context.Context, url, storeID string) string {
	if url == "" {
		return ""
	}
	cookies, err := b.platform.GetCookies(ctx, url, storeID)
	if err != nil {
		b.logger.Debug("Failed to read cookies", "url", url, "error", err)
		return ""
	}
	return capture.FormatCookies(cookies)
}
