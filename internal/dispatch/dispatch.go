// Package dispatch turns captured items into aria2 RPC calls
package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"aria2-integration/internal/aria2"
	"aria2-integration/pkg/models"
	"aria2-integration/pkg/pathname"

	"github.com/anacrolix/torrent/metainfo"
	"github.com/dustin/go-humanize"
)

var torrentOrMetalink = regexp.MustCompile(`\.torrent$|\.meta4$|\.metalink$`)

// IsTorrentOrMetalink reports whether name designates a torrent or metalink file
func IsTorrentOrMetalink(name string) bool {
	return torrentOrMetalink.MatchString(name)
}

// Dispatcher builds and issues the add* calls for captured items
type Dispatcher struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// New creates a dispatcher fetching torrent and metalink files with fetcher
func New(fetcher Fetcher) *Dispatcher {
	return &Dispatcher{
		fetcher: fetcher,
		logger:  slog.Default(),
	}
}

// baseOptions copies the server's pass-through parameters
func baseOptions(server models.Server) aria2.Options {
	options := aria2.Options{}
	for k, v := range server.RPCParameters {
		options[k] = v
	}
	return options
}

// CaptureURL adds url to the daemon. Torrent and metalink URLs are fetched and
// uploaded instead. directory and filename are optional.
func (d *Dispatcher) CaptureURL(ctx context.Context, conn aria2.Conn, server models.Server, url, referer, cookies, directory, filename string) ([]string, error) {
	if IsTorrentOrMetalink(url) {
		return d.CaptureTorrentFromURL(ctx, conn, server, url, directory, filename)
	}

	options := baseOptions(server)
	options["header"] = []string{"Referer: " + referer, "Cookie: " + cookies}
	if directory != "" {
		options["dir"] = directory
	}
	if filename != "" {
		options["out"] = filename
	}

	gid, err := conn.AddURI(ctx, []string{url}, options)
	if err != nil {
		return nil, fmt.Errorf("failed to add %s to %s: %w", url, server.Name, err)
	}

	d.logger.Info("URL added", "server", server.Name, "gid", gid, "url", url)
	return []string{gid}, nil
}

// CaptureTorrentFromURL fetches a torrent or metalink file and uploads it
func (d *Dispatcher) CaptureTorrentFromURL(ctx context.Context, conn aria2.Conn, server models.Server, url, directory, filename string) ([]string, error) {
	data, err := d.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	options := baseOptions(server)
	if directory != "" {
		options["dir"] = directory
	}

	torrent := strings.HasSuffix(url, ".torrent") || strings.HasSuffix(filename, ".torrent")
	return d.upload(ctx, conn, server, url, data, torrent, options)
}

// CaptureTorrentFromFile uploads a local torrent or metalink file
func (d *Dispatcher) CaptureTorrentFromFile(ctx context.Context, conn aria2.Conn, server models.Server, name string, r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read '%s': %w", name, err)
	}
	return d.upload(ctx, conn, server, name, data, strings.HasSuffix(name, "torrent"), baseOptions(server))
}

func (d *Dispatcher) upload(ctx context.Context, conn aria2.Conn, server models.Server, source string, data []byte, torrent bool, options aria2.Options) ([]string, error) {
	encoded, err := EncodeBase64(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot get base64 encoded string for '%s': %w", source, err)
	}

	if !torrent {
		gids, err := conn.AddMetalink(ctx, encoded, []string{}, options)
		if err != nil {
			return nil, fmt.Errorf("failed to add metalink %s to %s: %w", source, server.Name, err)
		}
		d.logger.Info("Metalink added", "server", server.Name, "gids", gids, "source", source)
		return gids, nil
	}

	d.describeTorrent(source, data)
	gid, err := conn.AddTorrent(ctx, encoded, []string{}, options)
	if err != nil {
		return nil, fmt.Errorf("failed to add torrent %s to %s: %w", source, server.Name, err)
	}
	d.logger.Info("Torrent added", "server", server.Name, "gid", gid, "source", source)
	return []string{gid}, nil
}

// describeTorrent logs the torrent name and size. Undecodable payloads are
// still uploaded; the daemon reports the error.
func (d *Dispatcher) describeTorrent(source string, data []byte) {
	mi, err := metainfo.Load(bytes.NewReader(data))
	if err != nil {
		d.logger.Debug("Payload is not a decodable torrent", "source", source, "error", err)
		return
	}
	info, err := mi.UnmarshalInfo()
	if err != nil {
		d.logger.Debug("Torrent info is not decodable", "source", source, "error", err)
		return
	}
	d.logger.Debug("Uploading torrent",
		"source", source,
		"name", info.Name,
		"size", humanize.Bytes(uint64(info.TotalLength())),
		"files", len(info.UpvertedFiles()))
}

// CaptureDownloadItem redirects a browser download. With useFullPath the
// parent directory of the browser's target path is kept; otherwise the
// daemon's default directory applies.
func (d *Dispatcher) CaptureDownloadItem(ctx context.Context, conn aria2.Conn, server models.Server, item models.DownloadItem, referer, cookies string, useFullPath bool) ([]string, error) {
	directory := ""
	if useFullPath {
		// a bare file name has no directory to keep
		if dir := pathname.Dirname(item.Filename); dir != item.Filename {
			directory = dir
		}
	}
	filename := pathname.Basename(item.Filename)

	if IsTorrentOrMetalink(item.EffectiveURL) || IsTorrentOrMetalink(filename) {
		return d.CaptureTorrentFromURL(ctx, conn, server, item.EffectiveURL, directory, filename)
	}
	return d.CaptureURL(ctx, conn, server, item.EffectiveURL, referer, cookies, directory, filename)
}
