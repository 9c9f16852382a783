package models

import (
	"time"
)

// UnknownSize is the total size reported for downloads of unknown length
const UnknownSize int64 = -1

// DownloadItem is a browser download normalised at the platform boundary
type DownloadItem struct {
	ID            int    `json:"id"`
	EffectiveURL  string `json:"url"`
	Referrer      string `json:"referrer"`
	Filename      string `json:"filename"`
	TotalBytes    int64  `json:"totalBytes"`
	CookieStoreID string `json:"cookieStoreId,omitempty"`
}

// RawDownloadItem is the shape reported by the browser. Chromium adds a
// redirect-resolved finalUrl.
type RawDownloadItem struct {
	ID            int    `json:"id"`
	URL           string `json:"url"`
	FinalURL      string `json:"finalUrl,omitempty"`
	Referrer      string `json:"referrer"`
	Filename      string `json:"filename"`
	TotalBytes    *int64 `json:"totalBytes,omitempty"`
	CookieStoreID string `json:"cookieStoreId,omitempty"`
}

// Normalize picks the effective URL and fills in the unknown size sentinel
func (r RawDownloadItem) Normalize() DownloadItem {
	url := r.URL
	if r.FinalURL != "" {
		url = r.FinalURL
	}
	total := UnknownSize
	if r.TotalBytes != nil {
		total = *r.TotalBytes
	}
	return DownloadItem{
		ID:            r.ID,
		EffectiveURL:  url,
		Referrer:      r.Referrer,
		Filename:      r.Filename,
		TotalBytes:    total,
		CookieStoreID: r.CookieStoreID,
	}
}

// DownloadDelta reports a filename change of a browser download
type DownloadDelta struct {
	ID               int    `json:"id"`
	FilenamePrevious string `json:"filenamePrevious"`
	FilenameCurrent  string `json:"filenameCurrent"`
}

// FilenameDetermined reports whether the delta carries the first filename
func (d DownloadDelta) FilenameDetermined() bool {
	return d.FilenamePrevious == "" && d.FilenameCurrent != ""
}

// PendingDownload bridges the folder picker window back to dispatch
type PendingDownload struct {
	ServerID  string    `json:"serverId"`
	URLs      []string  `json:"urls"`
	Referer   string    `json:"referer"`
	Cookies   string    `json:"cookies"`
	CreatedAt time.Time `json:"createdAt"`
}

// FolderPickerResponse is posted back by the folder picker window
type FolderPickerResponse struct {
	Folder    string `json:"folder,omitempty"`
	Cancelled bool   `json:"cancelled,omitempty"`
}
