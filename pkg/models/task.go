package models

import (
	"aria2-integration/pkg/pathname"
)

// TaskStatus represents the state of a task on the daemon
type TaskStatus string

const (
	TaskActive   TaskStatus = "active"
	TaskWaiting  TaskStatus = "waiting"
	TaskPaused   TaskStatus = "paused"
	TaskComplete TaskStatus = "complete"
	TaskError    TaskStatus = "error"
	TaskRemoved  TaskStatus = "removed"
)

// URI is one source of a task file
type URI struct {
	URI    string `json:"uri"`
	Status string `json:"status,omitempty"`
}

// File is one file of a task
type File struct {
	Index           string `json:"index,omitempty"`
	Path            string `json:"path"`
	Length          int64  `json:"length,string"`
	CompletedLength int64  `json:"completedLength,string"`
	Selected        string `json:"selected,omitempty"`
	URIs            []URI  `json:"uris"`
}

// BittorrentInfo holds the torrent metadata reported by the daemon
type BittorrentInfo struct {
	Name string `json:"name"`
}

// Bittorrent is present on tasks created from torrents
type Bittorrent struct {
	Info *BittorrentInfo `json:"info,omitempty"`
}

// Task is the daemon's view of one download. Numeric fields are reported as
// decimal strings.
type Task struct {
	GID             string      `json:"gid"`
	Status          TaskStatus  `json:"status"`
	TotalLength     int64       `json:"totalLength,string"`
	CompletedLength int64       `json:"completedLength,string"`
	UploadLength    int64       `json:"uploadLength,string"`
	DownloadSpeed   int64       `json:"downloadSpeed,string"`
	UploadSpeed     int64       `json:"uploadSpeed,string"`
	Connections     int         `json:"connections,string"`
	NumSeeders      int         `json:"numSeeders,string,omitempty"`
	ErrorCode       string      `json:"errorCode,omitempty"`
	ErrorMessage    string      `json:"errorMessage,omitempty"`
	Dir             string      `json:"dir"`
	Files           []File      `json:"files"`
	Bittorrent      *Bittorrent `json:"bittorrent,omitempty"`
}

func (t Task) IsActive() bool   { return t.Status == TaskActive }
func (t Task) IsWaiting() bool  { return t.Status == TaskWaiting }
func (t Task) IsPaused() bool   { return t.Status == TaskPaused }
func (t Task) IsComplete() bool { return t.Status == TaskComplete }
func (t Task) IsError() bool    { return t.Status == TaskError }
func (t Task) IsRemoved() bool  { return t.Status == TaskRemoved }

// IsStopped reports whether the daemon keeps only a result for the task
func (t Task) IsStopped() bool {
	return t.IsComplete() || t.IsError() || t.IsRemoved()
}

// Filename returns a display name: the torrent name, the first file's
// basename, or the basename of its first source URI.
func (t Task) Filename() string {
	if t.Bittorrent != nil && t.Bittorrent.Info != nil && t.Bittorrent.Info.Name != "" {
		return t.Bittorrent.Info.Name
	}
	if len(t.Files) == 0 {
		return t.GID
	}
	if t.Files[0].Path != "" {
		return pathname.Basename(t.Files[0].Path)
	}
	if len(t.Files[0].URIs) > 0 {
		return pathname.Basename(t.Files[0].URIs[0].URI)
	}
	return t.GID
}

// Progress returns the completed fraction in [0, 1]
func (t Task) Progress() float64 {
	if t.TotalLength <= 0 {
		return 0
	}
	return float64(t.CompletedLength) / float64(t.TotalLength)
}

// GlobalStat holds the daemon-wide counters
type GlobalStat struct {
	DownloadSpeed   int64 `json:"downloadSpeed,string"`
	UploadSpeed     int64 `json:"uploadSpeed,string"`
	NumActive       int   `json:"numActive,string"`
	NumWaiting      int   `json:"numWaiting,string"`
	NumStopped      int   `json:"numStopped,string"`
	NumStoppedTotal int   `json:"numStoppedTotal,string"`
}
