package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskStatus_Predicates(t *testing.T) {
	tests := []struct {
		status  TaskStatus
		active  bool
		paused  bool
		stopped bool
	}{
		{TaskActive, true, false, false},
		{TaskWaiting, false, false, false},
		{TaskPaused, false, true, false},
		{TaskComplete, false, false, true},
		{TaskError, false, false, true},
		{TaskRemoved, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			task := Task{Status: tt.status}
			require.Equal(t, tt.active, task.IsActive())
			require.Equal(t, tt.paused, task.IsPaused())
			require.Equal(t, tt.stopped, task.IsStopped())
		})
	}
}

func TestTask_Filename(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "torrent name",
			task: Task{Bittorrent: &Bittorrent{Info: &BittorrentInfo{Name: "ubuntu.iso"}}, Files: []File{{Path: "/dl/x"}}},
			want: "ubuntu.iso",
		},
		{
			name: "file path",
			task: Task{Files: []File{{Path: "/downloads/movie.mkv"}}},
			want: "movie.mkv",
		},
		{
			name: "first uri",
			task: Task{Files: []File{{URIs: []URI{{URI: "https://example.com/files/archive.zip"}}}}},
			want: "archive.zip",
		},
		{
			name: "gid fallback",
			task: Task{GID: "abc"},
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.task.Filename())
		})
	}
}

func TestTask_UnmarshalDaemonResponse(t *testing.T) {
	payload := `{
		"gid": "2089b05ecca3d829",
		"status": "active",
		"totalLength": "34896138",
		"completedLength": "17448069",
		"uploadLength": "0",
		"downloadSpeed": "102400",
		"uploadSpeed": "0",
		"connections": "4",
		"dir": "/downloads",
		"files": [{"index": "1", "path": "/downloads/file.iso", "length": "34896138", "completedLength": "17448069", "selected": "true", "uris": [{"uri": "http://example.org/file.iso", "status": "used"}]}]
	}`

	var task Task
	require.NoError(t, json.Unmarshal([]byte(payload), &task))
	require.Equal(t, "2089b05ecca3d829", task.GID)
	require.True(t, task.IsActive())
	require.Equal(t, int64(34896138), task.TotalLength)
	require.Equal(t, 4, task.Connections)
	require.InDelta(t, 0.5, task.Progress(), 0.0001)
	require.Equal(t, "file.iso", task.Filename())
}

func TestGlobalStat_Unmarshal(t *testing.T) {
	var stat GlobalStat
	err := json.Unmarshal([]byte(`{"downloadSpeed":"21846","uploadSpeed":"0","numActive":"2","numWaiting":"1","numStopped":"3","numStoppedTotal":"7"}`), &stat)
	require.NoError(t, err)
	require.Equal(t, 2, stat.NumActive)
	require.Equal(t, int64(21846), stat.DownloadSpeed)
	require.Equal(t, 7, stat.NumStoppedTotal)
}
