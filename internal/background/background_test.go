package background

import (
	"context"
	"errors"
	"testing"
	"time"

	"aria2-integration/internal/aria2"
	aria2mocks "aria2-integration/internal/aria2/mocks"
	"aria2-integration/internal/background/mocks"
	"aria2-integration/internal/database"
	"aria2-integration/internal/dispatch"
	"aria2-integration/internal/messages"
	"aria2-integration/internal/options"
	"aria2-integration/pkg/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubFetcher struct{}

func (stubFetcher) Fetch(context.Context, string) ([]byte, error) {
	return []byte("d8:announce0:e"), nil
}

type fixture struct {
	bg       *Background
	store    *options.Store
	platform *mocks.MockPlatform
	conns    map[string]*aria2mocks.MockConn
	clock    time.Time
}

func newFixture(t *testing.T, caps Capabilities, opts *models.ExtensionOptions) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := options.NewStore(db)
	saved, err := store.Save(opts)
	require.NoError(t, err)

	f := &fixture{
		store:    store,
		platform: mocks.NewMockPlatform(ctrl),
		conns:    map[string]*aria2mocks.MockConn{},
		clock:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	for id := range saved.Servers {
		f.conns[id] = aria2mocks.NewMockConn(ctrl)
	}

	newConn := func(server models.Server) aria2.Conn {
		return f.conns[server.ID]
	}
	f.bg = New(store, f.platform, dispatch.New(stubFetcher{}), newConn, caps, time.Minute)
	f.bg.now = func() time.Time { return f.clock }
	f.bg.rebuildConnections(saved)
	return f
}

func server(id, name string) models.Server {
	return models.Server{ID: id, Name: name, Host: "localhost", Port: 6800, Path: "/jsonrpc"}
}

func captureOptions() *models.ExtensionOptions {
	return models.DefaultExtensionOptions().
		WithServer(server("home", "Home")).
		WithCapture(true, "home")
}

func download(id int) models.DownloadItem {
	return models.DownloadItem{
		ID:           id,
		EffectiveURL: "https://example.com/file.zip",
		Referrer:     "https://example.com/page",
		Filename:     "/home/user/Downloads/file.zip",
		TotalBytes:   models.UnknownSize,
	}
}

func (f *fixture) expectTabAndCookies() {
	f.platform.EXPECT().ActiveTab(gomock.Any()).Return(&models.Tab{URL: "https://tab.example.com/"}, nil).AnyTimes()
	f.platform.EXPECT().GetCookies(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.Cookie{{Name: "session", Value: "abc"}}, nil).AnyTimes()
}

func TestBackground_Reload_MenuCardinality(t *testing.T) {
	tests := []struct {
		name    string
		servers []models.Server
		creates int
	}{
		{"no server", nil, 0},
		{"one server", []models.Server{server("a", "A")}, 1},
		{"two servers", []models.Server{server("a", "A"), server("b", "B")}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := models.DefaultExtensionOptions()
			for _, s := range tt.servers {
				opts = opts.WithServer(s)
			}
			f := newFixture(t, Capabilities{}, opts)

			var created []models.MenuItem
			f.platform.EXPECT().RemoveAllMenus(gomock.Any()).Return(nil)
			f.platform.EXPECT().CreateMenu(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, item models.MenuItem) error {
					created = append(created, item)
					return nil
				}).Times(tt.creates)

			require.NoError(t, f.bg.Reload(context.Background()))
			require.Len(t, created, tt.creates)
			require.Len(t, f.bg.snapshotConnections(), len(tt.servers))
		})
	}
}

func TestBackground_Reload_MenuShape(t *testing.T) {
	t.Run("single server is a flat entry", func(t *testing.T) {
		f := newFixture(t, Capabilities{}, models.DefaultExtensionOptions().WithServer(server("a", "A")))

		f.platform.EXPECT().RemoveAllMenus(gomock.Any()).Return(nil)
		f.platform.EXPECT().CreateMenu(gomock.Any(), models.MenuItem{
			ID:       "a",
			Title:    messages.Get(messages.ContextMenusTitle),
			Contexts: models.MenuContexts,
		}).Return(nil)

		require.NoError(t, f.bg.Reload(context.Background()))
	})

	t.Run("several servers hang under a parent", func(t *testing.T) {
		opts := models.DefaultExtensionOptions().WithServer(server("a", "A")).WithServer(server("b", "B"))
		f := newFixture(t, Capabilities{}, opts)

		gomock.InOrder(
			f.platform.EXPECT().RemoveAllMenus(gomock.Any()).Return(nil),
			f.platform.EXPECT().CreateMenu(gomock.Any(), models.MenuItem{
				ID:       MenuParentID,
				Title:    messages.Get(messages.ContextMenusTitle),
				Contexts: models.MenuContexts,
			}).Return(nil),
			f.platform.EXPECT().CreateMenu(gomock.Any(), models.MenuItem{
				ID: "a", ParentID: MenuParentID, Title: "A", Contexts: models.MenuContexts,
			}).Return(nil),
			f.platform.EXPECT().CreateMenu(gomock.Any(), models.MenuItem{
				ID: "b", ParentID: MenuParentID, Title: "B", Contexts: models.MenuContexts,
			}).Return(nil),
		)

		require.NoError(t, f.bg.Reload(context.Background()))
	})
}

func TestBackground_Reload_PlatformError(t *testing.T) {
	f := newFixture(t, Capabilities{}, models.DefaultExtensionOptions())
	f.platform.EXPECT().RemoveAllMenus(gomock.Any()).Return(errors.New("not connected"))

	require.Error(t, f.bg.Reload(context.Background()))
}

func TestBackground_OnInstalled(t *testing.T) {
	f := newFixture(t, Capabilities{}, models.DefaultExtensionOptions())
	f.platform.EXPECT().OpenOptionsPage(gomock.Any()).Return(nil).Times(1)

	f.bg.OnInstalled(context.Background(), "install")
	f.bg.OnInstalled(context.Background(), "update")
}

func TestBackground_Watch(t *testing.T) {
	f := newFixture(t, Capabilities{}, models.DefaultExtensionOptions())

	reloaded := make(chan struct{}, 1)
	f.platform.EXPECT().RemoveAllMenus(gomock.Any()).Return(nil).AnyTimes()
	f.platform.EXPECT().CreateMenu(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.MenuItem) error {
		select {
		case reloaded <- struct{}{}:
		default:
		}
		return nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.bg.Watch(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, _ = f.store.AddServer(server("new", "New"))
		select {
		case <-reloaded:
			return true
		default:
			return false
		}
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	<-done
}

func TestBackground_OnDownloadCreated_Synchronous(t *testing.T) {
	f := newFixture(t, Capabilities{SynchronousFilename: true}, captureOptions())
	f.expectTabAndCookies()

	gomock.InOrder(
		f.platform.EXPECT().CancelDownload(gomock.Any(), 7).Return(nil),
		f.platform.EXPECT().EraseDownload(gomock.Any(), 7).Return(nil),
		f.conns["home"].EXPECT().AddURI(gomock.Any(), []string{"https://example.com/file.zip"}, aria2.Options{
			"header": []string{"Referer: https://example.com/page", "Cookie: session=abc;"},
			"out":    "file.zip",
		}).Return("gid", nil),
		f.platform.EXPECT().Notify(gomock.Any(), messages.NotificationTitle, messages.Get(messages.AddFileSuccess, "Home")).Return(nil),
	)

	f.bg.OnDownloadCreated(context.Background(), download(7))
	require.Zero(t, f.bg.InflightCount())
}

func TestBackground_OnDownloadCreated_CancelFallsBackToRemoveFile(t *testing.T) {
	f := newFixture(t, Capabilities{SynchronousFilename: true}, captureOptions())
	f.expectTabAndCookies()

	gomock.InOrder(
		f.platform.EXPECT().CancelDownload(gomock.Any(), 7).Return(errors.New("download already complete")),
		f.platform.EXPECT().RemoveDownloadFile(gomock.Any(), 7).Return(nil),
		f.platform.EXPECT().EraseDownload(gomock.Any(), 7).Return(nil),
	)
	f.conns["home"].EXPECT().AddURI(gomock.Any(), gomock.Any(), gomock.Any()).Return("gid", nil)
	f.platform.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	f.bg.OnDownloadCreated(context.Background(), download(7))
}

func TestBackground_OnDownloadCreated_EraseAfterFailedRemoval(t *testing.T) {
	f := newFixture(t, Capabilities{SynchronousFilename: true}, captureOptions())
	f.expectTabAndCookies()

	f.platform.EXPECT().CancelDownload(gomock.Any(), 7).Return(errors.New("complete"))
	f.platform.EXPECT().RemoveDownloadFile(gomock.Any(), 7).Return(errors.New("file gone"))
	f.platform.EXPECT().EraseDownload(gomock.Any(), 7).Return(nil)
	f.conns["home"].EXPECT().AddURI(gomock.Any(), gomock.Any(), gomock.Any()).Return("gid", nil)
	f.platform.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	f.bg.OnDownloadCreated(context.Background(), download(7))
}

func TestBackground_OnDownloadCreated_ReferrerFallsBackToActiveTab(t *testing.T) {
	for _, referrer := range []string{"", "about:blank"} {
		t.Run("referrer "+referrer, func(t *testing.T) {
			f := newFixture(t, Capabilities{SynchronousFilename: true}, captureOptions())

			f.platform.EXPECT().ActiveTab(gomock.Any()).Return(&models.Tab{URL: "https://tab.example.com/", CookieStoreID: "firefox-container-1"}, nil)
			f.platform.EXPECT().GetCookies(gomock.Any(), "https://tab.example.com/", "firefox-container-1").Return(nil, nil)
			f.platform.EXPECT().CancelDownload(gomock.Any(), 1).Return(nil)
			f.platform.EXPECT().EraseDownload(gomock.Any(), 1).Return(nil)
			f.conns["home"].EXPECT().AddURI(gomock.Any(), gomock.Any(), aria2.Options{
				"header": []string{"Referer: https://tab.example.com/", "Cookie: "},
				"out":    "file.zip",
			}).Return("gid", nil)
			f.platform.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			item := download(1)
			item.Referrer = referrer
			f.bg.OnDownloadCreated(context.Background(), item)
		})
	}
}

func TestBackground_OnDownloadCreated_NotCaptured(t *testing.T) {
	t.Run("capture disabled", func(t *testing.T) {
		opts := models.DefaultExtensionOptions().WithServer(server("home", "Home"))
		f := newFixture(t, Capabilities{SynchronousFilename: true}, opts)

		f.bg.OnDownloadCreated(context.Background(), download(1))
	})

	t.Run("rejected by rules", func(t *testing.T) {
		opts := captureOptions()
		opts.MinFileSizeInBytes = 1024
		f := newFixture(t, Capabilities{SynchronousFilename: true}, opts)
		f.expectTabAndCookies()

		item := download(1)
		item.TotalBytes = 10
		f.bg.OnDownloadCreated(context.Background(), item)
	})
}

func TestBackground_OnDownloadCreated_DispatchError(t *testing.T) {
	tests := []struct {
		name   string
		notify bool
	}{
		{"notifies", true},
		{"silent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := captureOptions()
			opts.NotifyErrorOccurs = tt.notify
			f := newFixture(t, Capabilities{SynchronousFilename: true}, opts)
			f.expectTabAndCookies()

			f.platform.EXPECT().CancelDownload(gomock.Any(), 3).Return(nil)
			f.platform.EXPECT().EraseDownload(gomock.Any(), 3).Return(nil)
			f.conns["home"].EXPECT().AddURI(gomock.Any(), gomock.Any(), gomock.Any()).
				Return("", &aria2.RPCError{Code: 1, Message: "Unauthorized"})
			if tt.notify {
				f.platform.EXPECT().Notify(gomock.Any(), messages.NotificationTitle, messages.Get(messages.AddFileError, "Home")).Return(nil)
			}

			f.bg.OnDownloadCreated(context.Background(), download(3))
		})
	}
}

func TestBackground_AsynchronousFilename(t *testing.T) {
	f := newFixture(t, Capabilities{SynchronousFilename: false}, captureOptions())
	f.expectTabAndCookies()
	ctx := context.Background()

	item := download(9)
	item.Filename = ""
	f.bg.OnDownloadCreated(ctx, item)
	require.Equal(t, 1, f.bg.InflightCount())

	// unrelated or incomplete changes are ignored
	f.bg.OnDownloadChanged(ctx, models.DownloadDelta{ID: 9, FilenamePrevious: "", FilenameCurrent: ""})
	f.bg.OnDownloadChanged(ctx, models.DownloadDelta{ID: 10, FilenamePrevious: "", FilenameCurrent: "/tmp/other.zip"})
	require.Equal(t, 1, f.bg.InflightCount())

	gomock.InOrder(
		f.platform.EXPECT().CancelDownload(gomock.Any(), 9).Return(nil),
		f.platform.EXPECT().EraseDownload(gomock.Any(), 9).Return(nil),
		f.conns["home"].EXPECT().AddURI(gomock.Any(), gomock.Any(), aria2.Options{
			"header": []string{"Referer: https://example.com/page", "Cookie: session=abc;"},
			"out":    "file.zip",
		}).Return("gid", nil),
		f.platform.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	f.bg.OnDownloadChanged(ctx, models.DownloadDelta{ID: 9, FilenamePrevious: "", FilenameCurrent: "/home/user/Downloads/file.zip"})
	require.Zero(t, f.bg.InflightCount())
}

func TestBackground_AsynchronousFilename_NamedDuringEvaluation(t *testing.T) {
	f := newFixture(t, Capabilities{SynchronousFilename: false}, captureOptions())
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	tab := &models.Tab{URL: "https://tab.example.com/"}
	gomock.InOrder(
		f.platform.EXPECT().ActiveTab(gomock.Any()).DoAndReturn(func(context.Context) (*models.Tab, error) {
			close(entered)
			<-release
			return tab, nil
		}),
		f.platform.EXPECT().ActiveTab(gomock.Any()).Return(tab, nil),
	)
	f.platform.EXPECT().GetCookies(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	f.platform.EXPECT().CancelDownload(gomock.Any(), 9).Return(nil)
	f.platform.EXPECT().EraseDownload(gomock.Any(), 9).Return(nil)
	f.conns["home"].EXPECT().AddURI(gomock.Any(), []string{"https://example.com/file.zip"}, aria2.Options{
		"header": []string{"Referer: https://example.com/page", "Cookie: "},
		"out":    "file.zip",
	}).Return("gid", nil)
	f.platform.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	item := download(9)
	item.Filename = ""

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.bg.OnDownloadCreated(ctx, item)
	}()

	<-entered
	require.Equal(t, 1, f.bg.InflightCount())
	f.bg.OnDownloadChanged(ctx, models.DownloadDelta{ID: 9, FilenamePrevious: "", FilenameCurrent: "/home/user/Downloads/file.zip"})
	close(release)
	<-done

	require.Zero(t, f.bg.InflightCount())
}

func TestBackground_AsynchronousFilename_RejectedDuringEvaluation(t *testing.T) {
	opts := captureOptions()
	opts.MinFileSizeInBytes = 1024
	f := newFixture(t, Capabilities{SynchronousFilename: false}, opts)
	f.expectTabAndCookies()

	item := download(5)
	item.TotalBytes = 10
	f.bg.OnDownloadCreated(context.Background(), item)
	require.Zero(t, f.bg.InflightCount())
}

func TestBackground_AsynchronousFilename_RejectedOnceNamed(t *testing.T) {
	opts := captureOptions()
	opts.ExcludedFileTypes = []string{".iso"}
	f := newFixture(t, Capabilities{SynchronousFilename: false}, opts)
	f.expectTabAndCookies()
	ctx := context.Background()

	item := download(4)
	item.EffectiveURL = "https://example.com/download?id=4"
	item.Filename = ""
	f.bg.OnDownloadCreated(ctx, item)
	require.Equal(t, 1, f.bg.InflightCount())

	f.bg.OnDownloadChanged(ctx, models.DownloadDelta{ID: 4, FilenamePrevious: "", FilenameCurrent: "/tmp/image.iso"})
	require.Zero(t, f.bg.InflightCount())
}

func TestBackground_RunAlarm_EvictsStaleInflight(t *testing.T) {
	f := newFixture(t, Capabilities{SynchronousFilename: false}, captureOptions())
	f.expectTabAndCookies()
	ctx := context.Background()

	f.bg.OnDownloadCreated(ctx, download(1))
	f.clock = f.clock.Add(30 * time.Second)
	f.bg.OnDownloadCreated(ctx, download(2))
	require.Equal(t, 2, f.bg.InflightCount())

	f.conns["home"].EXPECT().GetGlobalStat(gomock.Any()).Return(&models.GlobalStat{}, nil).AnyTimes()
	f.platform.EXPECT().SetBadgeText(gomock.Any(), "").Return(nil).AnyTimes()
	f.platform.EXPECT().SetBadgeBackgroundColor(gomock.Any(), BadgeColor).Return(nil).AnyTimes()

	f.clock = f.clock.Add(45 * time.Second)
	f.bg.RunAlarm(ctx)
	require.Equal(t, 1, f.bg.InflightCount())

	f.clock = f.clock.Add(time.Minute)
	f.bg.OnAlarm(ctx, AlarmName)
	require.Zero(t, f.bg.InflightCount())
}

func TestBackground_RunAlarm_Badge(t *testing.T) {
	tests := []struct {
		name  string
		stats map[string]*models.GlobalStat
		fail  string
		want  string
	}{
		{
			name:  "sum of active tasks",
			stats: map[string]*models.GlobalStat{"a": {NumActive: 2}, "b": {NumActive: 3}},
			want:  "5",
		},
		{
			name:  "zero clears the badge",
			stats: map[string]*models.GlobalStat{"a": {NumActive: 0}, "b": {NumActive: 0}},
			want:  "",
		},
		{
			name:  "unreachable server is skipped",
			stats: map[string]*models.GlobalStat{"a": {NumActive: 4}},
			fail:  "b",
			want:  "4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := models.DefaultExtensionOptions().WithServer(server("a", "A")).WithServer(server("b", "B"))
			f := newFixture(t, Capabilities{}, opts)

			for id, stat := range tt.stats {
				f.conns[id].EXPECT().GetGlobalStat(gomock.Any()).Return(stat, nil)
			}
			if tt.fail != "" {
				f.conns[tt.fail].EXPECT().GetGlobalStat(gomock.Any()).Return(nil, errors.New("connection refused"))
			}
			f.platform.EXPECT().SetBadgeText(gomock.Any(), tt.want).Return(nil)
			f.platform.EXPECT().SetBadgeBackgroundColor(gomock.Any(), BadgeColor).Return(nil)

			f.bg.RunAlarm(context.Background())
		})
	}
}

func TestBackground_OnAlarm_IgnoresOtherAlarms(t *testing.T) {
	f := newFixture(t, Capabilities{}, models.DefaultExtensionOptions())
	f.bg.OnAlarm(context.Background(), "something-else")
}

func TestBadgeText(t *testing.T) {
	require.Equal(t, "", BadgeText(0))
	require.Equal(t, "1", BadgeText(1))
	require.Equal(t, "42", BadgeText(42))
}

func TestBackground_OnMenuClicked(t *testing.T) {
	opts := models.DefaultExtensionOptions().WithServer(server("a", "A")).WithServer(server("b", "B"))
	opts.DefaultFolder = "/data"
	f := newFixture(t, Capabilities{}, opts)

	f.platform.EXPECT().GetCookies(gomock.Any(), "https://page.example.com/", "").
		Return([]models.Cookie{{Name: "k", Value: "v"}}, nil)
	for _, url := range []string{"https://example.com/1.zip", "https://example.com/2.zip"} {
		f.conns["b"].EXPECT().AddURI(gomock.Any(), []string{url}, aria2.Options{
			"header": []string{"Referer: https://page.example.com/", "Cookie: k=v;"},
			"dir":    "/data",
		}).Return("gid", nil)
	}
	f.platform.EXPECT().Notify(gomock.Any(), messages.NotificationTitle, messages.Get(messages.AddURLSuccess, "B")).Return(nil).Times(2)

	f.bg.OnMenuClicked(context.Background(), models.MenuClick{
		MenuItemID:    "b",
		SelectionText: "https://example.com/1.zip\nhttps://example.com/2.zip",
		Tab:           &models.Tab{URL: "https://page.example.com/"},
	})
}

func TestBackground_OnMenuClicked_Error(t *testing.T) {
	f := newFixture(t, Capabilities{}, captureOptions())

	f.conns["home"].EXPECT().AddURI(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("connection refused"))
	f.platform.EXPECT().Notify(gomock.Any(), messages.NotificationTitle, messages.Get(messages.AddURLError, "Home")).Return(nil)

	f.bg.OnMenuClicked(context.Background(), models.MenuClick{MenuItemID: "home", LinkURL: "https://example.com/f.zip"})
}

func TestBackground_OnMenuClicked_UnknownServer(t *testing.T) {
	f := newFixture(t, Capabilities{}, captureOptions())
	f.bg.OnMenuClicked(context.Background(), models.MenuClick{MenuItemID: MenuParentID, LinkURL: "https://example.com/f.zip"})
}

func TestBackground_FolderPicker(t *testing.T) {
	opts := captureOptions()
	opts.AskForFolderOnDownload = true
	opts.DefaultFolder = "/ignored"
	f := newFixture(t, Capabilities{}, opts)
	ctx := context.Background()

	f.platform.EXPECT().GetCookies(gomock.Any(), "https://page.example.com/", "").Return(nil, nil)
	f.platform.EXPECT().OpenFolderPicker(gomock.Any()).Return(nil)

	f.bg.OnMenuClicked(ctx, models.MenuClick{
		MenuItemID: "home",
		LinkURL:    "https://example.com/f.zip",
		Tab:        &models.Tab{URL: "https://page.example.com/"},
	})

	f.conns["home"].EXPECT().AddURI(gomock.Any(), []string{"https://example.com/f.zip"}, aria2.Options{
		"header": []string{"Referer: https://page.example.com/", "Cookie: "},
		"dir":    "/chosen",
	}).Return("gid", nil)
	f.platform.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	f.bg.OnFolderPickerResponse(ctx, models.FolderPickerResponse{Folder: "/chosen"})

	pending, err := f.store.TakePendingDownload()
	require.NoError(t, err)
	require.Nil(t, pending)
}

func TestBackground_FolderPicker_Cancelled(t *testing.T) {
	f := newFixture(t, Capabilities{}, captureOptions())
	require.NoError(t, f.store.SavePendingDownload(models.PendingDownload{
		ServerID: "home",
		URLs:     []string{"https://example.com/f.zip"},
	}))

	f.bg.OnFolderPickerResponse(context.Background(), models.FolderPickerResponse{Cancelled: true})

	pending, err := f.store.TakePendingDownload()
	require.NoError(t, err)
	require.Nil(t, pending)
}

func TestBackground_FolderPicker_NoPending(t *testing.T) {
	f := newFixture(t, Capabilities{}, captureOptions())
	f.bg.OnFolderPickerResponse(context.Background(), models.FolderPickerResponse{Folder: "/chosen"})
}

func TestBackground_CaptureSelection(t *testing.T) {
	opts := models.DefaultExtensionOptions().WithServer(server("b", "B")).WithServer(server("a", "A"))
	f := newFixture(t, Capabilities{}, opts)

	f.platform.EXPECT().ActiveTab(gomock.Any()).Return(&models.Tab{URL: "https://page.example.com/"}, nil)
	f.platform.EXPECT().GetCookies(gomock.Any(), "https://page.example.com/", "").Return(nil, nil)
	f.conns["a"].EXPECT().AddURI(gomock.Any(), []string{"https://example.com/f.zip"}, gomock.Any()).Return("gid", nil)
	f.platform.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	f.bg.CaptureSelection(context.Background(), models.MenuClick{LinkURL: "https://example.com/f.zip"})
}

func TestBackground_OnCommand_OpenPopup(t *testing.T) {
	f := newFixture(t, Capabilities{}, models.DefaultExtensionOptions())
	f.platform.EXPECT().OpenPopup(gomock.Any()).Return(nil)

	f.bg.OnCommand(context.Background(), CommandOpenPopup)
	f.bg.OnCommand(context.Background(), "unknown")
}

func TestBackground_OnCommand_ToggleCapture(t *testing.T) {
	t.Run("no server", func(t *testing.T) {
		f := newFixture(t, Capabilities{}, models.DefaultExtensionOptions())
		f.platform.EXPECT().Notify(gomock.Any(), messages.NotificationTitle, messages.Get(messages.ToggleCaptureDownloadsNoServer)).Return(nil)

		f.bg.OnCommand(context.Background(), CommandToggleCaptureDownloads)

		opts, err := f.store.Load()
		require.NoError(t, err)
		require.False(t, opts.CaptureDownloads)
		require.Empty(t, opts.CaptureServer)
	})

	t.Run("enables on first server then disables", func(t *testing.T) {
		opts := models.DefaultExtensionOptions().WithServer(server("b", "B")).WithServer(server("a", "A"))
		f := newFixture(t, Capabilities{}, opts)
		ctx := context.Background()

		f.platform.EXPECT().Notify(gomock.Any(), messages.NotificationTitle, messages.Get(messages.ToggleCaptureDownloadsEnabled, "A")).Return(nil)
		f.bg.OnCommand(ctx, CommandToggleCaptureDownloads)

		loaded, err := f.store.Load()
		require.NoError(t, err)
		require.True(t, loaded.CaptureDownloads)
		require.Equal(t, "a", loaded.CaptureServer)

		f.platform.EXPECT().Notify(gomock.Any(), messages.NotificationTitle, messages.Get(messages.ToggleCaptureDownloadsDisabled)).Return(nil)
		f.bg.OnCommand(ctx, CommandToggleCaptureDownloads)

		loaded, err = f.store.Load()
		require.NoError(t, err)
		require.False(t, loaded.CaptureDownloads)
	})
}
