package background

import (
	"context"

	"aria2-integration/internal/aria2"
	"aria2-integration/pkg/models"
)

// Platform defines the browser operations used by the background
//
//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks
type Platform interface {
	// Native download operations
	CancelDownload(ctx context.Context, id int) error
	RemoveDownloadFile(ctx context.Context, id int) error
	EraseDownload(ctx context.Context, id int) error

	// Context menu operations
	RemoveAllMenus(ctx context.Context) error
	CreateMenu(ctx context.Context, item models.MenuItem) error

	// Toolbar and notifications
	Notify(ctx context.Context, title, message string) error
	SetBadgeText(ctx context.Context, text string) error
	SetBadgeBackgroundColor(ctx context.Context, color string) error

	// Tabs and cookies
	ActiveTab(ctx context.Context) (*models.Tab, error)
	GetCookies(ctx context.Context, url, storeID string) ([]models.Cookie, error)

	// Windows
	OpenFolderPicker(ctx context.Context) error
	OpenOptionsPage(ctx context.Context) error
	OpenPopup(ctx context.Context) error
}

// ConnFactory opens the RPC connection of a server
type ConnFactory func(server models.Server) aria2.Conn

// Capabilities describes what the hosting browser offers
type Capabilities struct {
	// SynchronousFilename is set when a new download already carries its
	// final file name. Otherwise the capture waits for the name to be
	// determined by a later change event.
	SynchronousFilename bool
}
