package bridge

import (
	"context"

	"aria2-integration/internal/background"
	"aria2-integration/pkg/models"
)

var _ background.Platform = (*Server)(nil)

func (s *Server) CancelDownload(ctx context.Context, id int) error {
	return s.call(ctx, CallCancelDownload, downloadArgs{ID: id}, nil)
}

func (s *Server) RemoveDownloadFile(ctx context.Context, id int) error {
	return s.call(ctx, CallRemoveDownloadFile, downloadArgs{ID: id}, nil)
}

func (s *Server) EraseDownload(ctx context.Context, id int) error {
	return s.call(ctx, CallEraseDownload, downloadArgs{ID: id}, nil)
}

func (s *Server) RemoveAllMenus(ctx context.Context) error {
	return s.call(ctx, CallRemoveAllMenus, nil, nil)
}

func (s *Server) CreateMenu(ctx context.Context, item models.MenuItem) error {
	return s.call(ctx, CallCreateMenu, item, nil)
}

func (s *Server) Notify(ctx context.Context, title, message string) error {
	return s.call(ctx, CallNotify, notificationArgs{Title: title, Message: message}, nil)
}

func (s *Server) SetBadgeText(ctx context.Context, text string) error {
	return s.call(ctx, CallSetBadgeText, badgeTextArgs{Text: text}, nil)
}

func (s *Server) SetBadgeBackgroundColor(ctx context.Context, color string) error {
	return s.call(ctx, CallSetBadgeBackgroundColor, badgeColorArgs{Color: color}, nil)
}

// ActiveTab returns nil when no tab is active
func (s *Server) ActiveTab(ctx context.Context) (*models.Tab, error) {
	var tab *models.Tab
	if err := s.call(ctx, CallActiveTab, nil, &tab); err != nil {
		return nil, err
	}
	return tab, nil
}

func (s *Server) GetCookies(ctx context.Context, url, storeID string) ([]models.Cookie, error) {
	var cookies []models.Cookie
	if err := s.call(ctx, CallGetCookies, cookiesArgs{URL: url, StoreID: storeID}, &cookies); err != nil {
		return nil, err
	}
	return cookies, nil
}

func (s *Server) OpenFolderPicker(ctx context.Context) error {
	return s.call(ctx, CallOpenFolderPicker, nil, nil)
}

func (s *Server) OpenOptionsPage(ctx context.Context) error {
	return s.call(ctx, CallOpenOptionsPage, nil, nil)
}

func (s *Server) OpenPopup(ctx context.Context) error {
	return s.call(ctx, CallOpenPopup, nil, nil)
}
