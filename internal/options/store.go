// Package options persists the extension settings as a single JSON blob
package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"aria2-integration/internal/database"
	"aria2-integration/pkg/models"
)

const (
	// OptionsKey is the sync storage key holding the settings blob
	OptionsKey = "options"
	// PendingDownloadKey is the local storage key of the folder picker hand-off
	PendingDownloadKey = "pendingDownload"
)

// ErrNoServers is returned when capture is enabled without any configured server
var ErrNoServers = errors.New("no server configured")

// Storage is the key/value persistence used by the store
type Storage interface {
	Get(area database.Area, key string) (string, bool, error)
	Set(area database.Area, key, value string) error
	Remove(area database.Area, key string) error
	Keys(area database.Area) ([]string, error)
	Subscribe() (<-chan database.Change, func())
}

// Store reads and writes ExtensionOptions. Every mutation is a full
// read-modify-write of the blob and returns the newly persisted value.
type Store struct {
	storage Storage
	logger  *slog.Logger
}

// NewStore creates a store on top of storage
func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		logger:  slog.Default(),
	}
}

// Load returns the persisted settings. Missing records yield defaults, and
// fields absent from older records keep their default values.
func (s *Store) Load() (*models.ExtensionOptions, error) {
	blob, ok, err := s.storage.Get(database.AreaSync, OptionsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	if !ok {
		return models.DefaultExtensionOptions(), nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &fields); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}

	opts := models.DefaultExtensionOptions()
	if err := json.Unmarshal([]byte(blob), opts); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	fillNil(opts)

	if _, hasServers := fields["servers"]; !hasServers {
		s.removeLegacyKeys()
	}

	return opts, nil
}

// fillNil replaces explicit JSON nulls with empty collections
func fillNil(opts *models.ExtensionOptions) {
	if opts.Servers == nil {
		opts.Servers = map[string]models.Server{}
	}
	if opts.ExcludedProtocols == nil {
		opts.ExcludedProtocols = []string{}
	}
	if opts.ExcludedSites == nil {
		opts.ExcludedSites = []string{}
	}
	if opts.ExcludedFileTypes == nil {
		opts.ExcludedFileTypes = []string{}
	}
	if opts.FolderPresets == nil {
		opts.FolderPresets = []models.FolderPreset{}
	}
	for id, server := range opts.Servers {
		if server.RPCParameters == nil {
			server.RPCParameters = map[string]string{}
			opts.Servers[id] = server
		}
	}
}

// removeLegacyKeys drops the one-record-per-server layout of old versions
func (s *Store) removeLegacyKeys() {
	keys, err := s.storage.Keys(database.AreaSync)
	if err != nil {
		s.logger.Warn("Failed to list legacy storage keys", "error", err)
		return
	}
	for _, key := range keys {
		if key == OptionsKey {
			continue
		}
		if err := s.storage.Remove(database.AreaSync, key); err != nil {
			s.logger.Warn("Failed to remove legacy storage key", "key", key, "error", err)
		}
	}
}

// Save normalises and persists opts, returning the stored value
func (s *Store) Save(opts *models.ExtensionOptions) (*models.ExtensionOptions, error) {
	normalized := opts.Normalize()

	blob, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options: %w", err)
	}

	if err := s.storage.Set(database.AreaSync, OptionsKey, string(blob)); err != nil {
		return nil, fmt.Errorf("failed to save options: %w", err)
	}

	return normalized, nil
}

// Update loads the current settings, applies fn and saves the result
func (s *Store) Update(fn func(*models.ExtensionOptions) (*models.ExtensionOptions, error)) (*models.ExtensionOptions, error) {
	current, err := s.Load()
	if err != nil {
		return nil, err
	}
	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	return s.Save(next)
}

// AddServer adds or replaces server
func (s *Store) AddServer(server models.Server) (*models.ExtensionOptions, error) {
	return s.Update(func(o *models.ExtensionOptions) (*models.ExtensionOptions, error) {
		return o.WithServer(server), nil
	})
}

// DeleteServer removes the server with id. Deleting the capture target turns
// capture off.
func (s *Store) DeleteServer(id string) (*models.ExtensionOptions, error) {
	return s.Update(func(o *models.ExtensionOptions) (*models.ExtensionOptions, error) {
		return o.WithoutServer(id), nil
	})
}

// AddFolderPreset appends preset
func (s *Store) AddFolderPreset(preset models.FolderPreset) (*models.ExtensionOptions, error) {
	return s.Update(func(o *models.ExtensionOptions) (*models.ExtensionOptions, error) {
		return o.WithFolderPreset(preset), nil
	})
}

// UpdateFolderPreset replaces the preset with the same id, if any
func (s *Store) UpdateFolderPreset(preset models.FolderPreset) (*models.ExtensionOptions, error) {
	return s.Update(func(o *models.ExtensionOptions) (*models.ExtensionOptions, error) {
		return o.WithUpdatedFolderPreset(preset), nil
	})
}

// DeleteFolderPreset removes the preset with id, if any
func (s *Store) DeleteFolderPreset(id string) (*models.ExtensionOptions, error) {
	return s.Update(func(o *models.ExtensionOptions) (*models.ExtensionOptions, error) {
		return o.WithoutFolderPreset(id), nil
	})
}

// ToggleCapture flips the capture toggle. Enabling without a target picks
// the first configured server; with no servers it fails with ErrNoServers
// and leaves the settings untouched.
func (s *Store) ToggleCapture() (*models.ExtensionOptions, error) {
	return s.Update(func(o *models.ExtensionOptions) (*models.ExtensionOptions, error) {
		enable := !o.CaptureDownloads
		target := o.CaptureServer
		if target == "" {
			ids := o.ServerIDs()
			if len(ids) == 0 {
				return nil, ErrNoServers
			}
			target = ids[0]
		}
		return o.WithCapture(enable, target), nil
	})
}

// SavePendingDownload stores the descriptor awaiting a folder choice
func (s *Store) SavePendingDownload(pending models.PendingDownload) error {
	blob, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to encode pending download: %w", err)
	}
	if err := s.storage.Set(database.AreaLocal, PendingDownloadKey, string(blob)); err != nil {
		return fmt.Errorf("failed to save pending download: %w", err)
	}
	return nil
}

// TakePendingDownload returns and clears the pending descriptor. It returns
// nil when there is none.
func (s *Store) TakePendingDownload() (*models.PendingDownload, error) {
	blob, ok, err := s.storage.Get(database.AreaLocal, PendingDownloadKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending download: %w", err)
	}
	if !ok {
		return nil, nil
	}

	if err := s.storage.Remove(database.AreaLocal, PendingDownloadKey); err != nil {
		return nil, fmt.Errorf("failed to clear pending download: %w", err)
	}

	var pending models.PendingDownload
	if err := json.Unmarshal([]byte(blob), &pending); err != nil {
		return nil, fmt.Errorf("failed to decode pending download: %w", err)
	}
	return &pending, nil
}

// Changes returns a channel that receives a value each time the settings
// blob is written. The returned function stops the subscription.
func (s *Store) Changes() (<-chan struct{}, func()) {
	changes, cancel := s.storage.Subscribe()
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)
		for change := range changes {
			if change.Area != database.AreaSync || change.Key != OptionsKey {
				continue
			}
			select {
			case out <- struct{}{}:
			default:
				// a reload is already pending and will observe this write
			}
		}
	}()

	return out, cancel
}
