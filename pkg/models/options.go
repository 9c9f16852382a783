package models

import (
	"sort"
)

// ExtensionOptions is the persisted settings aggregate. Values are treated as
// immutable: every With* method returns a modified copy.
type ExtensionOptions struct {
	Servers                map[string]Server `json:"servers"`
	CaptureServer          string            `json:"captureServer"`
	CaptureDownloads       bool              `json:"captureDownloads"`
	MinFileSizeInBytes     int64             `json:"minFileSizeInBytes"`
	ExcludedProtocols      []string          `json:"excludedProtocols"`
	ExcludedSites          []string          `json:"excludedSites"`
	ExcludedFileTypes      []string          `json:"excludedFileTypes"`
	UseCompleteFilePath    bool              `json:"useCompleteFilePath"`
	NotifyURLIsAdded       bool              `json:"notifyUrlIsAdded"`
	NotifyFileIsAdded      bool              `json:"notifyFileIsAdded"`
	NotifyErrorOccurs      bool              `json:"notifyErrorOccurs"`
	Theme                  Theme             `json:"theme"`
	FolderPresets          []FolderPreset    `json:"folderPresets"`
	AskForFolderOnDownload bool              `json:"askForFolderOnDownload"`
	DefaultFolder          string            `json:"defaultFolder"`
}

// DefaultExtensionOptions returns the settings used on first run
func DefaultExtensionOptions() *ExtensionOptions {
	return &ExtensionOptions{
		Servers:           map[string]Server{},
		ExcludedProtocols: []string{},
		ExcludedSites:     []string{},
		ExcludedFileTypes: []string{},
		NotifyURLIsAdded:  true,
		NotifyFileIsAdded: true,
		NotifyErrorOccurs: true,
		Theme:             ThemeAuto,
		FolderPresets:     []FolderPreset{},
	}
}

// Clone returns a deep copy of o
func (o *ExtensionOptions) Clone() *ExtensionOptions {
	c := *o
	c.Servers = make(map[string]Server, len(o.Servers))
	for id, server := range o.Servers {
		c.Servers[id] = server.Clone()
	}
	c.ExcludedProtocols = append([]string{}, o.ExcludedProtocols...)
	c.ExcludedSites = append([]string{}, o.ExcludedSites...)
	c.ExcludedFileTypes = append([]string{}, o.ExcludedFileTypes...)
	c.FolderPresets = append([]FolderPreset{}, o.FolderPresets...)
	return &c
}

// Normalize enforces the capture target invariant: a target must name a
// configured server, and a disabled capture has no target.
func (o *ExtensionOptions) Normalize() *ExtensionOptions {
	c := o.Clone()
	if c.CaptureServer != "" {
		if _, ok := c.Servers[c.CaptureServer]; !ok {
			c.CaptureServer = ""
			c.CaptureDownloads = false
		}
	}
	if !c.CaptureDownloads || c.CaptureServer == "" {
		c.CaptureServer = ""
		c.CaptureDownloads = false
	}
	c.Theme = c.Theme.OrDefault()
	return c
}

// ServerIDs returns the configured server ids in a stable order
func (o *ExtensionOptions) ServerIDs() []string {
	ids := make([]string, 0, len(o.Servers))
	for id := range o.Servers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WithServer adds or replaces a server keyed by its id
func (o *ExtensionOptions) WithServer(server Server) *ExtensionOptions {
	c := o.Clone()
	c.Servers[server.ID] = server.Clone()
	return c
}

// WithoutServer removes the server with the given id. Removing the capture
// target also turns capture off.
func (o *ExtensionOptions) WithoutServer(id string) *ExtensionOptions {
	c := o.Clone()
	delete(c.Servers, id)
	if c.CaptureServer == id {
		c.CaptureServer = ""
		c.CaptureDownloads = false
	}
	return c
}

// WithCapture sets the capture toggle and its target server
func (o *ExtensionOptions) WithCapture(enabled bool, serverID string) *ExtensionOptions {
	c := o.Clone()
	c.CaptureDownloads = enabled
	c.CaptureServer = serverID
	if !enabled {
		c.CaptureServer = ""
	}
	return c
}

// WithFolderPreset appends a preset
func (o *ExtensionOptions) WithFolderPreset(preset FolderPreset) *ExtensionOptions {
	c := o.Clone()
	c.FolderPresets = append(c.FolderPresets, preset)
	return c
}

// WithUpdatedFolderPreset replaces the preset sharing preset.ID. Unknown ids
// leave the list untouched.
func (o *ExtensionOptions) WithUpdatedFolderPreset(preset FolderPreset) *ExtensionOptions {
	c := o.Clone()
	for i := range c.FolderPresets {
		if c.FolderPresets[i].ID == preset.ID {
			c.FolderPresets[i] = preset
		}
	}
	return c
}

// WithoutFolderPreset drops the preset with the given id
func (o *ExtensionOptions) WithoutFolderPreset(id string) *ExtensionOptions {
	c := o.Clone()
	presets := c.FolderPresets[:0]
	for _, p := range c.FolderPresets {
		if p.ID != id {
			presets = append(presets, p)
		}
	}
	c.FolderPresets = presets
	return c
}
