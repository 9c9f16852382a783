package models

import "github.com/google/uuid"

// FolderPreset is a named destination directory offered by the folder picker
type FolderPreset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// NewFolderPreset creates a preset with a fresh id
func NewFolderPreset(name, path string) FolderPreset {
	return FolderPreset{
		ID:   uuid.NewString(),
		Name: name,
		Path: path,
	}
}
