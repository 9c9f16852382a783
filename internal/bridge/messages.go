package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message types
const (
	TypeEvent  = "event"
	TypeCall   = "call"
	TypeResult = "result"
)

// Events sent by the browser shim
const (
	EventInstalled            = "runtime.onInstalled"
	EventDownloadCreated      = "downloads.onCreated"
	EventDownloadChanged      = "downloads.onChanged"
	EventMenuClicked          = "contextMenus.onClicked"
	EventCommand              = "commands.onCommand"
	EventCaptureSelection     = "capture.selection"
	EventFolderPickerResponse = "folderPicker.response"
)

// Calls answered by the browser shim
const (
	CallCancelDownload          = "downloads.cancel"
	CallRemoveDownloadFile      = "downloads.removeFile"
	CallEraseDownload           = "downloads.erase"
	CallRemoveAllMenus          = "contextMenus.removeAll"
	CallCreateMenu              = "contextMenus.create"
	CallNotify                  = "notifications.create"
	CallSetBadgeText            = "action.setBadgeText"
	CallSetBadgeBackgroundColor = "action.setBadgeBackgroundColor"
	CallOpenPopup               = "action.openPopup"
	CallActiveTab               = "tabs.queryActive"
	CallGetCookies              = "cookies.getAll"
	CallOpenFolderPicker        = "windows.openFolderPicker"
	CallOpenOptionsPage         = "runtime.openOptionsPage"
)

// ErrNotConnected is returned by calls made while no shim is attached
var ErrNotConnected = errors.New("browser shim not connected")

// Message is the envelope exchanged with the shim
type Message struct {
	Type  string          `json:"type"`
	ID    uint64          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// CallError is a failure reported by the shim for a call
type CallError struct {
	Name    string
	Message string
}

// Error implements the error interface for CallError
func (e *CallError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Name, e.Message)
}

type downloadArgs struct {
	ID int `json:"id"`
}

type notificationArgs struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type badgeTextArgs struct {
	Text string `json:"text"`
}

type badgeColorArgs struct {
	Color string `json:"color"`
}

type cookiesArgs struct {
	URL     string `json:"url"`
	StoreID string `json:"storeId,omitempty"`
}

type installedEvent struct {
	Reason string `json:"reason"`
}

type commandEvent struct {
	Command string `json:"command"`
}
