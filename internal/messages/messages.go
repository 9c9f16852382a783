// Package messages holds the user-facing strings shown in notifications and
// menus
package messages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys
const (
	ContextMenusTitle              = "contextMenusTitle"
	AddURLSuccess                  = "addUrlSuccess"
	AddURLError                    = "addUrlError"
	AddFileSuccess                 = "addFileSuccess"
	AddFileError                   = "addFileError"
	ToggleCaptureDownloadsNoServer = "toggleCaptureDownloadsNoServer"
	ToggleCaptureDownloadsEnabled  = "toggleCaptureDownloadsEnabled"
	ToggleCaptureDownloadsDisabled = "toggleCaptureDownloadsDisabled"
)

// NotificationTitle is the title of every notification
const NotificationTitle = "Aria2"

var english = map[string]string{
	ContextMenusTitle:              "Download with Aria2",
	AddURLSuccess:                  "The URL has been added to %s",
	AddURLError:                    "An error occurred while adding the URL to %s",
	AddFileSuccess:                 "The file has been added to %s",
	AddFileError:                   "An error occurred while adding the file to %s",
	ToggleCaptureDownloadsNoServer: "No server is configured, capture of downloads cannot be enabled",
	ToggleCaptureDownloadsEnabled:  "Capture of downloads enabled on %s",
	ToggleCaptureDownloadsDisabled: "Capture of downloads disabled",
}

var printer *message.Printer

func init() {
	for key, msg := range english {
		if err := message.SetString(language.English, key, msg); err != nil {
			panic(err)
		}
	}
	printer = message.NewPrinter(language.English)
}

// Get renders the message registered under key with args. Unknown keys are
// rendered as is.
func Get(key string, args ...any) string {
	return printer.Sprintf(key, args...)
}
