package models

// MenuContexts are the page contexts the capture menu entries appear in
var MenuContexts = []string{"link", "selection"}

// MenuClick describes a context menu click
type MenuClick struct {
	MenuItemID    string `json:"menuItemId"`
	LinkURL       string `json:"linkUrl,omitempty"`
	SelectionText string `json:"selectionText,omitempty"`
	Tab           *Tab   `json:"tab,omitempty"`
}

// MenuItem is a context menu entry to create
type MenuItem struct {
	ID       string   `json:"id"`
	ParentID string   `json:"parentId,omitempty"`
	Title    string   `json:"title"`
	Contexts []string `json:"contexts"`
}

// Tab is the subset of a browser tab the background needs
type Tab struct {
	URL           string `json:"url"`
	CookieStoreID string `json:"cookieStoreId,omitempty"`
}

// Cookie is a name/value pair read from the browser cookie jar
type Cookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
