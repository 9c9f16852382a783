// Package bridge connects the background to the browser through a WebSocket
// shim: browser events come in, platform calls go out.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"aria2-integration/pkg/models"

	"github.com/gorilla/websocket"
)

// callTimeout bounds the wait for a shim answer
const callTimeout = 30 * time.Second

// Handler receives the browser events
type Handler interface {
	OnOptionsChanged(ctx context.Context)
	OnInstalled(ctx context.Context, reason string)
	OnDownloadCreated(ctx context.Context, item models.DownloadItem)
	OnDownloadChanged(ctx context.Context, delta models.DownloadDelta)
	OnMenuClicked(ctx context.Context, click models.MenuClick)
	OnCommand(ctx context.Context, command string)
	CaptureSelection(ctx context.Context, click models.MenuClick)
	OnFolderPickerResponse(ctx context.Context, resp models.FolderPickerResponse)
}

// shim is one attached browser connection
type shim struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	done    chan struct{}
}

func (c *shim) write(msg Message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Server represents the bridge HTTP server
type Server struct {
	server   *http.Server
	upgrader websocket.Upgrader
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	handlerMu sync.RWMutex
	handler   Handler

	mu      sync.RWMutex
	current *shim

	nextID    atomic.Uint64
	pendingMu sync.Mutex
	pending   map[uint64]chan Message
}

// NewServer creates a bridge listening on addr
func NewServer(addr string) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		logger:  slog.Default(),
		ctx:     ctx,
		cancel:  cancel,
		pending: make(map[uint64]chan Message),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r.Header.Get("Origin"))
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.HandleWebSocket)
	mux.HandleFunc("GET /healthz", s.Health)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// originAllowed accepts extension pages and non-browser clients
func originAllowed(origin string) bool {
	return origin == "" ||
		strings.HasPrefix(origin, "moz-extension://") ||
		strings.HasPrefix(origin, "chrome-extension://")
}

// SetHandler sets the receiver of browser events
func (s *Server) SetHandler(h Handler) {
	s.handlerMu.Lock()
	defer s.handlerMu.Unlock()
	s.handler = h
}

func (s *Server) eventHandler() Handler {
	s.handlerMu.RLock()
	defer s.handlerMu.RUnlock()
	return s.handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting bridge server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server and drops the shim
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down bridge server")
	s.cancel()

	s.mu.Lock()
	if s.current != nil {
		s.current.conn.Close()
	}
	s.mu.Unlock()

	return s.server.Shutdown(ctx)
}

// Connected reports whether a shim is attached
func (s *Server) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Health reports whether a shim is attached
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]bool{"connected": s.Connected()}); err != nil {
		s.logger.Error("Failed to encode health response", "error", err)
	}
}

// HandleWebSocket attaches a shim. A new shim replaces the previous one.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}

	c := &shim{conn: conn, done: make(chan struct{})}

	s.mu.Lock()
	previous := s.current
	s.current = c
	s.mu.Unlock()
	if previous != nil {
		s.logger.Info("Replacing attached browser shim")
		previous.conn.Close()
	}

	s.logger.Info("Browser shim attached", "remote", r.RemoteAddr)

	// menus live in the browser and must be recreated for every shim
	if h := s.eventHandler(); h != nil {
		go h.OnOptionsChanged(s.ctx)
	}

	s.readLoop(c)
}

func (s *Server) readLoop(c *shim) {
	defer func() {
		close(c.done)
		c.conn.Close()

		s.mu.Lock()
		if s.current == c {
			s.current = nil
		}
		s.mu.Unlock()
		s.logger.Info("Browser shim detached")
	}()

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("Browser shim read failed", "error", err)
			}
			return
		}

		switch msg.Type {
		case TypeEvent:
			go s.dispatchEvent(s.ctx, msg)
		case TypeResult:
			s.resolve(msg)
		default:
			s.logger.Warn("Unknown message type", "type", msg.Type)
		}
	}
}

func (s *Server) resolve(msg Message) {
	s.pendingMu.Lock()
	ch, ok := s.pending[msg.ID]
	delete(s.pending, msg.ID)
	s.pendingMu.Unlock()

	if !ok {
		s.logger.Debug("Result for unknown call", "id", msg.ID)
		return
	}
	ch <- msg
}

// dispatchEvent decodes an event and hands it to the handler
func (s *Server) dispatchEvent(ctx context.Context, msg Message) {
	h := s.eventHandler()
	if h == nil {
		s.logger.Warn("Event dropped, no handler", "name", msg.Name)
		return
	}

	var err error
	switch msg.Name {
	case EventInstalled:
		var ev installedEvent
		if err = decodeData(msg.Data, &ev); err == nil {
			h.OnInstalled(ctx, ev.Reason)
		}
	case EventDownloadCreated:
		var raw models.RawDownloadItem
		if err = decodeData(msg.Data, &raw); err == nil {
			h.OnDownloadCreated(ctx, raw.Normalize())
		}
	case EventDownloadChanged:
		var delta models.DownloadDelta
		if err = decodeData(msg.Data, &delta); err == nil {
			h.OnDownloadChanged(ctx, delta)
		}
	case EventMenuClicked:
		var click models.MenuClick
		if err = decodeData(msg.Data, &click); err == nil {
			h.OnMenuClicked(ctx, click)
		}
	case EventCommand:
		var ev commandEvent
		if err = decodeData(msg.Data, &ev); err == nil {
			h.OnCommand(ctx, ev.Command)
		}
	case EventCaptureSelection:
		var click models.MenuClick
		if err = decodeData(msg.Data, &click); err == nil {
			h.CaptureSelection(ctx, click)
		}
	case EventFolderPickerResponse:
		var resp models.FolderPickerResponse
		if err = decodeData(msg.Data, &resp); err == nil {
			h.OnFolderPickerResponse(ctx, resp)
		}
	default:
		s.logger.Warn("Unknown event", "name", msg.Name)
		return
	}

	if err != nil {
		s.logger.Warn("Malformed event", "name", msg.Name, "error", err)
	}
}

func decodeData(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// call sends a platform call to the shim and decodes the answer into out
// when out is not nil
func (s *Server) call(ctx context.Context, name string, args any, out any) error {
	s.mu.RLock()
	c := s.current
	s.mu.RUnlock()
	if c == nil {
		return ErrNotConnected
	}

	msg := Message{Type: TypeCall, ID: s.nextID.Add(1), Name: name}
	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			return fmt.Errorf("failed to encode %s arguments: %w", name, err)
		}
		msg.Data = data
	}

	ch := make(chan Message, 1)
	s.pendingMu.Lock()
	s.pending[msg.ID] = ch
	s.pendingMu.Unlock()
	defer func() {
		s.pendingMu.Lock()
		delete(s.pending, msg.ID)
		s.pendingMu.Unlock()
	}()

	if err := c.write(msg); err != nil {
		return fmt.Errorf("failed to send %s: %w", name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var result Message
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", name, ctx.Err())
	case <-c.done:
		return ErrNotConnected
	case result = <-ch:
	}

	if result.Error != "" {
		return &CallError{Name: name, Message: result.Error}
	}
	if out == nil || len(result.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(result.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", name, err)
	}
	return nil
}
