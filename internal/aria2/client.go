// Package aria2 provides a JSON-RPC client for the aria2 download daemon
package aria2

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"aria2-integration/pkg/models"
)

// Options is the trailing options object of add* calls
type Options map[string]any

// RPCError is an error object returned by the daemon
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface for RPCError
func (e *RPCError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// TaskLists groups the three task queues of a daemon
type TaskLists struct {
	Active  []models.Task
	Waiting []models.Task
	Stopped []models.Task
}

// Conn defines the daemon operations used by the rest of the application
//
//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks
type Conn interface {
	AddURI(ctx context.Context, uris []string, options Options) (string, error)
	AddTorrent(ctx context.Context, torrent string, uris []string, options Options) (string, error)
	AddMetalink(ctx context.Context, metalink string, uris []string, options Options) ([]string, error)
	Pause(ctx context.Context, gid string) (string, error)
	Unpause(ctx context.Context, gid string) (string, error)
	Remove(ctx context.Context, gid string) (string, error)
	RemoveDownloadResult(ctx context.Context, gid string) error
	PurgeDownloadResult(ctx context.Context) error
	GetGlobalStat(ctx context.Context) (*models.GlobalStat, error)
	TellAll(ctx context.Context, numWaiting, numStopped int) (*TaskLists, error)
}

// Client represents a connection to one aria2 daemon
type Client struct {
	endpoint   string
	secret     string
	httpClient *http.Client
	nextID     atomic.Uint64
}

var _ Conn = (*Client)(nil)

// New creates a client for server. A zero timeout leaves calls bounded only
// by their context.
func New(server models.Server, timeout time.Duration) *Client {
	return &Client{
		endpoint: server.Endpoint(),
		secret:   server.Secret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *RPCError       `json:"error,omitempty"`
}

// qualify adds the aria2. namespace to bare method names
func qualify(method string) string {
	if strings.HasPrefix(method, "aria2.") || strings.HasPrefix(method, "system.") {
		return method
	}
	return "aria2." + method
}

// withToken prepends the secret token expected by aria2.* methods
func (c *Client) withToken(params []any) []any {
	if c.secret == "" {
		return params
	}
	return append([]any{"token:" + c.secret}, params...)
}

// Call invokes method with positional params and returns the raw result
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	method = qualify(method)
	if strings.HasPrefix(method, "aria2.") {
		params = c.withToken(params)
	}
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      strconv.FormatUint(c.nextID.Add(1), 10),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	var rpcResp response
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("RPC request failed with status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("RPC request failed with status %d", resp.StatusCode)
	}

	return rpcResp.Result, nil
}

// MultiCall runs several methods in one system.multicall round trip. Each
// call is a method name followed by its params. A fault in any call fails
// the whole batch.
func (c *Client) MultiCall(ctx context.Context, calls ...[]any) ([]json.RawMessage, error) {
	batch := make([]map[string]any, 0, len(calls))
	for _, call := range calls {
		if len(call) == 0 {
			return nil, fmt.Errorf("empty call in multicall")
		}
		method, ok := call[0].(string)
		if !ok {
			return nil, fmt.Errorf("multicall method must be a string, got %T", call[0])
		}
		method = qualify(method)
		params := append([]any{}, call[1:]...)
		if strings.HasPrefix(method, "aria2.") {
			params = c.withToken(params)
		}
		batch = append(batch, map[string]any{"methodName": method, "params": params})
	}

	raw, err := c.Call(ctx, "system.multicall", batch)
	if err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode multicall result: %w", err)
	}

	results := make([]json.RawMessage, 0, len(entries))
	for i, entry := range entries {
		var wrapped []json.RawMessage
		if err := json.Unmarshal(entry, &wrapped); err == nil && len(wrapped) == 1 {
			results = append(results, wrapped[0])
			continue
		}
		var fault RPCError
		if err := json.Unmarshal(entry, &fault); err == nil && fault.Message != "" {
			return nil, &fault
		}
		return nil, fmt.Errorf("unexpected multicall entry %d: %s", i, entry)
	}

	return results, nil
}

func decode[T any](raw json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to parse result: %w", err)
	}
	return out, nil
}

// AddURI adds a download from uris and returns its gid
func (c *Client) AddURI(ctx context.Context, uris []string, options Options) (string, error) {
	return decode[string](c.Call(ctx, "aria2.addUri", uris, nonNil(options)))
}

// AddTorrent adds a base64 encoded torrent and returns its gid
func (c *Client) AddTorrent(ctx context.Context, torrent string, uris []string, options Options) (string, error) {
	return decode[string](c.Call(ctx, "aria2.addTorrent", torrent, nonNilURIs(uris), nonNil(options)))
}

// AddMetalink adds a base64 encoded metalink and returns the gids it created
func (c *Client) AddMetalink(ctx context.Context, metalink string, uris []string, options Options) ([]string, error) {
	return decode[[]string](c.Call(ctx, "aria2.addMetalink", metalink, nonNilURIs(uris), nonNil(options)))
}

// Pause pauses the task gid
func (c *Client) Pause(ctx context.Context, gid string) (string, error) {
	return decode[string](c.Call(ctx, "aria2.pause", gid))
}

// Unpause resumes the task gid
func (c *Client) Unpause(ctx context.Context, gid string) (string, error) {
	return decode[string](c.Call(ctx, "aria2.unpause", gid))
}

// Remove stops and removes the task gid
func (c *Client) Remove(ctx context.Context, gid string) (string, error) {
	return decode[string](c.Call(ctx, "aria2.remove", gid))
}

// RemoveDownloadResult forgets the stopped task gid
func (c *Client) RemoveDownloadResult(ctx context.Context, gid string) error {
	_, err := c.Call(ctx, "aria2.removeDownloadResult", gid)
	return err
}

// PurgeDownloadResult forgets every stopped task
func (c *Client) PurgeDownloadResult(ctx context.Context) error {
	_, err := c.Call(ctx, "aria2.purgeDownloadResult")
	return err
}

// GetGlobalStat returns the daemon-wide counters
func (c *Client) GetGlobalStat(ctx context.Context) (*models.GlobalStat, error) {
	stat, err := decode[models.GlobalStat](c.Call(ctx, "getGlobalStat"))
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// TellAll fetches the active, waiting and stopped queues in one batch
func (c *Client) TellAll(ctx context.Context, numWaiting, numStopped int) (*TaskLists, error) {
	results, err := c.MultiCall(ctx,
		[]any{"tellActive"},
		[]any{"tellWaiting", 0, numWaiting},
		[]any{"tellStopped", 0, numStopped},
	)
	if err != nil {
		return nil, err
	}
	if len(results) != 3 {
		return nil, fmt.Errorf("expected 3 multicall results, got %d", len(results))
	}

	var lists TaskLists
	for i, dst := range []*[]models.Task{&lists.Active, &lists.Waiting, &lists.Stopped} {
		if err := json.Unmarshal(results[i], dst); err != nil {
			return nil, fmt.Errorf("failed to parse task list: %w", err)
		}
	}
	return &lists, nil
}

func nonNil(options Options) Options {
	if options == nil {
		return Options{}
	}
	return options
}

func nonNilURIs(uris []string) []string {
	if uris == nil {
		return []string{}
	}
	return uris
}
