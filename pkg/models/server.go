// Package models defines the data structures used throughout the application
package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Server describes a remote aria2 daemon reachable over JSON-RPC
type Server struct {
	ID            string            `json:"uuid"`
	Name          string            `json:"name"`
	Secure        bool              `json:"secure"`
	Host          string            `json:"host"`
	Port          int               `json:"port"`
	Path          string            `json:"path"`
	Secret        string            `json:"secret"`
	RPCParameters map[string]string `json:"rpcParameters"`
}

// NewServer returns a server with a fresh id and the daemon's stock connection settings
func NewServer() Server {
	return Server{
		ID:            uuid.NewString(),
		Name:          "Localhost",
		Host:          "localhost",
		Port:          6800,
		Path:          "/jsonrpc",
		RPCParameters: map[string]string{},
	}
}

// Endpoint returns the URL the JSON-RPC requests are posted to
func (s Server) Endpoint() string {
	scheme := "http"
	if s.Secure {
		scheme = "https"
	}
	path := s.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return fmt.Sprintf("%s://%s:%d%s", scheme, s.Host, s.Port, path)
}

// Clone returns a deep copy so the parameter map is never shared between values
func (s Server) Clone() Server {
	params := make(map[string]string, len(s.RPCParameters))
	for k, v := range s.RPCParameters {
		params[k] = v
	}
	s.RPCParameters = params
	return s
}
