// Package server provides a minimal, read-only HTTP status endpoint for
// cmd/benchtop: the last shipped report and the active layer, as JSON.
// There is no settings UI — a bench board's bindings live in
// internal/benchconfig, edited by hand, not through this server.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gokeyb/gokeyb/firmware"
	"github.com/gokeyb/gokeyb/hidsink"
)

// Server serves GET /status on localhost.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	controller *firmware.Controller
	sinkMgr    *hidsink.Manager
	version    string
}

// New creates a status server reporting on controller and sinkMgr.
func New(controller *firmware.Controller, sinkMgr *hidsink.Manager, version string) *Server {
	return &Server{controller: controller, sinkMgr: sinkMgr, version: version}
}

// Start begins serving on a random localhost port and returns its URL.
func (s *Server) Start() (string, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.handleStatus)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("listen: %w", err)
	}
	s.listener = ln

	s.httpServer = &http.Server{
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("[server] error: %v", err)
		}
	}()

	url := fmt.Sprintf("http://%s", ln.Addr().String())
	log.Printf("[server] status available at %s/status", url)
	return url, nil
}

// Stop shuts down the HTTP server.
func (s *Server) Stop() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// URL returns the server's URL, or empty string if not started.
func (s *Server) URL() string {
	if s.listener == nil {
		return ""
	}
	return fmt.Sprintf("http://%s", s.listener.Addr().String())
}
