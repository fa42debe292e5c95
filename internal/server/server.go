// Package server exposes the HTTP boundary: a health check and the
// WebSocket change feed. All document reads and writes happen in the
// local-first client; the server only relays change notifications.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/larder-app/larder/internal/docstore"
	"github.com/larder-app/larder/internal/middleware"
	ws "github.com/larder-app/larder/internal/websocket"
)

type Server struct {
	store  *docstore.Store
	hub    *ws.Hub
	logger *slog.Logger
}

func New(store *docstore.Store, logger *slog.Logger) *Server {
	return &Server{
		store:  store,
		hub:    ws.NewHub(logger.With("component", "websocket")),
		logger: logger,
	}
}

// Run bridges the store's change feed to connected WebSocket clients. It
// blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	feed := s.store.Changes()
	defer feed.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case ch, ok := <-feed.C():
			if !ok {
				return
			}
			s.hub.Broadcast(ws.FromChange(ch))
		}
	}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
