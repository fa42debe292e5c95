package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/larder-app/larder/internal/database"
	"github.com/larder-app/larder/internal/docstore"
)

func setupServer(t *testing.T) (*Server, *docstore.Store) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	store := docstore.New(db, slog.Default())
	return New(store, slog.Default()), store
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := setupServer(t)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, store := setupServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx)
		close(done)
	}()

	if _, err := store.Containers().Insert(context.Background(), docstore.Document{"id": "c1", "name": "Fridge"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	cancel()
	<-done
}
