// Package testserver spins up a full opsdeck HTTP server over an
// in-memory store for functional tests.
package testserver

import (
	"context"
	"net/http/httptest"
	"testing"

	"opsdeck/internal/app"
	"opsdeck/internal/mcp"
	"opsdeck/internal/storage"
)

type TestServer struct {
	Server    *httptest.Server
	Container *app.Container
	Store     storage.Store
}

func New(t *testing.T) *TestServer {
	t.Helper()

	store := storage.NewMemory()
	container := app.New(store, nil)
	container.Hydrate(context.Background())

	server := mcp.NewServer(mcp.Config{
		Container:     container,
		TransportMode: "http",
	})

	httpServer := httptest.NewServer(mcp.NewHTTPHandler(server, nil))

	ts := &TestServer{
		Server:    httpServer,
		Container: container,
		Store:     store,
	}

	t.Cleanup(func() {
		httpServer.Close()
		container.Close()
		_ = store.Close()
	})

	return ts
}
