package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"

	"github.com/cumaker/makerspace/internal/makerspace"
	"github.com/cumaker/makerspace/internal/seed"
)

func testCatalog(t *testing.T) *makerspace.Catalog {
	t.Helper()
	cat, err := seed.Default()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return cat
}

// loadCatalog builds a catalog from in-memory YAML files.
func loadCatalog(t *testing.T, files fstest.MapFS) *makerspace.Catalog {
	t.Helper()
	cat, err := seed.Load(files)
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return cat
}

func testRouter(t *testing.T) *chi.Mux {
	t.Helper()
	return routerFor(t, testCatalog(t))
}

func routerFor(t *testing.T, cat *makerspace.Catalog) *chi.Mux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	addRoutes(r, logger, cat, makerspace.NewPolicy(makerspace.DefaultPassingThreshold), "")
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("encoding body: %v", err)
		}
		rd = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, rd)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return v
}
