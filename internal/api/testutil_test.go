package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/joestump/joe-photos/internal/api"
	"github.com/joestump/joe-photos/internal/library"
	"github.com/joestump/joe-photos/internal/store"
)

// testEnv holds the library and router needed for API tests.
type testEnv struct {
	Router  http.Handler
	Library *library.Library
	Path    string
}

// newTestEnv creates a file-backed library in a temp dir and wires up the
// full API router over it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	path := filepath.Join(t.TempDir(), "albums.json")
	nop := zerolog.Nop()

	lib := library.New(store.NewFileStore(path), library.WithLogger(nop))
	if err := lib.Init(context.Background()); err != nil {
		t.Fatalf("init library: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close(context.Background()) })

	return &testEnv{
		Router:  api.NewAPIRouter(api.Deps{Library: lib, Logger: &nop}),
		Library: lib,
		Path:    path,
	}
}

// seedAlbum creates an album directly through the library.
func seedAlbum(t *testing.T, env *testEnv, name string) {
	t.Helper()
	if _, err := env.Library.CreateAlbum(context.Background(), name); err != nil {
		t.Fatalf("seed album: %v", err)
	}
}

// seedPhoto adds a photo directly through the library and returns its ID.
func seedPhoto(t *testing.T, env *testEnv, album, imagePath string) string {
	t.Helper()
	p, err := env.Library.AddPhoto(context.Background(), album, imagePath, "")
	if err != nil {
		t.Fatalf("seed photo: %v", err)
	}
	return p.ID
}

// do sends a request with an optional JSON body through the router.
func do(t *testing.T, env *testEnv, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorder body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v; body: %s", err, rec.Body.String())
	}
}

// wantError asserts the status and error code of a failed request.
func wantError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, status, rec.Body.String())
	}
	var body api.ErrorResponse
	decode(t, rec, &body)
	if body.Code != code {
		t.Errorf("code = %q, want %q", body.Code, code)
	}
}
