package storage

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixitfast_technician/internal/transport"
	"fixitfast_technician/platform/logger"
)

type testBackendConfig struct {
	baseURL string
}

func (c testBackendConfig) GetBackendBaseURL() string     { return c.baseURL }
func (c testBackendConfig) GetBackendID() string          { return "backend-1" }
func (c testBackendConfig) GetHTTPTimeout() time.Duration { return 5 * time.Second }
func (c testBackendConfig) GetRetryLimit() int            { return 0 }

type staticCreds struct{}

func (staticCreds) AuthorizationHeader() string { return "Basic am9lOnNlY3JldA==" }
func (staticCreds) Authenticated() bool         { return true }

func newImages(t *testing.T, handler http.HandlerFunc) *Images {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	cfg := testBackendConfig{baseURL: ts.URL}
	log := logger.New("development")
	return NewImages(transport.NewClient(cfg, log), staticCreds{}, cfg, log)
}

func TestImageForLinkDownloadsAndEncodes(t *testing.T) {
	pngBytes := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	var gotPath, gotQuery string
	var gotHeaders http.Header
	images := newImages(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotHeaders = r.Header.Clone()
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	})

	got := images.ImageForLink(context.Background(),
		"http://backend.example.com/mobile/platform/storage/collections/FIF_UserData/objects/obj42?user=lynn1014")

	if want := base64.StdEncoding.EncodeToString(pngBytes); got != want {
		t.Fatalf("encoded image = %q, want %q", got, want)
	}
	if want := "/mobile/platform/storage/collections/FIF_UserData/objects/obj42"; gotPath != want {
		t.Errorf("request path = %q, want %q", gotPath, want)
	}
	if want := "user=lynn1014"; gotQuery != want {
		t.Errorf("request query = %q, want %q", gotQuery, want)
	}
	if got := gotHeaders.Get("Accept"); got != "image/*" {
		t.Errorf("Accept header = %q, want image/*", got)
	}
	if got := gotHeaders.Get("Oracle-Mobile-Backend-Id"); got != "backend-1" {
		t.Errorf("backend id header = %q, want backend-1", got)
	}
	if got := gotHeaders.Get("Authorization"); got != "Basic am9lOnNlY3JldA==" {
		t.Errorf("Authorization header = %q", got)
	}
}

func TestImageForLinkWithoutUserQuery(t *testing.T) {
	var gotPath, gotQuery string
	images := newImages(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte("img"))
	})

	images.ImageForLink(context.Background(), "storage/collections/FIF_UserData/objects/obj7")

	if want := "/mobile/platform/storage/collections/FIF_UserData/objects/obj7"; gotPath != want {
		t.Errorf("request path = %q, want %q", gotPath, want)
	}
	if gotQuery != "" {
		t.Errorf("request query = %q, want empty", gotQuery)
	}
}

func TestImageForLinkEmptyLinkSkipsNetwork(t *testing.T) {
	calls := 0
	images := newImages(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	if got := images.ImageForLink(context.Background(), ""); got != PlaceholderImage {
		t.Fatalf("empty link should return placeholder")
	}
	if calls != 0 {
		t.Errorf("empty link made %d requests, want 0", calls)
	}
}

func TestImageForLinkFailureReturnsPlaceholder(t *testing.T) {
	images := newImages(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if got := images.ImageForLink(context.Background(), "objects/missing"); got != PlaceholderImage {
		t.Fatalf("missing object should return placeholder")
	}
}

func TestImageForLinkEmptyBodyReturnsPlaceholder(t *testing.T) {
	images := newImages(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if got := images.ImageForLink(context.Background(), "objects/empty"); got != PlaceholderImage {
		t.Fatalf("empty body should return placeholder")
	}
}
