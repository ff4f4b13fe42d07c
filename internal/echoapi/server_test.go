package echoapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/halex5000/pinot-noir-code/internal/logging"
)

// TestHandleEcho tests that query parameters are reflected back with 200
func TestHandleEcho(t *testing.T) {
	srv := NewServer("127.0.0.1:0", logging.Discard())
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/get?api_key=key123&winename=Chateau+A&vintage=1999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp EchoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	expected := map[string]string{
		"api_key":  "key123",
		"winename": "Chateau A",
		"vintage":  "1999",
	}
	for k, v := range expected {
		if resp.Args[k] != v {
			t.Errorf("arg %s: expected %q, got %q", k, v, resp.Args[k])
		}
	}
}

// TestHandleHealth tests the health route
func TestHandleHealth(t *testing.T) {
	srv := NewServer("127.0.0.1:0", logging.Discard())
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected healthy status, got %q", resp.Status)
	}
	if resp.Version == "" {
		t.Error("expected version to be reported")
	}
}

// TestUnknownRoute tests that other paths are not echoed
func TestUnknownRoute(t *testing.T) {
	srv := NewServer("127.0.0.1:0", logging.Discard())
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/post", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown route, got %d", rec.Code)
	}
}
