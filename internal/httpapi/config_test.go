package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetMaxUploadBytes(t *testing.T) {
	SetMaxUploadBytes(123)
	if maxUploadBytes != 123 {
		t.Fatalf("maxUploadBytes=%d", maxUploadBytes)
	}
	SetMaxUploadBytes(0)
	if maxUploadBytes != 10<<20 {
		t.Fatalf("default not restored: %d", maxUploadBytes)
	}
	SetMaxUploadBytes(-5)
	if maxUploadBytes != 10<<20 {
		t.Fatalf("negative should restore default: %d", maxUploadBytes)
	}
}

func TestCORSEnabled(t *testing.T) {
	SetCORSOptions(true, []string{"*"}, []string{"GET", "POST", "OPTIONS"}, []string{"*"})
	defer SetCORSOptions(false, nil, nil, nil)

	r := NewMux(&mockService{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin=%q", got)
	}
}

func TestCORSDisabledByDefault(t *testing.T) {
	r := NewMux(&mockService{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected CORS header %q", got)
	}
}
