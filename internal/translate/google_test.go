package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGoogleTranslate(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"client": q.Get("client"),
			"sl":     q.Get("sl"),
			"tl":     q.Get("tl"),
			"q":      q.Get("q"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["नमस्ते ","hello ",null,null,10],["दुनिया","world",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	g := NewGoogle(srv.URL, time.Second)
	out, err := g.Translate(context.Background(), "hello world", "hindi")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if out != "नमस्ते दुनिया" {
		t.Fatalf("out=%q", out)
	}
	if gotQuery["client"] != "gtx" || gotQuery["sl"] != "auto" || gotQuery["tl"] != "hi" || gotQuery["q"] != "hello world" {
		t.Fatalf("query=%v", gotQuery)
	}
}

func TestGoogleTranslateUnknownLanguage(t *testing.T) {
	g := NewGoogle("http://127.0.0.1:9", time.Second)
	if _, err := g.Translate(context.Background(), "hi", "konkani"); err == nil {
		t.Fatalf("expected unsupported language error")
	}
}

func TestGoogleTranslateBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGoogle(srv.URL, time.Second)
	if _, err := g.Translate(context.Background(), "hello", "tamil"); err == nil {
		t.Fatalf("expected error on 429")
	}
}

func TestDecodeSegmentsErrors(t *testing.T) {
	for _, body := range []string{"not json", "[]", `["x"]`, `[[]]`} {
		if _, err := decodeSegments([]byte(body)); err == nil {
			t.Fatalf("expected decode error for %q", body)
		}
	}
}

func TestNewGoogleDefaultEndpoint(t *testing.T) {
	g := NewGoogle("", time.Second)
	if g.endpoint != DefaultEndpoint {
		t.Fatalf("endpoint=%q", g.endpoint)
	}
}
