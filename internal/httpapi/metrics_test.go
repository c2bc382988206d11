package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRoutePatternFallsBackToPath(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/some/raw/path", nil)
	if got := routePatternOrPath(r); got != "/some/raw/path" {
		t.Fatalf("got %q", got)
	}
}

func TestMetricsMiddlewareRecordsStatus(t *testing.T) {
	h := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusTeapot {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 7: "7", 200: "200", 404: "404", 1234: "1234"}
	for n, want := range cases {
		if got := itoa(n); got != want {
			t.Fatalf("itoa(%d)=%q", n, got)
		}
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
