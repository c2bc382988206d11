package httpapi

import (
	"embed"
	"net/http"
)

//go:embed static/index.html
var staticFS embed.FS

// serveIndex serves the embedded single-page frontend used to exercise the
// API from a browser. No build step, no external assets.
func serveIndex(w http.ResponseWriter, r *http.Request) {
	b, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "frontend not embedded")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(b)
}
