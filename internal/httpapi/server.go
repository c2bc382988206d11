package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tribald/internal/catalog"
	"tribald/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Generate(ctx context.Context, upload []byte, opts catalog.GenerateOptions) (types.GenerateResponse, error)
	GenerateHistory(ctx context.Context, upload []byte, question, languages string) (types.HistoryGenerateResponse, error)
	History(ctx context.Context, skip, limit int) ([]types.ArtworkRecord, error)
	Models(ctx context.Context) ([]types.Model, error)
	Status() types.StatusResponse
	Ready(ctx context.Context) bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsAllowedOrigins,
			AllowedMethods:   corsAllowedMethods,
			AllowedHeaders:   corsAllowedHeaders,
			AllowCredentials: true,
		}))
	}
	r.Use(MetricsMiddleware)

	r.Post("/generate", func(w http.ResponseWriter, r *http.Request) {
		upload, ok := readUpload(w, r)
		if !ok {
			return
		}
		q := r.URL.Query()
		opts := catalog.GenerateOptions{
			Languages: q.Get("languages"),
			Length:    q.Get("length"),
			Audience:  q.Get("audience"),
			Tone:      q.Get("tone"),
		}
		lvl := requestLogLevel(r)
		start := time.Now()
		logStart(r, lvl, "generate")
		// Join server base context with request context so shutdown cancels work too.
		joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		resp, err := svc.Generate(joinedCtx, upload, opts)
		if err != nil {
			writeServiceError(w, r, lvl, "generate", start, err)
			return
		}
		writeJSON(w, resp)
		logEnd(r, lvl, "generate", http.StatusOK, start, nil)
	})

	r.Post("/generate/history", func(w http.ResponseWriter, r *http.Request) {
		upload, ok := readUpload(w, r)
		if !ok {
			return
		}
		q := r.URL.Query()
		lvl := requestLogLevel(r)
		start := time.Now()
		logStart(r, lvl, "generate_history")
		joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		resp, err := svc.GenerateHistory(joinedCtx, upload, q.Get("question"), q.Get("languages"))
		if err != nil {
			writeServiceError(w, r, lvl, "generate_history", start, err)
			return
		}
		writeJSON(w, resp)
		logEnd(r, lvl, "generate_history", http.StatusOK, start, nil)
	})

	r.Get("/history", func(w http.ResponseWriter, r *http.Request) {
		skip, ok := queryInt(w, r, "skip", 0)
		if !ok {
			return
		}
		limit, ok := queryInt(w, r, "limit", 20)
		if !ok {
			return
		}
		records, err := svc.History(r.Context(), skip, limit)
		if err != nil {
			writeServiceError(w, r, LevelOff, "history", time.Now(), err)
			return
		}
		writeJSON(w, records)
	})

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		models, err := svc.Models(r.Context())
		if err != nil {
			writeServiceError(w, r, LevelOff, "models", time.Now(), err)
			return
		}
		writeJSON(w, types.ModelsResponse{Models: models})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Status())
	})

	r.Get("/api", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"message": "AI Tribal Arts Marketplace Running"})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready(r.Context()) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Embedded browser frontend
	r.Get("/", serveIndex)

	MountSwagger(r)

	return r
}

// readUpload pulls the "file" field out of the multipart form, enforcing
// the configured size limit. On failure it writes the error response and
// returns ok=false.
func readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return nil, false
		}
		writeJSONError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return nil, false
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return nil, false
		}
		writeJSONError(w, http.StatusBadRequest, "failed to read upload")
		return nil, false
	}
	ObserveUploadSize(len(data))
	return data, true
}

// isTooLarge matches MaxBytesReader failures. The multipart reader does not
// always preserve *http.MaxBytesError through wrapping, so the message is
// checked as a fallback.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// queryInt parses an optional integer query parameter. A missing or empty
// value yields def; garbage yields a 400 and ok=false.
func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// writeServiceError maps service errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, lvl LogLevel, op string, start time.Time, err error) {
	// If context was canceled (client disconnect / shutdown), just return.
	if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
		return
	}
	status := http.StatusInternalServerError
	var he HTTPError
	if errors.As(err, &he) {
		status = he.StatusCode()
	}
	writeJSONError(w, status, err.Error())
	logEnd(r, lvl, op, status, start, err)
}

func logStart(r *http.Request, lvl LogLevel, op string) {
	if lvl < LevelInfo || zlog == nil {
		return
	}
	z := zlog.Info().Str("path", r.URL.Path).Str("op", op)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	z.Msg("generate start")
}

func logEnd(r *http.Request, lvl LogLevel, op string, status int, start time.Time, err error) {
	if lvl < LevelInfo || zlog == nil {
		return
	}
	z := zlog.Info().Str("op", op).Int("status", status).Dur("dur", time.Since(start))
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	if err != nil {
		z = z.Err(err)
	}
	z.Msg("generate end")
}
