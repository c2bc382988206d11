package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the public Google translate web endpoint. It returns a
// nested JSON array of translated segments rather than a documented schema.
const DefaultEndpoint = "https://translate.googleapis.com/translate_a/single"

// Google translates through the free web endpoint, the same backend the
// original deployment used. The endpoint is configurable for tests.
type Google struct {
	endpoint string
	client   *http.Client
}

// NewGoogle returns a Google translator. An empty endpoint selects
// DefaultEndpoint.
func NewGoogle(endpoint string, timeout time.Duration) *Google {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Google{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Translate converts text into the named language (e.g. "hindi").
func (g *Google) Translate(ctx context.Context, text, language string) (string, error) {
	code, ok := LanguageCodes[language]
	if !ok {
		return "", fmt.Errorf("unsupported language: %s", language)
	}
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", code)
	q.Set("dt", "t")
	q.Set("q", text)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read translate response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: status %d", resp.StatusCode)
	}
	out, err := decodeSegments(b)
	if err != nil {
		return "", err
	}
	return out, nil
}

// decodeSegments joins the translated segments out of the endpoint's nested
// array response: [[["seg1","orig",...],["seg2",...]], null, "en", ...].
func decodeSegments(b []byte) (string, error) {
	var root []any
	if err := json.Unmarshal(b, &root); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	if len(root) == 0 {
		return "", fmt.Errorf("empty translate response")
	}
	segments, ok := root[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translate response shape")
	}
	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no translated segments in response")
	}
	return sb.String(), nil
}
