package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tribald/pkg/types"
)

// Client talks to an Ollama host over its HTTP API. The vision model never
// runs in-process; Ollama owns model loading and VRAM.
type Client struct {
	host   string
	model  string
	client *http.Client
}

// New returns a Client for the given Ollama base URL (e.g. http://127.0.0.1:11434)
// and model name (e.g. "llava"). timeout bounds a single model call; zero
// means no client-side timeout beyond the request context.
func New(host, model string, timeout time.Duration) *Client {
	return &Client{
		host:   strings.TrimRight(host, "/"),
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

// Model returns the configured vision model name.
func (c *Client) Model() string { return c.model }

// Host returns the configured Ollama base URL.
func (c *Client) Host() string { return c.host }

type chatMessage struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	Error string `json:"error,omitempty"`
}

// Describe sends a single-turn chat with one attached image and returns the
// raw model reply. The image is the full encoded file contents (JPEG/PNG/...).
func (c *Client) Describe(ctx context.Context, prompt string, image []byte) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{{
			Role:    "user",
			Content: prompt,
			Images:  []string{base64.StdEncoding.EncodeToString(image)},
		}},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read ollama response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama chat: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var cr chatResponse
	if err := json.Unmarshal(b, &cr); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	if cr.Error != "" {
		return "", fmt.Errorf("ollama chat: %s", cr.Error)
	}
	return cr.Message.Content, nil
}

type tagsResponse struct {
	Models []struct {
		Name       string `json:"name"`
		Size       int64  `json:"size"`
		Digest     string `json:"digest"`
		ModifiedAt string `json:"modified_at"`
	} `json:"models"`
}

// Tags lists the models available on the Ollama host.
func (c *Client) Tags(ctx context.Context) ([]types.Model, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama tags: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama tags: status %d", resp.StatusCode)
	}
	var tr tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decode ollama tags: %w", err)
	}
	models := make([]types.Model, 0, len(tr.Models))
	for _, m := range tr.Models {
		models = append(models, types.Model{
			Name:       m.Name,
			Size:       m.Size,
			Digest:     m.Digest,
			ModifiedAt: m.ModifiedAt,
		})
	}
	return models, nil
}

// Healthy reports whether the Ollama host answers at all.
func (c *Client) Healthy(ctx context.Context) bool {
	_, err := c.Tags(ctx)
	return err == nil
}
