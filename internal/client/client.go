// Package client is a small HTTP client for the racerd API, used by
// the CLI commands that talk to a running daemon.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client handles racerd HTTP API calls.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// Response is the envelope the daemon answers with.
type Response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// New constructs a client with defaults applied.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Client:  &http.Client{Timeout: defaultTimeout},
	}
}

// Generate renders a template with the given per-request values.
func (c *Client) Generate(ctx context.Context, template string, contextData map[string]any) (*Response, error) {
	return c.postJSON(ctx, "/generate", map[string]any{
		"template_name": template,
		"context_data":  contextData,
	})
}

// UpdateContext merges the given values into the agent context.
func (c *Client) UpdateContext(ctx context.Context, data map[string]any) (*Response, error) {
	return c.postJSON(ctx, "/update_context", map[string]any{"context_data": data})
}

// GetContext fetches the current agent context.
func (c *Client) GetContext(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/get_context")
}

// SimulateLike simulates liking a post.
func (c *Client) SimulateLike(ctx context.Context, postID, userID string) (*Response, error) {
	payload := map[string]any{"post_id": postID}
	if userID != "" {
		payload["user_id"] = userID
	}
	return c.postJSON(ctx, "/simulate_like", payload)
}

// Simulate performs an arbitrary simulated action.
func (c *Client) Simulate(ctx context.Context, action string, data map[string]any) (*Response, error) {
	return c.postJSON(ctx, "/simulate", map[string]any{
		"action_type": action,
		"action_data": data,
	})
}

// ReplyComment simulates replying to a fan comment.
func (c *Client) ReplyComment(ctx context.Context, comment, response string) (*Response, error) {
	return c.postJSON(ctx, "/reply_comment", map[string]any{
		"comment_text":   comment,
		"agent_response": response,
	})
}

// Actions fetches the recent simulated actions.
func (c *Client) Actions(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/actions")
}

// Templates fetches the registered template listing.
func (c *Client) Templates(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/templates")
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*Response, error) {
	baseURL, err := c.baseURL()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) get(ctx context.Context, path string) (*Response, error) {
	baseURL, err := c.baseURL()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Response, error) {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("call racerd: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read racerd response: %w", err)
	}

	var envelope Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		snippet := strings.TrimSpace(string(body))
		if snippet == "" {
			snippet = resp.Status
		}
		return nil, fmt.Errorf("decode racerd response (%s): %s", resp.Status, snippet)
	}

	if envelope.Status != "success" {
		return &envelope, fmt.Errorf("racerd request failed (%s): %s", resp.Status, envelope.Message)
	}
	return &envelope, nil
}

func (c *Client) baseURL() (string, error) {
	if c == nil {
		return "", errors.New("racerd client is nil")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		return "", errors.New("racerd base URL is empty")
	}
	return baseURL, nil
}

func (c *Client) httpClient() *http.Client {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: defaultTimeout}
	}
	if c.Client.Timeout <= 0 {
		c.Client.Timeout = defaultTimeout
	}
	return c.Client
}
