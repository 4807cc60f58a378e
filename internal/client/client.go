// Package client calls a running writeai API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mlorentedev/writeai/internal/task"
)

const DefaultBaseURL = "http://localhost:8090"

// Client is safe for sequential use; callers that overlap requests should
// keep only the response that resolves last.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 90 * time.Second},
	}
}

type CompleteRequest struct {
	Task     string `json:"task"`
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	Tone     string `json:"tone,omitempty"`
}

type CompleteResponse struct {
	Output    string `json:"output"`
	Task      string `json:"task"`
	Model     string `json:"model"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Kind       string `json:"kind"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// TryLater reports whether the failure came from the upstream service.
func (e *APIError) TryLater() bool {
	return e.Kind == "gateway_unavailable" || e.Kind == "empty_completion" || e.StatusCode >= 500
}

func (c *Client) Complete(ctx context.Context, req CompleteRequest) (CompleteResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return CompleteResponse{}, fmt.Errorf("client: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/complete", bytes.NewReader(body))
	if err != nil {
		return CompleteResponse{}, fmt.Errorf("client: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var out CompleteResponse
	if err := c.do(httpReq, &out); err != nil {
		return CompleteResponse{}, err
	}
	return out, nil
}

func (c *Client) Tasks(ctx context.Context) (task.CatalogInfo, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/tasks", nil)
	if err != nil {
		return task.CatalogInfo{}, fmt.Errorf("client: create request: %w", err)
	}

	var out task.CatalogInfo
	if err := c.do(httpReq, &out); err != nil {
		return task.CatalogInfo{}, err
	}
	return out, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("client: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 8*1024))
		if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
