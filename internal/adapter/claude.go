package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const (
	claudeDefaultBaseURL = "https://api.anthropic.com"
	ClaudeDefaultModel   = "claude-sonnet-4-5-20250929"
)

// ClaudeAdapter connects to the Anthropic Messages API.
type ClaudeAdapter struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessagesRequest struct {
	Model       string          `json:"model"`
	Messages    []claudeMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
	TopK        int             `json:"top_k"`
}

type claudeContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeMessagesResponse struct {
	Content []claudeContentBlock `json:"content"`
}

func (c *ClaudeAdapter) Name() string {
	return fmt.Sprintf("Claude (%s)", c.Model)
}

// Generate sends temperature and top_k only. Current Claude models reject
// requests that set both temperature and top_p.
func (c *ClaudeAdapter) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	reqBody := claudeMessagesRequest{
		Model: c.Model,
		Messages: []claudeMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   cfg.MaxOutputTokens,
		Temperature: cfg.Temperature,
		TopK:        cfg.TopK,
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = claudeDefaultBaseURL
	}
	headers := map[string]string{
		"x-api-key":         c.APIKey,
		"anthropic-version": "2023-06-01",
	}

	var resp claudeMessagesResponse
	if err := postJSON(ctx, c.Client, "claude", strings.TrimRight(baseURL, "/")+"/v1/messages", headers, reqBody, &resp); err != nil {
		return "", err
	}

	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("claude: no text block: %w", ErrEmptyCompletion)
}

func (c *ClaudeAdapter) Available() bool {
	return c.APIKey != ""
}
