package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const OllamaDefaultModel = "qwen2.5:1.5b"

// OllamaAdapter connects to a local Ollama instance via /api/chat.
type OllamaAdapter struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopK        int     `json:"top_k"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

func (o *OllamaAdapter) Name() string {
	return fmt.Sprintf("Ollama (%s)", o.Model)
}

func (o *OllamaAdapter) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	reqBody := ollamaChatRequest{
		Model: o.Model,
		Messages: []ollamaMessage{
			{Role: "user", Content: prompt},
		},
		Stream: false,
		Options: ollamaOptions{
			Temperature: cfg.Temperature,
			TopK:        cfg.TopK,
			TopP:        cfg.TopP,
			NumPredict:  cfg.MaxOutputTokens,
		},
	}

	var resp ollamaChatResponse
	if err := postJSON(ctx, o.Client, "ollama", strings.TrimRight(o.BaseURL, "/")+"/api/chat", nil, reqBody, &resp); err != nil {
		return "", err
	}

	if resp.Message.Content == "" {
		return "", fmt.Errorf("ollama: empty message: %w", ErrEmptyCompletion)
	}
	return resp.Message.Content, nil
}

func (o *OllamaAdapter) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return probe(ctx, o.Client, strings.TrimRight(o.BaseURL, "/")+"/")
}
