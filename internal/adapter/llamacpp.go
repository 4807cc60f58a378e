package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const LlamaCppDefaultModel = "qwen2.5-1.5b-gpu"

// LlamaCppAdapter connects to llama-server's OpenAI-compatible /v1/chat/completions.
type LlamaCppAdapter struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

type llamaCppMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llamaCppChatRequest struct {
	Model       string            `json:"model"`
	Messages    []llamaCppMessage `json:"messages"`
	Temperature float64           `json:"temperature"`
	TopK        int               `json:"top_k"`
	TopP        float64           `json:"top_p"`
	MaxTokens   int               `json:"max_tokens"`
}

type llamaCppChoice struct {
	Message llamaCppMessage `json:"message"`
}

type llamaCppChatResponse struct {
	Choices []llamaCppChoice `json:"choices"`
}

func (l *LlamaCppAdapter) Name() string {
	return fmt.Sprintf("llama.cpp (%s)", l.Model)
}

func (l *LlamaCppAdapter) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	reqBody := llamaCppChatRequest{
		Model: l.Model,
		Messages: []llamaCppMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: cfg.Temperature,
		TopK:        cfg.TopK,
		TopP:        cfg.TopP,
		MaxTokens:   cfg.MaxOutputTokens,
	}

	var resp llamaCppChatResponse
	url := strings.TrimRight(l.BaseURL, "/") + "/v1/chat/completions"
	if err := postJSON(ctx, l.Client, "llamacpp", url, nil, reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("llamacpp: empty response choices: %w", ErrEmptyCompletion)
	}
	return resp.Choices[0].Message.Content, nil
}

func (l *LlamaCppAdapter) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return probe(ctx, l.Client, strings.TrimRight(l.BaseURL, "/")+"/health")
}
