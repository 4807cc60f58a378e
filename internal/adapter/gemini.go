package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"
	GeminiDefaultModel   = "gemini-1.5-flash-latest"
)

// GeminiAdapter calls the Gemini generateContent endpoint.
type GeminiAdapter struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

func (g *GeminiAdapter) Name() string {
	return fmt.Sprintf("Gemini (%s)", g.model())
}

func (g *GeminiAdapter) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     cfg.Temperature,
			TopK:            cfg.TopK,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	}

	baseURL := g.BaseURL
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	endpoint := strings.TrimRight(baseURL, "/") + "/v1beta/models/" + url.PathEscape(g.model()) + ":generateContent"

	var resp geminiResponse
	headers := map[string]string{"x-goog-api-key": g.APIKey}
	if err := postJSON(ctx, g.Client, "gemini", endpoint, headers, reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: no candidates: %w", ErrEmptyCompletion)
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", fmt.Errorf("gemini: candidate has no text (finish reason %q): %w", resp.Candidates[0].FinishReason, ErrEmptyCompletion)
	}

	return parts[0].Text, nil
}

func (g *GeminiAdapter) Available() bool {
	return g.APIKey != ""
}

func (g *GeminiAdapter) model() string {
	if g.Model == "" {
		return GeminiDefaultModel
	}
	return g.Model
}
