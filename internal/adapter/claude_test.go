package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaudeAdapterGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req claudeMessagesRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, ClaudeDefaultModel, req.Model)
		assert.Equal(t, 1024, req.MaxTokens)
		assert.Equal(t, 0.7, req.Temperature)
		assert.Equal(t, 40, req.TopK)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(body, &raw))
		assert.Contains(t, raw, "temperature")
		assert.NotContains(t, raw, "top_p")
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		json.NewEncoder(w).Encode(claudeMessagesResponse{
			Content: []claudeContentBlock{
				{Type: "thinking", Text: "hmm"},
				{Type: "text", Text: "Corrected."},
			},
		})
	}))
	defer srv.Close()

	a := &ClaudeAdapter{BaseURL: srv.URL, APIKey: "sk-test", Model: ClaudeDefaultModel, Client: &http.Client{Timeout: 5 * time.Second}}
	got, err := a.Generate(context.Background(), "fix this", DefaultGeneration())
	require.NoError(t, err)
	assert.Equal(t, "Corrected.", got)
}

func TestClaudeAdapterErrors(t *testing.T) {
	t.Run("api error message carried", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
		}))
		defer srv.Close()

		a := &ClaudeAdapter{BaseURL: srv.URL, APIKey: "k", Model: "m", Client: &http.Client{Timeout: 5 * time.Second}}
		_, err := a.Generate(context.Background(), "p", DefaultGeneration())

		var u *UnavailableError
		require.ErrorAs(t, err, &u)
		assert.Equal(t, http.StatusTooManyRequests, u.StatusCode)
		assert.Equal(t, "slow down", u.Message)
	})

	t.Run("no text block", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"content":[]}`))
		}))
		defer srv.Close()

		a := &ClaudeAdapter{BaseURL: srv.URL, APIKey: "k", Model: "m", Client: &http.Client{Timeout: 5 * time.Second}}
		_, err := a.Generate(context.Background(), "p", DefaultGeneration())
		require.ErrorIs(t, err, ErrEmptyCompletion)
	})
}

func TestClaudeAdapterAvailable(t *testing.T) {
	assert.False(t, (&ClaudeAdapter{}).Available())
	assert.True(t, (&ClaudeAdapter{APIKey: "k"}).Available())
}
