package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// MockAdapter returns simulated completions with a configurable delay.
// Used for development and testing without a real backend.
type MockAdapter struct {
	Delay time.Duration
	Reply string // fixed reply; when empty the input text is echoed back
	Err   error  // returned instead of a reply when set

	calls atomic.Int64
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	m.calls.Add(1)

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", &UnavailableError{Backend: "mock", Err: ctx.Err()}
		}
	}

	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}

	// Echo the text after the instruction, first letter capitalized.
	// Instructions never contain a blank line.
	text := prompt
	if _, after, ok := strings.Cut(prompt, "\n\n"); ok {
		text = after
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("mock: nothing to echo: %w", ErrEmptyCompletion)
	}
	if text[0] >= 'a' && text[0] <= 'z' {
		text = strings.ToUpper(text[:1]) + text[1:]
	}
	return text, nil
}

func (m *MockAdapter) Available() bool { return true }

// Calls reports how many times Generate was invoked.
func (m *MockAdapter) Calls() int64 { return m.calls.Load() }
