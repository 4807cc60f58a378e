package adapter

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockAdapterGenerate(t *testing.T) {
	m := &MockAdapter{}

	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"echoes text after instruction", "Summarize:\n\nhello world", "Hello world"},
		{"trims whitespace", "Expand:\n\n  hello world  ", "Hello world"},
		{"already capitalized", "Hello world", "Hello world"},
		{"keeps every paragraph", "Expand:\n\nfirst part\n\nsecond part", "First part\n\nsecond part"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Generate(context.Background(), tt.prompt, DefaultGeneration())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if m.Calls() != int64(len(tests)) {
		t.Errorf("calls: got %d, want %d", m.Calls(), len(tests))
	}
}

func TestMockAdapterReplyAndErr(t *testing.T) {
	m := &MockAdapter{Reply: "fixed"}
	got, err := m.Generate(context.Background(), "anything", DefaultGeneration())
	if err != nil || got != "fixed" {
		t.Errorf("got (%q, %v), want (%q, nil)", got, err, "fixed")
	}

	boom := errors.New("boom")
	m = &MockAdapter{Reply: "fixed", Err: boom}
	if _, err := m.Generate(context.Background(), "anything", DefaultGeneration()); !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}
}

func TestMockAdapterEmpty(t *testing.T) {
	m := &MockAdapter{}
	_, err := m.Generate(context.Background(), "Summarize:\n\n   ", DefaultGeneration())
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("got %v, want ErrEmptyCompletion", err)
	}
}

func TestMockAdapterContextCancel(t *testing.T) {
	m := &MockAdapter{Delay: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, "hello", DefaultGeneration())
	if !IsUnavailable(err) {
		t.Errorf("expected unavailable error on cancelled context, got %v", err)
	}
}

func TestMockAdapterAvailable(t *testing.T) {
	m := &MockAdapter{}
	if !m.Available() {
		t.Error("mock adapter should always be available")
	}
}

func TestMockAdapterName(t *testing.T) {
	m := &MockAdapter{}
	if m.Name() != "Mock" {
		t.Errorf("got %q, want %q", m.Name(), "Mock")
	}
}
