package adapter

import (
	"context"
	"errors"
	"fmt"
)

// LLMAdapter defines the contract for completion backends.
type LLMAdapter interface {
	Name() string
	// Generate makes one upstream call. It returns non-empty text or an
	// error; a body without usable text is ErrEmptyCompletion.
	Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
	Available() bool
}

// GenerationConfig carries the sampling options sent with every request.
type GenerationConfig struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

// Fixed sampling options. They are not user configurable.
const (
	DefaultTemperature     = 0.7
	DefaultTopK            = 40
	DefaultTopP            = 0.95
	DefaultMaxOutputTokens = 1024
)

// DefaultGeneration returns the fixed generation config.
func DefaultGeneration() GenerationConfig {
	return GenerationConfig{
		Temperature:     DefaultTemperature,
		TopK:            DefaultTopK,
		TopP:            DefaultTopP,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

// ErrEmptyCompletion is returned when the upstream call succeeded but the
// body held no usable text.
var ErrEmptyCompletion = errors.New("empty completion")

// UnavailableError reports a transport failure or a non-success status
// from the upstream service.
type UnavailableError struct {
	Backend    string
	StatusCode int    // 0 when no response was received
	Message    string // upstream error message, if any
	Err        error
}

func (e *UnavailableError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: upstream status %d: %s", e.Backend, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: upstream status %d", e.Backend, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: request: %v", e.Backend, e.Err)
	default:
		return fmt.Sprintf("%s: unavailable", e.Backend)
	}
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err carries an *UnavailableError.
func IsUnavailable(err error) bool {
	var u *UnavailableError
	return errors.As(err, &u)
}
