// Package gateway turns a task request into exactly one upstream completion
// call and classifies the outcome.
//
// The gateway holds no per-caller state. Callers keep at most one request in
// flight and, if they overlap anyway, let the last response to resolve win.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mlorentedev/writeai/internal/adapter"
	"github.com/mlorentedev/writeai/internal/logging"
	"github.com/mlorentedev/writeai/internal/metrics"
	"github.com/mlorentedev/writeai/internal/task"
)

// Request is built fresh for every call.
type Request struct {
	Task   task.Task
	Params task.Params
	Text   string
}

// Result is a successful completion.
type Result struct {
	Text    string
	Task    task.Task
	Model   string
	Elapsed time.Duration
}

// Gateway issues completions through a single backend adapter.
type Gateway struct {
	backend adapter.LLMAdapter
	gen     adapter.GenerationConfig
	logger  *slog.Logger
}

type Option func(*Gateway)

// WithLogger overrides slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

func New(backend adapter.LLMAdapter, opts ...Option) *Gateway {
	g := &Gateway{
		backend: backend,
		gen:     adapter.DefaultGeneration(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Backend returns the adapter completions are sent through.
func (g *Gateway) Backend() adapter.LLMAdapter {
	return g.backend
}

// Complete validates req, renders its instruction and sends it upstream once.
// Every failure is an *Error carrying its Kind. The returned text is exactly
// what the backend produced.
func (g *Gateway) Complete(ctx context.Context, req Request) (Result, error) {
	log := g.logger.With("task", string(req.Task), "request_id", logging.RequestIDFromContext(ctx))

	if strings.TrimSpace(req.Text) == "" {
		return Result{}, g.fail(log, req.Task, &Error{Kind: KindInvalidInput, Err: ErrInvalidInput})
	}

	prompt, err := task.Render(req.Task, req.Params, req.Text)
	if err != nil {
		return Result{}, g.fail(log, req.Task, classified(err))
	}

	inputChars := utf8.RuneCountInString(req.Text)
	metrics.InputChars.Observe(float64(inputChars))
	model := g.backend.Name()

	start := time.Now()
	text, err := g.backend.Generate(ctx, prompt, g.gen)
	elapsed := time.Since(start)
	metrics.CompletionDuration.WithLabelValues(taskLabel(req.Task), model).Observe(elapsed.Seconds())

	if err != nil {
		return Result{}, g.fail(log.With("model", model, "elapsed_ms", elapsed.Milliseconds()), req.Task, classified(fmt.Errorf("complete: %w", err)))
	}
	if text == "" {
		return Result{}, g.fail(log.With("model", model, "elapsed_ms", elapsed.Milliseconds()), req.Task,
			&Error{Kind: KindEmptyCompletion, Err: fmt.Errorf("complete: %s: %w", model, adapter.ErrEmptyCompletion)})
	}

	log.Info("completion",
		"model", model,
		"input_chars", inputChars,
		"output_chars", utf8.RuneCountInString(text),
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return Result{Text: text, Task: req.Task, Model: model, Elapsed: elapsed}, nil
}

func (g *Gateway) fail(log *slog.Logger, t task.Task, err *Error) *Error {
	metrics.CompletionFailures.WithLabelValues(taskLabel(t), err.Kind.String()).Inc()
	if err.Kind.TryLater() {
		log.Warn("completion failed", "kind", err.Kind.String(), "status", err.StatusCode(), "error", err.Err)
	} else {
		log.Info("completion rejected", "kind", err.Kind.String(), "error", err.Err)
	}
	return err
}

// taskLabel keeps arbitrary caller input out of metric labels.
func taskLabel(t task.Task) string {
	if t.Valid() {
		return string(t)
	}
	return "unknown"
}
