package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlorentedev/writeai/internal/adapter"
	"github.com/mlorentedev/writeai/internal/config"
	"github.com/mlorentedev/writeai/internal/gateway"
	"github.com/mlorentedev/writeai/internal/logging"
	"github.com/mlorentedev/writeai/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock adapter instead of a real LLM backend")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	if err := run(*configPath, *useMock, *port); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, useMock bool, port int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Port = port
	}
	if useMock {
		cfg.Backend = config.BackendMock
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	backend := buildAdapter(cfg)
	gw := gateway.New(backend, gateway.WithLogger(logger))
	slog.Info("backend configured", "backend", cfg.Backend, "name", backend.Name(), "timeout", cfg.UpstreamTimeout)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.SetupMux(gw, cfg.UpstreamTimeout+5*time.Second),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		slog.Info("writeai api listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-done:
	}
	slog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func buildAdapter(cfg config.Config) adapter.LLMAdapter {
	client := &http.Client{Timeout: cfg.UpstreamTimeout}

	switch cfg.Backend {
	case config.BackendMock:
		return &adapter.MockAdapter{Delay: 500 * time.Millisecond}
	case config.BackendClaude:
		return &adapter.ClaudeAdapter{APIKey: cfg.ClaudeAPIKey, Model: cfg.ClaudeModel, Client: client}
	case config.BackendOllama:
		return &adapter.OllamaAdapter{BaseURL: cfg.OllamaURL, Model: cfg.OllamaModel, Client: client}
	case config.BackendLlamaCpp:
		return &adapter.LlamaCppAdapter{BaseURL: cfg.LlamaCppURL, Model: cfg.LlamaCppModel, Client: client}
	default:
		return &adapter.GeminiAdapter{BaseURL: cfg.GeminiURL, APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel, Client: client}
	}
}
