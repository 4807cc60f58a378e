package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlorentedev/writeai/internal/gateway"
	"github.com/mlorentedev/writeai/internal/handler"
	"github.com/mlorentedev/writeai/internal/middleware"
)

// SetupMux wires handlers with the full middleware chain. The request
// timeout should exceed the backend client timeout so upstream failures
// surface as classified errors rather than a bare timeout.
func SetupMux(gw *gateway.Gateway, requestTimeout time.Duration) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health(gw.Backend()))
	mux.HandleFunc("/api/tasks", handler.Tasks())
	mux.HandleFunc("/api/complete", handler.Complete(gw))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux, requestTimeout)
}
