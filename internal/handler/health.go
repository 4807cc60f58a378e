package handler

import (
	"net/http"

	"github.com/mlorentedev/writeai/internal/adapter"
	"github.com/mlorentedev/writeai/internal/metrics"
)

type backendStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status  string        `json:"status"`
	Backend backendStatus `json:"backend"`
}

// Health reports process liveness together with backend readiness. It
// always answers 200; an unavailable backend is reported, not fatal.
func Health(backend adapter.LLMAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := backendStatus{Name: backend.Name(), Available: backend.Available()}
		if !s.Available {
			s.Reason = unavailableReason(backend)
		}

		gauge := 0.0
		if s.Available {
			gauge = 1
		}
		metrics.BackendAvailable.WithLabelValues(s.Name).Set(gauge)

		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Backend: s})
	}
}

func unavailableReason(a adapter.LLMAdapter) string {
	switch a.(type) {
	case *adapter.GeminiAdapter, *adapter.ClaudeAdapter:
		return "no API key"
	case *adapter.OllamaAdapter:
		return "ollama unreachable"
	case *adapter.LlamaCppAdapter:
		return "llama-server unreachable"
	default:
		return "unavailable"
	}
}
