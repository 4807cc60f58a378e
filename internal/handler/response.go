package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mlorentedev/writeai/internal/gateway"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Hint  string `json:"hint,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

// writeFailure renders a classified completion failure. Input problems map
// to 400, upstream problems to 502.
func writeFailure(w http.ResponseWriter, err error) {
	kind := gateway.Classify(err)
	code := http.StatusBadRequest
	if kind.TryLater() {
		code = http.StatusBadGateway
	}
	writeJSON(w, code, errorResponse{
		Error: err.Error(),
		Kind:  kind.String(),
		Hint:  kind.Hint(),
	})
}
