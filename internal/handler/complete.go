package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/mlorentedev/writeai/internal/gateway"
	"github.com/mlorentedev/writeai/internal/task"
)

const maxTextLength = 10000

type completeRequest struct {
	Task     string `json:"task"`
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	Tone     string `json:"tone,omitempty"`
}

type completeResponse struct {
	Output    string `json:"output"`
	Task      string `json:"task"`
	Model     string `json:"model"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

func Complete(gw *gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req completeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if n := utf8.RuneCountInString(req.Text); n > maxTextLength {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: fmt.Sprintf("text too long: %d characters (max %d)", n, maxTextLength),
				Kind:  gateway.KindInvalidInput.String(),
				Hint:  "Shorten the text and try again.",
			})
			return
		}

		// Unknown names go through as-is so the gateway reports empty input
		// ahead of an unsupported task.
		t, err := task.ParseTask(req.Task)
		if err != nil {
			t = task.Task(req.Task)
		}

		res, err := gw.Complete(r.Context(), gateway.Request{
			Task:   t,
			Params: task.Params{Language: req.Language, Tone: req.Tone},
			Text:   req.Text,
		})
		if err != nil {
			writeFailure(w, err)
			return
		}

		writeJSON(w, http.StatusOK, completeResponse{
			Output:    res.Text,
			Task:      string(res.Task),
			Model:     res.Model,
			ElapsedMs: res.Elapsed.Milliseconds(),
		})
	}
}
