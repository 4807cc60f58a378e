package handler

import (
	"net/http"

	"github.com/mlorentedev/writeai/internal/task"
)

func Tasks() http.HandlerFunc {
	catalog := task.Catalog()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog)
	}
}
