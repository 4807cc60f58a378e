package middleware

import (
	"net/http"
	"strconv"

	"github.com/mlorentedev/writeai/internal/metrics"
)

var knownPaths = map[string]bool{
	"/api/complete": true,
	"/api/tasks":    true,
	"/api/health":   true,
	"/metrics":      true,
}

// Metrics records request count by method, path, and status code.
// Unrouted paths share the "other" label.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		path := r.URL.Path
		if !knownPaths[path] {
			path = "other"
		}
		metrics.RequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).Inc()
	})
}
