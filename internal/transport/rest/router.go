package rest

import "net/http"

// NewRouter wires the REST endpoints onto a ServeMux.
func NewRouter(lessons *LessonHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/lesson", lessons.Generate)

	mux.HandleFunc("GET /healthz", health.Live)
	mux.HandleFunc("GET /readyz", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return mux
}
