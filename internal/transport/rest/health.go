package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// sourcePinger defines the minimal interface for transcript source checks.
type sourcePinger interface {
	Ping(ctx context.Context) error
}

// cacheStats exposes word-cache counters for the health report.
type cacheStats interface {
	Len() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	source    sourcePinger
	cache     cacheStats
	generator bool
	version   string
}

// NewHealthHandler creates a HealthHandler. generator reports whether an
// external content generator is configured; without one the service runs
// on heuristic enrichment only.
func NewHealthHandler(source sourcePinger, cache cacheStats, generator bool, version string) *HealthHandler {
	return &HealthHandler{source: source, cache: cache, generator: generator, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Entries int    `json:"entries,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the transcript source: 200 if OK,
// 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.source.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: transcript source with latency, word
// cache size, generator availability, and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.source.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["transcript_source"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["transcript_source"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	components["word_cache"] = CompStatus{
		Status:  "ok",
		Entries: h.cache.Len(),
	}

	generatorStatus := "ok"
	if !h.generator {
		// "off" means the service runs on heuristic enrichment only.
		generatorStatus = "off"
	}
	components["generator"] = CompStatus{Status: generatorStatus}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
