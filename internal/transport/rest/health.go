package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	version string
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, timeout: 3 * time.Second}
}

// HealthResponse is the JSON response of every probe.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Service    string                     `json:"service,omitempty"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the status of one dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while the session store is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	writeJSON(w, statusCode(db), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports each dependency with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	writeJSON(w, statusCode(db), HealthResponse{
		Status:     db.Status,
		Service:    "language-learning",
		Version:    h.version,
		Components: map[string]ComponentStatus{"database": db},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return ComponentStatus{Status: "down"}
	}
	return ComponentStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(c ComponentStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
