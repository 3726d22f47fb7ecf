package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger is anything the health endpoints can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Component is one named dependency reported by /health. Required components
// also gate /ready.
type Component struct {
	Name     string
	Probe    Pinger
	Required bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []Component
	version    string
	timeout    time.Duration
}

// NewHealthHandler creates a HealthHandler reporting the given components in
// order.
func NewHealthHandler(version string, components ...Component) *HealthHandler {
	return &HealthHandler{components: components, version: version, timeout: 3 * time.Second}
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
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every required component answers,
// 503 otherwise. Optional components are not probed.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.check(r.Context(), true)
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health probes every component and reports latency per component. A failing
// optional component degrades the status without failing the check.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.check(r.Context(), false)
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// check returns "ok", "degraded" or "down".
func (h *HealthHandler) check(ctx context.Context, requiredOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	overall := "ok"
	components := make(map[string]CompStatus, len(h.components))

	for _, c := range h.components {
		if requiredOnly && !c.Required {
			continue
		}

		start := time.Now()
		err := c.Probe.Ping(ctx)
		if err == nil {
			components[c.Name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
			continue
		}

		components[c.Name] = CompStatus{Status: "down", Error: err.Error()}
		switch {
		case c.Required:
			overall = "down"
		case overall == "ok":
			overall = "degraded"
		}
	}

	return overall, components
}

func httpStatus(health string) int {
	if health == "down" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
