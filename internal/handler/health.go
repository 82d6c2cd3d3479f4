package handler

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}

// Health returns the health status of the service
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services := map[string]string{
		"email": h.cfg.Email.Provider,
	}

	// Redis is only a dependency when rate limiting is on
	status := "healthy"
	if h.rdb != nil {
		if err := h.rdb.HealthCheck(ctx); err != nil {
			services["redis"] = "unhealthy"
			status = "degraded"
		} else {
			services["redis"] = "healthy"
		}
	}

	resp := HealthResponse{
		Status:   status,
		Version:  Version,
		Services: services,
	}

	w.Header().Set("Content-Type", "application/json")
	if status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(resp)
}

// Ready returns whether the service is ready to accept requests
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.rdb != nil {
		if err := h.rdb.HealthCheck(r.Context()); err != nil {
			http.Error(w, "redis not ready", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Version is reported by the health endpoint
const Version = "0.1.0"
