package api

import (
	"net/http"
	"time"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/api/respond"
)

// HealthHandler reports the aggregated dependency health.
type HealthHandler struct {
	healthy   func() bool
	unhealthy func() []string
}

// NewHealthHandler builds a handler around the service health functions.
// Either may be nil.
func NewHealthHandler(healthy func() bool, unhealthy func() []string) *HealthHandler {
	if healthy == nil {
		healthy = func() bool { return true }
	}
	return &HealthHandler{healthy: healthy, unhealthy: unhealthy}
}

// CheckHealth handles GET /api/health
// Always returns 200; body reports healthy/unhealthy.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "unhealthy"
	if h.healthy() {
		status = "healthy"
	}
	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if status == "unhealthy" && h.unhealthy != nil {
		response["failing"] = h.unhealthy()
	}
	respond.WriteJSON(w, http.StatusOK, response)
}
