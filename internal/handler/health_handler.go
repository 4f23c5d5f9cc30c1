package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/waselhq/wasel/internal/service"
)

// HealthResponse is the health endpoint body.
type HealthResponse struct {
	Status               string    `json:"status"`
	Timestamp            time.Time `json:"timestamp"`
	DatabaseStatus       string    `json:"database_status"`
	RedisStatus          string    `json:"redis_status"`
	CampaignSweepStatus  string    `json:"campaign_sweep_status"`
	ExpirySweepStatus    string    `json:"expiry_sweep_status"`
	CircuitBreakerState  string    `json:"circuit_breaker_state"`
	CircuitBreakerCounts string    `json:"circuit_breaker_counts"`
}

// HealthCheck handles GET /health. Degraded still answers 200 so
// monitors can read the breaker state while the API is usable.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := HealthResponse{
		Status:               health.Status,
		Timestamp:            time.Now(),
		DatabaseStatus:       health.DatabaseStatus,
		RedisStatus:          health.RedisStatus,
		CampaignSweepStatus:  health.CampaignSweepStatus,
		ExpirySweepStatus:    health.ExpirySweepStatus,
		CircuitBreakerState:  string(health.CircuitBreakerState),
		CircuitBreakerCounts: health.CircuitBreakerCounts,
	}

	if health.Status == service.StatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}
