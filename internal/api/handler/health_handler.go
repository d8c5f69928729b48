package handler

import (
	"net/http"
	"time"

	"github.com/notifyhub/regionhealth/internal/domain"
)

// HealthHandler serves the liveness probe endpoint.
type HealthHandler struct {
	region string
	now    func() time.Time
}

// NewHealthHandler returns a handler reporting region. A nil now falls back
// to time.Now.
func NewHealthHandler(region string, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{region: region, now: now}
}

// Health handles GET /health
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.HealthStatus
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.NewHealthStatus(h.now(), h.region))
}
