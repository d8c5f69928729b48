package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/notifyhub/regionhealth/internal/api/handler"
	apimw "github.com/notifyhub/regionhealth/internal/api/middleware"
)

// HealthPath is where the liveness document is served.
const HealthPath = "/health"

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
// A nil clock means time.Now.
func NewRouter(region string, clock func() time.Time, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.RealIP)  // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.GetHead) // HEAD probes are answered by the GET handler
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger, HealthPath))
	r.Use(apimw.Recoverer(logger)) // inside the logger so recovered 500s are logged

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	hh := handler.NewHealthHandler(region, clock)

	r.Get(HealthPath, hh.Health)

	return r
}
