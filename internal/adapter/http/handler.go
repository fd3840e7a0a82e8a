package httpadapter

import (
	"loyalty-campaigns/internal/core/port"
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the usecase ports and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling.
//
// The /api/v1 surface is the campaign management API; /t is the
// unauthenticated engagement-signal surface hit by tracking pixels and
// links from end-user clients.
type Handler struct {
	campaigns  port.CampaignUseCase
	engagement port.EngagementUseCase
	analytics  port.AnalyticsUseCase
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, engagement port.EngagementUseCase, analytics port.AnalyticsUseCase, logger *slog.Logger) *Handler {
	h := &Handler{
		campaigns:  campaigns,
		engagement: engagement,
		analytics:  analytics,
		logger:     logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Post("/preview", h.handlePreviewAudience)
			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Post("/schedule", h.handleScheduleCampaign)
				r.Patch("/status", h.handleUpdateCampaignStatus)
				r.Get("/deliveries", h.handleListDeliveries)
				r.Get("/metrics", h.handleCampaignMetrics)
			})
		})
		r.Route("/metrics", func(r chi.Router) {
			r.Get("/overview", h.handleMetricsOverview)
			r.Get("/by-type", h.handleMetricsByType)
			r.Get("/top", h.handleTopCampaigns)
		})
	})

	r.Route("/t", func(r chi.Router) {
		r.Get("/open/{deliveryID}", h.handleTrackOpen)
		r.Get("/click/{deliveryID}", h.handleTrackClick)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
