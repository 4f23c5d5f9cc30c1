package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/waselhq/wasel/internal/handler"
	"github.com/waselhq/wasel/internal/middleware"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	// Tenant routes require merchant identity.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.MerchantID)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.CreateCampaign)
			r.Get("/", h.ListCampaigns)
			r.Get("/stats", h.GetCampaignStats)
			r.Get("/timeline", h.GetCampaignTimeline)
			r.Post("/filter-customers", h.FilterCustomers)
			r.Get("/{id}", h.GetCampaign)
			r.Patch("/{id}", h.UpdateCampaign)
			r.Delete("/{id}", h.DeleteCampaign)
			r.Post("/{id}/send", h.SendCampaign)
			r.Get("/{id}/report", h.GetCampaignReport)
		})

		r.Route("/instances", func(r chi.Router) {
			r.Post("/", h.RegisterInstance)
			r.Get("/", h.ListInstances)
			r.Post("/test", h.TestInstanceConnection)
			r.Get("/stats", h.GetInstanceStats)
			r.Get("/expiring", h.GetExpiringInstances)
			r.Patch("/{id}", h.UpdateInstance)
			r.Post("/{id}/primary", h.SetPrimaryInstance)
			r.Delete("/{id}", h.DeleteInstance)
		})
	})

	return r
}
