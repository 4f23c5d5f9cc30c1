package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/waselhq/wasel/internal/middleware"
	"github.com/waselhq/wasel/internal/service"
)

// RegisterInstance handles POST /instances.
func (h *Handler) RegisterInstance(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())

	var input service.RegisterInstanceInput
	if !h.decodeBody(w, r, &input) {
		return
	}
	if input.InstanceID == "" || input.Token == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Instance id and token are required")
		return
	}

	instance, err := h.service.Instance.Register(merchantID, input)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, instance)
}

// ListInstances handles GET /instances.
func (h *Handler) ListInstances(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())

	instances, err := h.service.Instance.List(merchantID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, instances)
}

// UpdateInstance handles PATCH /instances/{id}.
func (h *Handler) UpdateInstance(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var input service.UpdateInstanceInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	instance, err := h.service.Instance.Update(id, merchantID, input)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, instance)
}

// SetPrimaryInstance handles POST /instances/{id}/primary.
func (h *Handler) SetPrimaryInstance(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Instance.SetPrimary(id, merchantID); err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"id":         id,
		"is_primary": true,
	})
}

// DeleteInstance handles DELETE /instances/{id}.
func (h *Handler) DeleteInstance(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Instance.Delete(id, merchantID); err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TestInstanceConnection handles POST /instances/test. Provider-side
// failures are classified results with a 200 status, not errors.
func (h *Handler) TestInstanceConnection(w http.ResponseWriter, r *http.Request) {
	var input service.TestConnectionInput
	if !h.decodeBody(w, r, &input) {
		return
	}
	if input.InstanceID == "" || input.Token == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Instance id and token are required")
		return
	}

	render.JSON(w, r, h.service.Instance.TestConnection(input))
}

// GetInstanceStats handles GET /instances/stats.
func (h *Handler) GetInstanceStats(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())

	stats, err := h.service.Instance.GetStats(merchantID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, stats)
}

// GetExpiringInstances handles GET /instances/expiring.
func (h *Handler) GetExpiringInstances(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())

	expiring, err := h.service.Instance.GetExpiring(merchantID, time.Now())
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, expiring)
}
