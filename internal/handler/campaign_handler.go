package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/waselhq/wasel/internal/middleware"
	"github.com/waselhq/wasel/internal/service"
)

// CreateCampaign handles POST /campaigns.
func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())

	var input service.CreateCampaignInput
	if !h.decodeBody(w, r, &input) {
		return
	}
	if input.Name == "" || input.Message == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Name and message are required")
		return
	}

	campaign, err := h.service.Campaign.Create(merchantID, input)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, campaign)
}

// ListCampaigns handles GET /campaigns.
func (h *Handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())

	campaigns, err := h.service.Campaign.List(merchantID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, campaigns)
}

// GetCampaign handles GET /campaigns/{id}.
func (h *Handler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	campaign, err := h.service.Campaign.Get(id, merchantID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, campaign)
}

// UpdateCampaign handles PATCH /campaigns/{id}.
func (h *Handler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var input service.UpdateCampaignInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	if err := h.service.Campaign.Update(id, merchantID, input); err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	campaign, err := h.service.Campaign.Get(id, merchantID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, campaign)
}

// DeleteCampaign handles DELETE /campaigns/{id}.
func (h *Handler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Campaign.SoftDelete(id, merchantID); err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SendCampaign handles POST /campaigns/{id}/send. It acknowledges the
// dispatch; delivery outcomes appear in the report later.
func (h *Handler) SendCampaign(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Campaign.Send(id, merchantID)
	if err != nil {
		// A send race or resend of a finished campaign is a conflict,
		// not a validation failure.
		if errors.Is(err, service.ErrCampaignNotEditable) {
			h.sendError(w, r, http.StatusConflict, errorCodeConflict, err.Error())
			return
		}
		h.sendServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, result)
}

// GetCampaignReport handles GET /campaigns/{id}/report.
func (h *Handler) GetCampaignReport(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	report, err := h.service.Campaign.GetReport(id, merchantID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, report)
}

// GetCampaignStats handles GET /campaigns/stats.
func (h *Handler) GetCampaignStats(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())

	stats, err := h.service.Campaign.GetStats(merchantID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, stats)
}

// GetCampaignTimeline handles GET /campaigns/timeline?days=N.
func (h *Handler) GetCampaignTimeline(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Invalid days parameter")
			return
		}
		days = parsed
	}

	timeline, err := h.service.Campaign.GetTimelineData(merchantID, days)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, timeline)
}

// FilterCustomers handles POST /campaigns/filter-customers. It previews
// the audience a criteria object would reach at send time.
func (h *Handler) FilterCustomers(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())

	var criteria service.FilterCriteria
	if !h.decodeBody(w, r, &criteria) {
		return
	}

	result, err := h.service.Campaign.FilterCustomers(merchantID, criteria)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}
