// Package handler provides HTTP request handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/middleware"
	"github.com/waselhq/wasel/internal/repository"
	"github.com/waselhq/wasel/internal/service"
)

const (
	errorCodeNotFound          = "NOT_FOUND"
	errorCodeInvalidRequest    = "INVALID_REQUEST"
	errorCodeValidation        = "VALIDATION_FAILED"
	errorCodeConflict          = "CONFLICT"
	errorCodeForbidden         = "FORBIDDEN"
	errorCodeMalformedAudience = "MALFORMED_AUDIENCE"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates the handler set backing the API routes.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// sendServiceError maps domain errors onto the HTTP error taxonomy.
// Unknown errors are logged and masked as 500.
func (h *Handler) sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrCampaignNotFound),
		errors.Is(err, repository.ErrInstanceNotFound),
		errors.Is(err, repository.ErrMerchantNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, err.Error())

	case errors.Is(err, service.ErrMalformedAudience):
		h.sendError(w, r, http.StatusBadRequest, errorCodeMalformedAudience, err.Error())

	case errors.Is(err, service.ErrCampaignNotEditable),
		errors.Is(err, service.ErrNoRecipients),
		errors.Is(err, service.ErrNoActiveInstance),
		errors.Is(err, service.ErrSoleActiveInstance):
		h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeValidation, err.Error())

	case errors.Is(err, service.ErrInstanceIDInUse):
		h.sendError(w, r, http.StatusConflict, errorCodeConflict, err.Error())

	case errors.Is(err, service.ErrMerchantNotActive),
		errors.Is(err, service.ErrNotOwned):
		h.sendError(w, r, http.StatusForbidden, errorCodeForbidden, err.Error())

	default:
		h.logger.Error("Request failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, middleware.ErrorMessageInternal)
	}
}

// decodeBody parses a JSON request body; a false return means the error
// response was already written.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Invalid JSON body")
		return false
	}
	return true
}

// pathID parses the {id} route parameter; a false return means the error
// response was already written.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
