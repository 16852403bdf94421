package http

import (
	"encoding/json"
	"net/http"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/availability"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AvailabilityHandler interface {
	ListPatterns(w http.ResponseWriter, r *http.Request)
	CreatePattern(w http.ResponseWriter, r *http.Request)
	UpdatePattern(w http.ResponseWriter, r *http.Request)
	CreateException(w http.ResponseWriter, r *http.Request)
	ApproveException(w http.ResponseWriter, r *http.Request)
	DeleteException(w http.ResponseWriter, r *http.Request)
	ResolveDay(w http.ResponseWriter, r *http.Request)
}

type availabilityHandlerImpl struct {
	availabilityService availability.AvailabilityService
}

func NewAvailabilityHandler(availabilityService availability.AvailabilityService) AvailabilityHandler {
	return &availabilityHandlerImpl{availabilityService: availabilityService}
}

// ListPatterns implements AvailabilityHandler
func (h *availabilityHandlerImpl) ListPatterns(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}
	activeOnly := r.URL.Query().Get("active_only") == "true"

	results, err := h.availabilityService.ListPatterns(r.Context(), employeeID, activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreatePattern implements AvailabilityHandler
func (h *availabilityHandlerImpl) CreatePattern(w http.ResponseWriter, r *http.Request) {
	var req availability.CreatePatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.availabilityService.CreatePattern(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pattern created", result)
}

// UpdatePattern implements AvailabilityHandler
func (h *availabilityHandlerImpl) UpdatePattern(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Pattern ID is required", nil)
		return
	}

	var req availability.UpdatePatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.availabilityService.UpdatePattern(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pattern updated", nil)
}

// CreateException implements AvailabilityHandler
func (h *availabilityHandlerImpl) CreateException(w http.ResponseWriter, r *http.Request) {
	var req availability.CreateExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.availabilityService.CreateException(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Exception created", result)
}

// ApproveException implements AvailabilityHandler
func (h *availabilityHandlerImpl) ApproveException(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Exception ID is required", nil)
		return
	}

	if err := h.availabilityService.ApproveException(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exception approved", nil)
}

// DeleteException implements AvailabilityHandler
func (h *availabilityHandlerImpl) DeleteException(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Exception ID is required", nil)
		return
	}

	if err := h.availabilityService.DeleteException(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exception deleted", nil)
}

// ResolveDay implements AvailabilityHandler
func (h *availabilityHandlerImpl) ResolveDay(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	date := r.URL.Query().Get("date")
	if employeeID == "" || date == "" {
		response.BadRequest(w, "employee_id and date are required", nil)
		return
	}

	result, err := h.availabilityService.ResolveDay(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
