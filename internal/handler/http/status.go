package http

import (
	"encoding/json"
	"net/http"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/status"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StatusHandler interface {
	ListStatuses(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	CreateStatus(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type statusHandlerImpl struct {
	statusService status.StatusService
}

func NewStatusHandler(statusService status.StatusService) StatusHandler {
	return &statusHandlerImpl{statusService: statusService}
}

// ListStatuses implements StatusHandler
func (h *statusHandlerImpl) ListStatuses(w http.ResponseWriter, r *http.Request) {
	results, err := h.statusService.ListStatuses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetStatus implements StatusHandler
func (h *statusHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Status code is required", nil)
		return
	}

	result, err := h.statusService.GetStatus(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateStatus implements StatusHandler
func (h *statusHandlerImpl) CreateStatus(w http.ResponseWriter, r *http.Request) {
	var req status.CreateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.statusService.CreateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Status created", result)
}

// UpdateStatus implements StatusHandler
func (h *statusHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Status code is required", nil)
		return
	}

	var req status.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.statusService.UpdateStatus(r.Context(), code, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Status updated", nil)
}
