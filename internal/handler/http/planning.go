package http

import (
	"encoding/json"
	"net/http"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/planning"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PlanningHandler interface {
	ListGenerations(w http.ResponseWriter, r *http.Request)
	GetGeneration(w http.ResponseWriter, r *http.Request)
	StartGeneration(w http.ResponseWriter, r *http.Request)
	CompleteGeneration(w http.ResponseWriter, r *http.Request)
	FailGeneration(w http.ResponseWriter, r *http.Request)
	ApplyGeneration(w http.ResponseWriter, r *http.Request)
}

type planningHandlerImpl struct {
	planningService planning.PlanningService
}

func NewPlanningHandler(planningService planning.PlanningService) PlanningHandler {
	return &planningHandlerImpl{planningService: planningService}
}

// ListGenerations implements PlanningHandler
func (h *planningHandlerImpl) ListGenerations(w http.ResponseWriter, r *http.Request) {
	results, err := h.planningService.ListGenerations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetGeneration implements PlanningHandler
func (h *planningHandlerImpl) GetGeneration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Generation ID is required", nil)
		return
	}

	result, err := h.planningService.GetGeneration(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StartGeneration implements PlanningHandler
func (h *planningHandlerImpl) StartGeneration(w http.ResponseWriter, r *http.Request) {
	var req planning.StartGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.planningService.StartGeneration(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Generation started", result)
}

// CompleteGeneration implements PlanningHandler
func (h *planningHandlerImpl) CompleteGeneration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Generation ID is required", nil)
		return
	}

	var req planning.CompleteGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.planningService.CompleteGeneration(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Generation completed", nil)
}

// FailGeneration implements PlanningHandler
func (h *planningHandlerImpl) FailGeneration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Generation ID is required", nil)
		return
	}

	if err := h.planningService.FailGeneration(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Generation marked failed", nil)
}

// ApplyGeneration implements PlanningHandler
func (h *planningHandlerImpl) ApplyGeneration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Generation ID is required", nil)
		return
	}

	if err := h.planningService.ApplyGeneration(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Generation applied", nil)
}
