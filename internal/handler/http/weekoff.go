package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samar-devp/workforce-backend-go/internal/domain/weekoff"
	"github.com/samar-devp/workforce-backend-go/internal/handler/http/response"
)

type WeekOffPolicyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WeekOffPolicyHandlerImpl struct {
	policyService weekoff.PolicyService
}

func NewWeekOffPolicyHandler(policyService weekoff.PolicyService) WeekOffPolicyHandler {
	return &WeekOffPolicyHandlerImpl{policyService: policyService}
}

// Create implements WeekOffPolicyHandler.
func (h *WeekOffPolicyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req weekoff.CreatePolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.policyService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create week-off policy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Week-off policy created", resp)
}

// GetByID implements WeekOffPolicyHandler.
func (h *WeekOffPolicyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.policyService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements WeekOffPolicyHandler.
func (h *WeekOffPolicyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	resp, err := h.policyService.List(r.Context(), activeOnly)
	if err != nil {
		slog.Error("List week-off policies service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements WeekOffPolicyHandler.
func (h *WeekOffPolicyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req weekoff.UpdatePolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.policyService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update week-off policy service error", "error", err, "policy_id", req.ID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Delete implements WeekOffPolicyHandler.
func (h *WeekOffPolicyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.policyService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete week-off policy service error", "error", err, "policy_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week-off policy deleted", nil)
}
