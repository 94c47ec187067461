package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samar-devp/workforce-backend-go/internal/domain/leave"
	"github.com/samar-devp/workforce-backend-go/internal/handler/http/response"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	CreateType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateType implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.leaveService.CreateType(r.Context(), req)
	if err != nil {
		slog.Error("Create leave type service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created", resp)
}

// ListTypes implements LeaveHandler.
func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	resp, err := h.leaveService.ListTypes(r.Context(), activeOnly)
	if err != nil {
		slog.Error("List leave types service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateApplicationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application submitted", resp)
}

// GetApplication implements LeaveHandler.
func (h *LeaveHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.GetApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListApplications implements LeaveHandler.
func (h *LeaveHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	filter := leave.ApplicationFilter{
		Page:  parseIntQuery(r, "page", 1),
		Limit: parseIntQuery(r, "limit", 20),
	}
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		filter.UserID = &raw
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		filter.Status = &raw
	}
	if raw := r.URL.Query().Get("from_date"); raw != "" {
		if t, ok := validator.IsValidDate(raw); ok {
			filter.FromDate = &t
		}
	}
	if raw := r.URL.Query().Get("to_date"); raw != "" {
		if t, ok := validator.IsValidDate(raw); ok {
			filter.ToDate = &t
		}
	}

	resp, err := h.leaveService.ListApplications(r.Context(), filter)
	if err != nil {
		slog.Error("List leave applications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Applications, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.Decide(r.Context(), id, true); err != nil {
		slog.Error("Approve leave application service error", "error", err, "application_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application approved", nil)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.Decide(r.Context(), id, false); err != nil {
		slog.Error("Reject leave application service error", "error", err, "application_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application rejected", nil)
}
