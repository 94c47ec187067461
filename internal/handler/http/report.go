package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
	"github.com/samar-devp/workforce-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ComputeMonth(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// ComputeMonth implements ReportHandler.
func (h *ReportHandlerImpl) ComputeMonth(w http.ResponseWriter, r *http.Request) {
	req := report.ComputeMonthRequest{
		EmployeeID: chi.URLParam(r, "id"),
		Month:      parseIntQuery(r, "month", 0),
		Year:       parseIntQuery(r, "year", 0),
		Scope:      report.Scope(r.URL.Query().Get("scope")),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.reportService.ComputeMonth(r.Context(), req)
	if err != nil {
		slog.Error("Compute monthly report service error",
			"error", err,
			"employee_id", req.EmployeeID,
			"month", req.Month,
			"year", req.Year,
		)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
