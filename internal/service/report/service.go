package report

import (
	"context"
	"log/slog"

	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	snapshotRepo report.SnapshotRepository
	engine       *Engine
	log          *slog.Logger
}

func NewReportService(snapshotRepo report.SnapshotRepository, log *slog.Logger) report.ReportService {
	return &ReportServiceImpl{
		snapshotRepo: snapshotRepo,
		engine:       NewEngine(log),
		log:          log,
	}
}

func (s *ReportServiceImpl) ComputeMonth(ctx context.Context, req report.ComputeMonthRequest) (report.MonthlySummary, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlySummary{}, err
	}

	snap, err := s.snapshotRepo.LoadMonthSnapshot(ctx, req.EmployeeID, req.Month, req.Year, req.Scope)
	if err != nil {
		return report.MonthlySummary{}, err
	}
	if snap.Employee.JoiningDate.IsZero() {
		return report.MonthlySummary{}, report.ErrMissingProfile
	}

	summary, err := s.engine.ComputeMonth(ctx, snap, req.Month, req.Year)
	if err != nil {
		return report.MonthlySummary{}, err
	}

	s.log.Debug("computed monthly report",
		slog.String("employee_id", req.EmployeeID),
		slog.Int("month", req.Month),
		slog.Int("year", req.Year),
		slog.String("payable_days", summary.PayableDays.String()),
	)

	return *summary, nil
}
