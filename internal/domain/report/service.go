package report

import (
	"context"
)

type ReportService interface {
	// ComputeMonth classifies every calendar day of (month, year) for the
	// employee and returns the aggregated payable-day summary.
	ComputeMonth(ctx context.Context, req ComputeMonthRequest) (MonthlySummary, error)
}
