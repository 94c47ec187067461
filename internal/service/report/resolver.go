package report

import (
	"log/slog"
	"sort"
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/domain/leave"
	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// policyResolver answers the three per-day predicates over one snapshot:
// is-week-off, is-holiday and in-approved-leave.
type policyResolver struct {
	snap   report.Snapshot
	leaves []leave.Application
}

func newPolicyResolver(snap report.Snapshot, log *slog.Logger) *policyResolver {
	// Keep only approved leaves with a sane range; a from > to application
	// is an inconsistent snapshot record and is skipped.
	leaves := make([]leave.Application, 0, len(snap.Leaves))
	for _, app := range snap.Leaves {
		if app.Status != leave.StatusApproved {
			continue
		}
		if civilDate(app.FromDate).After(civilDate(app.ToDate)) {
			log.Warn("skipping leave with inverted range",
				slog.String("leave_id", app.ID),
				slog.String("error", report.ErrInconsistentSnapshot.Error()),
			)
			continue
		}
		leaves = append(leaves, app)
	}

	// Overlapping leaves resolve to the earliest from_date, ties to the
	// smallest identifier.
	sort.Slice(leaves, func(i, j int) bool {
		fi, fj := civilDate(leaves[i].FromDate), civilDate(leaves[j].FromDate)
		if !fi.Equal(fj) {
			return fi.Before(fj)
		}
		return leaves[i].ID < leaves[j].ID
	})

	return &policyResolver{snap: snap, leaves: leaves}
}

// IsWeekOff reports whether any active assigned week-off policy marks the
// date.
func (r *policyResolver) IsWeekOff(date time.Time) bool {
	for _, p := range r.snap.WeekOffPolicies {
		if p.AppliesOn(date) {
			return true
		}
	}
	return false
}

// IsHoliday reports whether an active holiday falls on the date.
func (r *policyResolver) IsHoliday(date time.Time) bool {
	d := civilDate(date)
	for _, h := range r.snap.Holidays {
		if h.IsActive && civilDate(h.HolidayDate).Equal(d) {
			return true
		}
	}
	return false
}

// LeaveAt returns the first approved leave covering the date together with
// its day weight, or (nil, 0).
func (r *policyResolver) LeaveAt(date time.Time) (*leave.Application, decimal.Decimal) {
	for i := range r.leaves {
		if r.leaves[i].Covers(date) {
			return &r.leaves[i], r.leaves[i].DurationType.Weight()
		}
	}
	return nil, decimal.Zero
}
