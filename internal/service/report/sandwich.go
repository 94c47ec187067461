package report

import (
	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
)

// markSandwichDays marks every interior week-off or holiday that sits
// between two absent days. The first and last classified day are never
// marked, and marked days do not chain: a run of absent, off, off, absent
// marks neither off day, since each off day's other neighbour is an off day
// rather than an absence.
func markSandwichDays(sum *report.MonthlySummary) {
	days := sum.Days
	for i := 1; i < len(days)-1; i++ {
		if !days[i].IsWeekOff && !days[i].IsHoliday {
			continue
		}
		if days[i-1].IsAbsent && days[i+1].IsAbsent {
			days[i].IsSandwich = true
			sum.SandwichAbsentDays++
		}
	}
}
