package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/domain/attendance"
	"github.com/samar-devp/workforce-backend-go/internal/domain/leave"
	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
	"github.com/samar-devp/workforce-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

// fallbackExpectedMinutes is the expected working time on a present day when
// no shift is attached to the record.
const fallbackExpectedMinutes = 8 * 60

// Engine turns one snapshot into a monthly summary. It is pure over the
// snapshot: no I/O, no shared state, safe to run one instance per request.
type Engine struct {
	log *slog.Logger
}

func NewEngine(log *slog.Logger) *Engine {
	return &Engine{log: log}
}

// ComputeMonth classifies every day of the month in chronological order and
// aggregates the counters, then runs the sandwich pass over the classified
// days. Days before the employee's joining date are not emitted.
// Cancellation is honoured between day iterations and between the two
// passes; no partial summary is returned.
func (e *Engine) ComputeMonth(ctx context.Context, snap report.Snapshot, month, year int) (*report.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, report.ErrInvalidTemporalInput
	}

	loc := snap.Employee.JoiningDate.Location()
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	lastDay := first.AddDate(0, 1, -1).Day()
	joining := civilDate(snap.Employee.JoiningDate)

	resolver := newPolicyResolver(snap, e.log)
	records := FoldMonth(snap.Segments)
	shiftsByID := make(map[string]shift.Shift, len(snap.Shifts))
	for _, s := range snap.Shifts {
		shiftsByID[s.ID] = s
	}

	sum := &report.MonthlySummary{
		EmployeeID:        snap.Employee.ID,
		Month:             month,
		Year:              year,
		TotalCalendarDays: lastDay,
		LeaveDays:         decimal.Zero,
		LOPDays:           decimal.Zero,
		HalfDayLeaves:     decimal.Zero,
		PayableDays:       decimal.Zero,
		OvertimeHours:     decimal.Zero,
		Days:              make([]report.DayClassification, 0, lastDay),
	}

	for dayNum := 1; dayNum <= lastDay; dayNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		date := time.Date(year, time.Month(month), dayNum, 0, 0, 0, 0, loc)
		if date.Before(joining) {
			continue
		}

		day := report.DayClassification{
			Date:           date,
			OvertimeHours:  decimal.Zero,
			LeaveDayWeight: decimal.Zero,
		}
		rec, hasRecord := records[dateKey(date)]

		switch {
		case resolver.IsWeekOff(date):
			day.IsWeekOff = true
			sum.WeekOffDays++
			if hasRecord && rec.Status == attendance.StatusPresent {
				sum.WorkingDays++
				e.markPresent(&day, rec, shiftsByID, sum)
			}

		case resolver.IsHoliday(date):
			day.IsHoliday = true
			sum.HolidayDays++
			if hasRecord && rec.Status == attendance.StatusPresent {
				sum.WorkingDays++
				e.markPresent(&day, rec, shiftsByID, sum)
			}

		default:
			sum.WorkingDays++

			app, weight := resolver.LeaveAt(date)
			if app != nil {
				day.LeaveTypeCode = app.Type.Code
				day.LeaveDayWeight = weight
				sum.LeaveDays = sum.LeaveDays.Add(weight)

				switch {
				case app.Type.Category == leave.CategoryCompensatory:
					day.IsCompOff = true
					sum.PresentDays++
					sum.PayableDays = sum.PayableDays.Add(weight)
				case app.Type.Category == leave.CategoryLWP || !app.Type.IsPaid:
					day.IsLOP = true
					day.IsLeave = true
					sum.LOPDays = sum.LOPDays.Add(weight)
				default:
					day.IsLeave = true
					sum.PayableDays = sum.PayableDays.Add(weight)
					if app.DurationType == leave.DurationHalfDay {
						sum.HalfDayLeaves = sum.HalfDayLeaves.Add(weight)
					}
				}
			}

			switch {
			case hasRecord && rec.Status == attendance.StatusPresent:
				e.markPresent(&day, rec, shiftsByID, sum)
			case hasRecord && rec.Status == attendance.StatusAbsent:
				day.IsAbsent = true
				sum.AbsentDays++
			case !hasRecord && app == nil:
				day.IsAbsent = true
				sum.AbsentDays++
			}
		}

		sum.Days = append(sum.Days, day)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	markSandwichDays(sum)
	roundTotals(sum)

	return sum, nil
}

// markPresent copies the daily record's presence data onto the day, updates
// the presence-related counters and adds overtime against the attached
// shift's duration, or an 8-hour day when no shift is attached.
func (e *Engine) markPresent(day *report.DayClassification, rec attendance.DailyRecord, shiftsByID map[string]shift.Shift, sum *report.MonthlySummary) {
	day.IsPresent = true
	day.WorkingMinutes = rec.WorkingMinutes
	day.IsLate = rec.IsLate
	day.LateMinutes = rec.LateMinutes
	day.IsEarlyExit = rec.IsEarlyExit
	day.EarlyExitMinutes = rec.EarlyExitMinutes

	sum.PresentDays++
	sum.PayableDays = sum.PayableDays.Add(decimal.NewFromInt(1))

	if rec.IsLate {
		sum.LateDays++
		sum.TotalLateMinutes += rec.LateMinutes
	}
	if rec.IsEarlyExit {
		sum.EarlyExitDays++
		sum.TotalEarlyExitMinutes += rec.EarlyExitMinutes
	}

	expected := fallbackExpectedMinutes
	if rec.ShiftID != nil {
		if s, ok := shiftsByID[*rec.ShiftID]; ok {
			// A shift with no working time is an inconsistent snapshot
			// record; skip it and keep the 8-hour expectation.
			if s.DurationMinutes <= 0 {
				e.log.Warn("skipping shift with no working time",
					slog.String("shift_id", s.ID),
					slog.String("error", report.ErrInconsistentSnapshot.Error()),
				)
			} else {
				expected = s.DurationMinutes
			}
		}
	}
	if overtime := OvertimeMinutes(rec.WorkingMinutes, expected); overtime > 0 {
		hours := decimal.NewFromInt(int64(overtime)).Div(decimal.NewFromInt(60))
		day.OvertimeHours = hours
		sum.OvertimeHours = sum.OvertimeHours.Add(hours)
	}
}

// roundTotals fixes all decimal outputs to two-digit scale.
func roundTotals(sum *report.MonthlySummary) {
	sum.LeaveDays = sum.LeaveDays.Round(2)
	sum.LOPDays = sum.LOPDays.Round(2)
	sum.HalfDayLeaves = sum.HalfDayLeaves.Round(2)
	sum.PayableDays = sum.PayableDays.Round(2)
	sum.OvertimeHours = sum.OvertimeHours.Round(2)
	for i := range sum.Days {
		sum.Days[i].OvertimeHours = sum.Days[i].OvertimeHours.Round(2)
		sum.Days[i].LeaveDayWeight = sum.Days[i].LeaveDayWeight.Round(2)
	}
}
