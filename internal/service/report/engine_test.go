package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/domain/attendance"
	"github.com/samar-devp/workforce-backend-go/internal/domain/employee"
	"github.com/samar-devp/workforce-backend-go/internal/domain/leave"
	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
	"github.com/samar-devp/workforce-backend-go/internal/domain/shift"
	"github.com/samar-devp/workforce-backend-go/internal/domain/weekoff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func febDay(d int) time.Time {
	return time.Date(2024, 2, d, 0, 0, 0, 0, time.UTC)
}

func presentSegment(day int) attendance.Attendance {
	date := febDay(day)
	return attendance.Attendance{
		ID:                  fmt.Sprintf("seg-%02d", day),
		UserID:              "user-1",
		Date:                date,
		CheckIn:             timePtr(date.Add(9 * time.Hour)),
		CheckOut:            timePtr(date.Add(17 * time.Hour)),
		TotalWorkingMinutes: intPtr(480),
		Status:              attendance.StatusPresent,
	}
}

func absentSegment(day int) attendance.Attendance {
	return attendance.Attendance{
		ID:     fmt.Sprintf("seg-%02d", day),
		UserID: "user-1",
		Date:   febDay(day),
		Status: attendance.StatusAbsent,
	}
}

// februarySnapshot builds a Feb 2024 snapshot: Sundays off (4, 11, 18, 25),
// present on every day listed, joined long before the month.
func februarySnapshot(presentDays []int) report.Snapshot {
	segments := make([]attendance.Attendance, 0, len(presentDays))
	for _, d := range presentDays {
		segments = append(segments, presentSegment(d))
	}
	return report.Snapshot{
		Employee: employee.Employee{
			ID:          "emp-1",
			UserID:      "user-1",
			JoiningDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		WeekOffPolicies: []weekoff.Policy{
			{ID: "wo-1", Weekdays: []string{"Sunday"}, IsActive: true},
		},
		Segments: segments,
	}
}

func weekdaysOfFeb2024() []int {
	var days []int
	for d := 1; d <= 29; d++ {
		if febDay(d).Weekday() != time.Sunday {
			days = append(days, d)
		}
	}
	return days
}

func dayFor(t *testing.T, sum *report.MonthlySummary, day int) report.DayClassification {
	t.Helper()
	for _, d := range sum.Days {
		if d.Date.Day() == day {
			return d
		}
	}
	t.Fatalf("day %d not classified", day)
	return report.DayClassification{}
}

func TestComputeMonthAllPresent(t *testing.T) {
	engine := NewEngine(discardLogger())
	sum, err := engine.ComputeMonth(context.Background(), februarySnapshot(weekdaysOfFeb2024()), 2, 2024)
	require.NoError(t, err)

	assert.Equal(t, 29, sum.TotalCalendarDays)
	assert.Equal(t, 25, sum.WorkingDays)
	assert.Equal(t, 25, sum.PresentDays)
	assert.Equal(t, 0, sum.AbsentDays)
	assert.Equal(t, 4, sum.WeekOffDays)
	assert.Equal(t, "25", sum.PayableDays.String())
	assert.Equal(t, 0, sum.SandwichAbsentDays)
	assert.Len(t, sum.Days, 29)
}

func TestComputeMonthSandwichAbsent(t *testing.T) {
	var present []int
	for _, d := range weekdaysOfFeb2024() {
		if d != 3 && d != 5 {
			present = append(present, d)
		}
	}
	snap := februarySnapshot(present)
	snap.Segments = append(snap.Segments, absentSegment(3), absentSegment(5))

	engine := NewEngine(discardLogger())
	sum, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.SandwichAbsentDays)
	assert.Equal(t, 2, sum.AbsentDays)
	assert.Equal(t, 4, sum.WeekOffDays)
	assert.True(t, dayFor(t, sum, 4).IsSandwich)
	assert.False(t, dayFor(t, sum, 11).IsSandwich)
}

func TestComputeMonthHalfDayPaidLeave(t *testing.T) {
	var present []int
	for _, d := range weekdaysOfFeb2024() {
		if d != 6 {
			present = append(present, d)
		}
	}
	snap := februarySnapshot(present)
	snap.Leaves = []leave.Application{{
		ID:           "lv-1",
		UserID:       "user-1",
		FromDate:     febDay(6),
		ToDate:       febDay(6),
		DurationType: leave.DurationHalfDay,
		Status:       leave.StatusApproved,
		Type:         leave.Type{Code: "CL", Category: leave.CategoryCasual, IsPaid: true},
	}}

	engine := NewEngine(discardLogger())
	sum, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)

	assert.Equal(t, "0.5", sum.LeaveDays.String())
	assert.Equal(t, "0.5", sum.HalfDayLeaves.String())
	assert.Equal(t, "24.5", sum.PayableDays.String())
	assert.Equal(t, 0, sum.AbsentDays)

	day := dayFor(t, sum, 6)
	assert.True(t, day.IsLeave)
	assert.False(t, day.IsAbsent)
	assert.Equal(t, "CL", day.LeaveTypeCode)
	assert.Equal(t, "0.5", day.LeaveDayWeight.String())
}

func TestComputeMonthLOPLeave(t *testing.T) {
	var present []int
	for _, d := range weekdaysOfFeb2024() {
		if d < 12 || d > 14 {
			present = append(present, d)
		}
	}
	snap := februarySnapshot(present)
	snap.Leaves = []leave.Application{{
		ID:           "lv-1",
		UserID:       "user-1",
		FromDate:     febDay(12),
		ToDate:       febDay(14),
		DurationType: leave.DurationFullDay,
		Status:       leave.StatusApproved,
		Type:         leave.Type{Code: "LWP", Category: leave.CategoryLWP, IsPaid: false},
	}}

	engine := NewEngine(discardLogger())
	sum, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)

	assert.Equal(t, "3", sum.LOPDays.String())
	assert.Equal(t, "3", sum.LeaveDays.String())
	assert.Equal(t, "22", sum.PayableDays.String())
	for _, d := range []int{12, 13, 14} {
		day := dayFor(t, sum, d)
		assert.True(t, day.IsLOP)
		assert.True(t, day.IsLeave)
		assert.False(t, day.IsAbsent)
	}
}

func TestComputeMonthNightShiftOvertime(t *testing.T) {
	night := shift.Shift{
		ID:        "shift-night",
		Name:      "Night",
		StartTime: time.Date(0, 1, 1, 22, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 6, 0, 0, 0, time.UTC),
	}
	night.BreakMinutes = 30
	require.NoError(t, night.RecomputeDuration())
	require.True(t, night.IsNightShift)
	require.Equal(t, 450, night.DurationMinutes)

	date := febDay(7)
	seg := attendance.Attendance{
		ID:                  "seg-07",
		UserID:              "user-1",
		Date:                date,
		CheckIn:             timePtr(date.Add(22*time.Hour + 5*time.Minute)),
		CheckOut:            timePtr(febDay(8).Add(5*time.Hour + 40*time.Minute)),
		ShiftID:             &night.ID,
		TotalWorkingMinutes: intPtr(455),
		Status:              attendance.StatusPresent,
		IsLate:              true,
		LateMinutes:         5,
		IsEarlyExit:         true,
		EarlyExitMinutes:    20,
	}

	snap := februarySnapshot(nil)
	snap.Shifts = []shift.Shift{night}
	snap.Segments = []attendance.Attendance{seg}

	engine := NewEngine(discardLogger())
	sum, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)

	day := dayFor(t, sum, 7)
	assert.True(t, day.IsPresent)
	assert.Equal(t, 455, day.WorkingMinutes)
	assert.True(t, day.IsLate)
	assert.Equal(t, 5, day.LateMinutes)
	assert.True(t, day.IsEarlyExit)
	assert.Equal(t, 20, day.EarlyExitMinutes)
	assert.Equal(t, "0.08", day.OvertimeHours.String())

	assert.Equal(t, 1, sum.LateDays)
	assert.Equal(t, 5, sum.TotalLateMinutes)
	assert.Equal(t, 1, sum.EarlyExitDays)
	assert.Equal(t, 20, sum.TotalEarlyExitMinutes)
	assert.Equal(t, "0.08", sum.OvertimeHours.String())
}

func TestComputeMonthWeekOffWorked(t *testing.T) {
	snap := februarySnapshot(append(weekdaysOfFeb2024(), 11))

	engine := NewEngine(discardLogger())
	sum, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)

	day := dayFor(t, sum, 11)
	assert.True(t, day.IsWeekOff)
	assert.True(t, day.IsPresent)

	assert.Equal(t, 26, sum.PresentDays)
	assert.Equal(t, 26, sum.WorkingDays)
	assert.Equal(t, "26", sum.PayableDays.String())
	assert.Equal(t, 4, sum.WeekOffDays)
}

func TestComputeMonthJoiningDateLowerBound(t *testing.T) {
	snap := februarySnapshot(weekdaysOfFeb2024())
	snap.Employee.JoiningDate = febDay(15)

	engine := NewEngine(discardLogger())
	sum, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)

	assert.Len(t, sum.Days, 15)
	assert.Equal(t, 15, sum.Days[0].Date.Day())
	assert.Equal(t, 29, sum.TotalCalendarDays)
}

func TestComputeMonthInvariants(t *testing.T) {
	var present []int
	for _, d := range weekdaysOfFeb2024() {
		if d != 3 && d != 5 && d != 20 {
			present = append(present, d)
		}
	}
	snap := februarySnapshot(present)
	snap.Segments = append(snap.Segments, absentSegment(3), absentSegment(5))
	snap.Leaves = []leave.Application{{
		ID:           "lv-1",
		UserID:       "user-1",
		FromDate:     febDay(20),
		ToDate:       febDay(20),
		DurationType: leave.DurationFullDay,
		Status:       leave.StatusApproved,
		Type:         leave.Type{Code: "EL", Category: leave.CategoryEarned, IsPaid: true},
	}}

	engine := NewEngine(discardLogger())
	sum, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)

	var (
		weekOff, holidays, absent, presentDays, late, earlyExit int
		leaveWeights                                            = decimal.Zero
	)
	for i, day := range sum.Days {
		if i > 0 {
			assert.True(t, sum.Days[i-1].Date.Before(day.Date), "days out of order")
		}
		if day.IsWeekOff {
			weekOff++
		}
		if day.IsHoliday {
			holidays++
		}
		if day.IsAbsent {
			absent++
		}
		if day.IsPresent {
			presentDays++
		}
		if day.IsLate {
			late++
		}
		if day.IsEarlyExit {
			earlyExit++
		}
		leaveWeights = leaveWeights.Add(day.LeaveDayWeight)

		exclusive := 0
		if day.IsCompOff {
			exclusive++
		}
		if day.IsLOP {
			exclusive++
		}
		if day.IsLeave && !day.IsLOP {
			exclusive++
		}
		assert.LessOrEqual(t, exclusive, 1)
	}

	assert.Equal(t, weekOff, sum.WeekOffDays)
	assert.Equal(t, holidays, sum.HolidayDays)
	assert.Equal(t, absent, sum.AbsentDays)
	assert.Equal(t, presentDays, sum.PresentDays)
	assert.Equal(t, late, sum.LateDays)
	assert.Equal(t, earlyExit, sum.EarlyExitDays)
	assert.True(t, leaveWeights.Round(2).Equal(sum.LeaveDays))
	assert.True(t, sum.PayableDays.LessThanOrEqual(decimal.NewFromInt(int64(sum.TotalCalendarDays))))
	assert.True(t, sum.PayableDays.GreaterThanOrEqual(decimal.Zero))
	assert.False(t, sum.Days[0].IsSandwich)
	assert.False(t, sum.Days[len(sum.Days)-1].IsSandwich)
}

func TestComputeMonthIdempotent(t *testing.T) {
	var present []int
	for _, d := range weekdaysOfFeb2024() {
		if d != 3 && d != 5 {
			present = append(present, d)
		}
	}
	snap := februarySnapshot(present)
	snap.Segments = append(snap.Segments, absentSegment(3), absentSegment(5))

	engine := NewEngine(discardLogger())
	first, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)
	second, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeMonthInvalidMonth(t *testing.T) {
	engine := NewEngine(discardLogger())
	_, err := engine.ComputeMonth(context.Background(), februarySnapshot(nil), 13, 2024)
	assert.ErrorIs(t, err, report.ErrInvalidTemporalInput)
}

func TestComputeMonthZeroDurationShift(t *testing.T) {
	broken := shift.Shift{
		ID:              "shift-broken",
		Name:            "Broken",
		DurationMinutes: -30,
	}

	seg := presentSegment(7)
	seg.ShiftID = &broken.ID

	snap := februarySnapshot(nil)
	snap.Shifts = []shift.Shift{broken}
	snap.Segments = []attendance.Attendance{seg}

	engine := NewEngine(discardLogger())
	sum, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)

	// The shift carries no working time, so the 8-hour expectation applies
	// and a 480-minute day yields no overtime.
	day := dayFor(t, sum, 7)
	assert.True(t, day.IsPresent)
	assert.True(t, day.OvertimeHours.IsZero())
	assert.True(t, sum.OvertimeHours.IsZero())
}

func TestComputeMonthComposition(t *testing.T) {
	day := func(month, d int) time.Time {
		return time.Date(2024, time.Month(month), d, 0, 0, 0, 0, time.UTC)
	}
	segmentOn := func(date time.Time, status attendance.Status) attendance.Attendance {
		seg := attendance.Attendance{
			ID:     fmt.Sprintf("seg-%s", date.Format("2006-01-02")),
			UserID: "user-1",
			Date:   date,
			Status: status,
		}
		if status == attendance.StatusPresent {
			seg.CheckIn = timePtr(date.Add(9 * time.Hour))
			seg.CheckOut = timePtr(date.Add(17 * time.Hour))
			seg.TotalWorkingMinutes = intPtr(480)
		}
		return seg
	}

	// One snapshot spanning January and February: present on weekdays,
	// absent on the last weekday of January and the first of February.
	snap := februarySnapshot(nil)
	for m := 1; m <= 2; m++ {
		last := day(m, 1).AddDate(0, 1, -1).Day()
		for d := 1; d <= last; d++ {
			date := day(m, d)
			if date.Weekday() == time.Sunday {
				continue
			}
			status := attendance.StatusPresent
			if (m == 1 && d == 31) || (m == 2 && d == 1) {
				status = attendance.StatusAbsent
			}
			snap.Segments = append(snap.Segments, segmentOn(date, status))
		}
	}

	engine := NewEngine(discardLogger())
	jan, err := engine.ComputeMonth(context.Background(), snap, 1, 2024)
	require.NoError(t, err)
	feb, err := engine.ComputeMonth(context.Background(), snap, 2, 2024)
	require.NoError(t, err)

	// Each run only emits its own month, and the concatenation stays
	// chronological with no gap or overlap at the boundary.
	assert.Len(t, jan.Days, 31)
	assert.Len(t, feb.Days, 29)
	for _, d := range jan.Days {
		assert.Equal(t, time.January, d.Date.Month())
	}
	for _, d := range feb.Days {
		assert.Equal(t, time.February, d.Date.Month())
	}
	boundary := feb.Days[0].Date.Sub(jan.Days[len(jan.Days)-1].Date)
	assert.Equal(t, 24*time.Hour, boundary)

	// Counters over the concatenation are the sums of the two runs.
	assert.Equal(t, 60, jan.TotalCalendarDays+feb.TotalCalendarDays)
	assert.Equal(t, 52, jan.WorkingDays+feb.WorkingDays)
	assert.Equal(t, 50, jan.PresentDays+feb.PresentDays)
	assert.Equal(t, 2, jan.AbsentDays+feb.AbsentDays)
	assert.Equal(t, 8, jan.WeekOffDays+feb.WeekOffDays)
	assert.Equal(t, "50", jan.PayableDays.Add(feb.PayableDays).String())

	// The Jan 31 / Feb 1 absences flank no interior week-off within either
	// month, so the boundary never produces a sandwich day.
	assert.Equal(t, 0, jan.SandwichAbsentDays)
	assert.Equal(t, 0, feb.SandwichAbsentDays)
}

func TestComputeMonthCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(discardLogger())
	_, err := engine.ComputeMonth(ctx, februarySnapshot(weekdaysOfFeb2024()), 2, 2024)
	assert.ErrorIs(t, err, context.Canceled)
}
