package report

import (
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/domain/attendance"
	"github.com/samar-devp/workforce-backend-go/internal/domain/employee"
	"github.com/samar-devp/workforce-backend-go/internal/domain/holiday"
	"github.com/samar-devp/workforce-backend-go/internal/domain/leave"
	"github.com/samar-devp/workforce-backend-go/internal/domain/shift"
	"github.com/samar-devp/workforce-backend-go/internal/domain/weekoff"
	"github.com/shopspring/decimal"
)

// Scope selects which fallback set of week-off policies and holidays applies
// when the employee has no explicit assignments.
type Scope string

const (
	ScopeAdmin        Scope = "admin"
	ScopeOrganization Scope = "organization"
)

var ScopeValues = []string{
	string(ScopeAdmin),
	string(ScopeOrganization),
}

// Snapshot is the read-consistent view of every input the payable-day
// computation needs. All collections are loaded inside one read transaction
// before the engine runs; the engine treats them as immutable.
type Snapshot struct {
	Employee        employee.Employee
	Shifts          []shift.Shift
	WeekOffPolicies []weekoff.Policy
	Holidays        []holiday.Holiday
	// Leaves holds approved applications overlapping the month, ordered by
	// from_date then id.
	Leaves   []leave.Application
	Segments []attendance.Attendance
}

// DayClassification labels one calendar day of the month.
type DayClassification struct {
	Date             time.Time       `json:"date"`
	IsWeekOff        bool            `json:"is_week_off"`
	IsHoliday        bool            `json:"is_holiday"`
	IsLeave          bool            `json:"is_leave"`
	IsCompOff        bool            `json:"is_comp_off"`
	IsLOP            bool            `json:"is_lop"`
	IsPresent        bool            `json:"is_present"`
	IsAbsent         bool            `json:"is_absent"`
	IsSandwich       bool            `json:"is_sandwich"`
	IsLate           bool            `json:"is_late"`
	IsEarlyExit      bool            `json:"is_early_exit"`
	LateMinutes      int             `json:"late_minutes"`
	EarlyExitMinutes int             `json:"early_exit_minutes"`
	WorkingMinutes   int             `json:"working_minutes"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	LeaveTypeCode    string          `json:"leave_type_code,omitempty"`
	LeaveDayWeight   decimal.Decimal `json:"leave_day_weight"`
}

// MonthlySummary aggregates the classified days of one (employee, month).
type MonthlySummary struct {
	EmployeeID            string          `json:"employee_id"`
	Month                 int             `json:"month"`
	Year                  int             `json:"year"`
	TotalCalendarDays     int             `json:"total_calendar_days"`
	WorkingDays           int             `json:"working_days"`
	PresentDays           int             `json:"present_days"`
	AbsentDays            int             `json:"absent_days"`
	LeaveDays             decimal.Decimal `json:"leave_days"`
	LOPDays               decimal.Decimal `json:"lop_days"`
	HalfDayLeaves         decimal.Decimal `json:"half_day_leaves"`
	WeekOffDays           int             `json:"week_off_days"`
	HolidayDays           int             `json:"holiday_days"`
	SandwichAbsentDays    int             `json:"sandwich_absent_days"`
	PayableDays           decimal.Decimal `json:"payable_days"`
	LateDays              int             `json:"late_days"`
	EarlyExitDays         int             `json:"early_exit_days"`
	TotalLateMinutes      int             `json:"total_late_minutes"`
	TotalEarlyExitMinutes int             `json:"total_early_exit_minutes"`
	OvertimeHours         decimal.Decimal `json:"overtime_hours"`
	Days                  []DayClassification `json:"days"`
}
