package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type is a configured leave type (earned, sick, lwp, ...).
type Type struct {
	ID             string
	AdminID        string
	OrganizationID string
	Name           string
	Code           string
	Category       Category
	IsPaid         bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Category string

const (
	CategoryEarned       Category = "earned"
	CategorySick         Category = "sick"
	CategoryCasual       Category = "casual"
	CategoryCompensatory Category = "compensatory"
	CategoryLWP          Category = "lwp"
)

var CategoryValues = []string{
	string(CategoryEarned),
	string(CategorySick),
	string(CategoryCasual),
	string(CategoryCompensatory),
	string(CategoryLWP),
}

type DurationType string

const (
	DurationFullDay    DurationType = "full_day"
	DurationHalfDay    DurationType = "half_day"
	DurationShortLeave DurationType = "short_leave"
)

var DurationTypeValues = []string{
	string(DurationFullDay),
	string(DurationHalfDay),
	string(DurationShortLeave),
}

// Weight maps a duration type to its day weight: full day 1.0, half day 0.5,
// short leave 0.25. Unknown values count as a full day.
func (d DurationType) Weight() decimal.Decimal {
	switch d {
	case DurationHalfDay:
		return decimal.NewFromFloat(0.5)
	case DurationShortLeave:
		return decimal.NewFromFloat(0.25)
	default:
		return decimal.NewFromInt(1)
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusCancelled),
}

// Application is a leave request over an inclusive civil date range.
type Application struct {
	ID             string
	UserID         string
	AdminID        string
	OrganizationID string
	LeaveTypeID    string
	FromDate       time.Time
	ToDate         time.Time
	DurationType   DurationType
	Status         Status
	Reason         *string
	ApprovedBy     *string
	ApprovedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined
	Type Type
}

// Covers reports whether the inclusive [FromDate, ToDate] range contains the
// given civil date. Time-of-day components are ignored.
func (a Application) Covers(date time.Time) bool {
	d := civilDate(date)
	return !d.Before(civilDate(a.FromDate)) && !d.After(civilDate(a.ToDate))
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
