package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
	StatusHoliday Status = "holiday"
	StatusWeekOff Status = "week_off"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLeave),
	string(StatusHoliday),
	string(StatusWeekOff),
}

type LoginStatus string

const (
	LoginStatusCheckIn  LoginStatus = "checkin"
	LoginStatusCheckOut LoginStatus = "checkout"
	LoginStatusNone     LoginStatus = "none"
)

// Attendance is one raw check-in/check-out segment. A user may accumulate
// several segments on the same civil date; the daily record folds them.
type Attendance struct {
	ID                  string
	UserID              string
	AdminID             string
	OrganizationID      string
	Date                time.Time
	CheckIn             *time.Time
	CheckOut            *time.Time
	ShiftID             *string
	TotalWorkingMinutes *int
	BreakMinutes        *int
	Status              Status
	IsLate              bool
	LateMinutes         int
	IsEarlyExit         bool
	EarlyExitMinutes    int
	CheckInLatitude     *float64
	CheckInLongitude    *float64
	CheckOutLatitude    *float64
	CheckOutLongitude   *float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DailyRecord is the fold of all segments for one (user, date): earliest
// check-in carries the late data and status, latest check-out carries the
// early-exit data, minutes are summed across segments.
type DailyRecord struct {
	UserID           string
	Date             time.Time
	CheckIn          *time.Time
	CheckOut         *time.Time
	WorkingMinutes   int
	BreakMinutes     int
	ShiftID          *string
	SegmentID        string
	Status           Status
	IsLate           bool
	LateMinutes      int
	IsEarlyExit      bool
	EarlyExitMinutes int
	LastLogin        LoginStatus
	Segments         []Attendance
}
