package report

import (
	"fmt"
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
)

// WorkingMinutes returns the whole minutes between check-in and check-out.
// Spans under sixty seconds have no defined working time and return nil.
func WorkingMinutes(checkIn, checkOut time.Time) (*int, error) {
	if checkOut.Before(checkIn) {
		return nil, fmt.Errorf("%w: check-out %s before check-in %s",
			report.ErrInvalidTemporalInput, checkOut.Format(time.RFC3339), checkIn.Format(time.RFC3339))
	}
	span := checkOut.Sub(checkIn)
	if span < time.Minute {
		return nil, nil
	}
	minutes := int(span / time.Minute)
	return &minutes, nil
}

// LateMinutes returns how many whole minutes the check-in falls after the
// shift start anchored on the given civil date, or zero.
func LateMinutes(checkIn time.Time, shiftStart time.Time, date time.Time) int {
	start := atTimeOfDay(date, shiftStart)
	if checkIn.After(start) {
		return int(checkIn.Sub(start) / time.Minute)
	}
	return 0
}

// EarlyExitMinutes returns how many whole minutes the check-out falls before
// the shift end anchored on the given civil date, or zero. For night shifts
// the caller anchors on the check-out date.
func EarlyExitMinutes(checkOut time.Time, shiftEnd time.Time, date time.Time) int {
	end := atTimeOfDay(date, shiftEnd)
	if checkOut.Before(end) {
		return int(end.Sub(checkOut) / time.Minute)
	}
	return 0
}

// OvertimeMinutes returns the minutes worked beyond the expected duration,
// floored at zero.
func OvertimeMinutes(totalMinutes, expectedMinutes int) int {
	if totalMinutes > expectedMinutes {
		return totalMinutes - expectedMinutes
	}
	return 0
}

// atTimeOfDay anchors a time-of-day on a civil date in the date's location.
func atTimeOfDay(date time.Time, tod time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0, date.Location())
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
