package shift

import (
	"sort"
	"time"
)

type Shift struct {
	ID             string
	AdminID        string
	OrganizationID string
	Name           string
	// StartTime and EndTime carry only their time-of-day component.
	StartTime    time.Time
	EndTime      time.Time
	BreakMinutes int

	// Derived on every save, never accepted from input.
	IsNightShift    bool
	DurationMinutes int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecomputeDuration derives IsNightShift and DurationMinutes from the shift
// window. An end at or before the start means the shift crosses midnight and
// the end is advanced by 24 hours.
func (s *Shift) RecomputeDuration() error {
	if s.BreakMinutes < 0 {
		return ErrInvalidShiftWindow
	}

	start := minuteOfDay(s.StartTime)
	end := minuteOfDay(s.EndTime)

	span := end - start
	s.IsNightShift = false
	if span <= 0 {
		span += 24 * 60
		s.IsNightShift = true
	}

	s.DurationMinutes = span - s.BreakMinutes
	if s.DurationMinutes <= 0 {
		return ErrInvalidShiftWindow
	}

	return nil
}

// StartOn anchors the shift's start time-of-day on the given civil date.
func (s *Shift) StartOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), 0, 0, date.Location())
}

// EndOn anchors the shift's end time-of-day on the given civil date. For
// night shifts the caller passes the check-out date, so no day adjustment
// happens here.
func (s *Shift) EndOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		s.EndTime.Hour(), s.EndTime.Minute(), 0, 0, date.Location())
}

// Nearest selects the assigned shift whose start, anchored on the check-in's
// civil date, is closest to the check-in instant, and returns it together
// with the late minutes against that start. Ties go to the earliest start
// time, then the smallest identifier. Returns nil when no shifts are
// assigned; downstream classification falls back to an 8-hour day.
func Nearest(shifts []Shift, checkIn time.Time) (*Shift, int) {
	if len(shifts) == 0 {
		return nil, 0
	}

	candidates := make([]Shift, len(shifts))
	copy(candidates, shifts)
	sort.Slice(candidates, func(i, j int) bool {
		si, sj := minuteOfDay(candidates[i].StartTime), minuteOfDay(candidates[j].StartTime)
		if si != sj {
			return si < sj
		}
		return candidates[i].ID < candidates[j].ID
	})

	best := 0
	bestDist := absMinutes(checkIn.Sub(candidates[0].StartOn(checkIn)))
	for i := 1; i < len(candidates); i++ {
		dist := absMinutes(checkIn.Sub(candidates[i].StartOn(checkIn)))
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	chosen := candidates[best]
	late := 0
	if start := chosen.StartOn(checkIn); checkIn.After(start) {
		late = int(checkIn.Sub(start) / time.Minute)
	}
	return &chosen, late
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func absMinutes(d time.Duration) int {
	m := int(d / time.Minute)
	if m < 0 {
		return -m
	}
	return m
}
