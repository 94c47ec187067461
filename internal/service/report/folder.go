package report

import (
	"sort"

	"github.com/samar-devp/workforce-backend-go/internal/domain/attendance"
)

// FoldDay collapses all raw segments of one (user, date) into a single daily
// record: the earliest check-in carries the late data, status and attached
// shift, the latest check-out carries the early-exit data, and working/break
// minutes are summed across segments. The fold is pure and yields the same
// record for any input order.
func FoldDay(segments []attendance.Attendance) attendance.DailyRecord {
	rec := attendance.DailyRecord{LastLogin: attendance.LoginStatusNone}
	if len(segments) == 0 {
		return rec
	}

	sorted := make([]attendance.Attendance, len(segments))
	copy(sorted, segments)
	sort.Slice(sorted, func(i, j int) bool {
		ci, cj := sorted[i].CheckIn, sorted[j].CheckIn
		switch {
		case ci == nil && cj == nil:
			return sorted[i].ID < sorted[j].ID
		case ci == nil:
			return false
		case cj == nil:
			return true
		case ci.Equal(*cj):
			return sorted[i].ID < sorted[j].ID
		default:
			return ci.Before(*cj)
		}
	})

	earliest := sorted[0]
	rec.UserID = earliest.UserID
	rec.Date = earliest.Date
	rec.CheckIn = earliest.CheckIn
	rec.SegmentID = earliest.ID
	rec.ShiftID = earliest.ShiftID
	rec.Status = earliest.Status
	rec.IsLate = earliest.IsLate
	rec.LateMinutes = earliest.LateMinutes
	rec.Segments = sorted

	for _, seg := range sorted {
		if seg.TotalWorkingMinutes != nil {
			rec.WorkingMinutes += *seg.TotalWorkingMinutes
			if seg.BreakMinutes != nil {
				rec.BreakMinutes += *seg.BreakMinutes
			}
		}
		if seg.CheckIn != nil && rec.LastLogin == attendance.LoginStatusNone {
			rec.LastLogin = attendance.LoginStatusCheckIn
		}
		if seg.CheckOut != nil {
			rec.LastLogin = attendance.LoginStatusCheckOut
			if rec.CheckOut == nil || seg.CheckOut.After(*rec.CheckOut) {
				rec.CheckOut = seg.CheckOut
				rec.IsEarlyExit = seg.IsEarlyExit
				rec.EarlyExitMinutes = seg.EarlyExitMinutes
			}
		}
	}

	return rec
}

// FoldMonth groups segments by their civil date and folds each group,
// returning records keyed by "YYYY-MM-DD".
func FoldMonth(segments []attendance.Attendance) map[string]attendance.DailyRecord {
	grouped := make(map[string][]attendance.Attendance)
	for _, seg := range segments {
		key := dateKey(seg.Date)
		grouped[key] = append(grouped[key], seg)
	}

	records := make(map[string]attendance.DailyRecord, len(grouped))
	for key, group := range grouped {
		records[key] = FoldDay(group)
	}
	return records
}
