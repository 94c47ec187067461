package report

import (
	"testing"
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segment(id string, date time.Time, checkIn, checkOut *time.Time, working, breaks *int) attendance.Attendance {
	return attendance.Attendance{
		ID:                  id,
		UserID:              "user-1",
		Date:                date,
		CheckIn:             checkIn,
		CheckOut:            checkOut,
		TotalWorkingMinutes: working,
		BreakMinutes:        breaks,
		Status:              attendance.StatusPresent,
	}
}

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(i int) *int              { return &i }

func TestFoldDay(t *testing.T) {
	date := time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC)

	t.Run("empty input", func(t *testing.T) {
		rec := FoldDay(nil)
		assert.Equal(t, attendance.LoginStatusNone, rec.LastLogin)
		assert.Zero(t, rec.WorkingMinutes)
	})

	t.Run("single open segment", func(t *testing.T) {
		seg := segment("a", date, timePtr(date.Add(9*time.Hour)), nil, nil, nil)
		rec := FoldDay([]attendance.Attendance{seg})
		assert.Equal(t, attendance.LoginStatusCheckIn, rec.LastLogin)
		assert.Equal(t, "a", rec.SegmentID)
		assert.Nil(t, rec.CheckOut)
	})

	t.Run("earliest carries late data, latest carries early exit", func(t *testing.T) {
		first := segment("a", date,
			timePtr(date.Add(9*time.Hour)), timePtr(date.Add(13*time.Hour)),
			intPtr(240), intPtr(15))
		first.IsLate = true
		first.LateMinutes = 10

		second := segment("b", date,
			timePtr(date.Add(14*time.Hour)), timePtr(date.Add(17*time.Hour+30*time.Minute)),
			intPtr(210), nil)
		second.IsEarlyExit = true
		second.EarlyExitMinutes = 30

		rec := FoldDay([]attendance.Attendance{second, first})
		assert.Equal(t, "a", rec.SegmentID)
		assert.True(t, rec.IsLate)
		assert.Equal(t, 10, rec.LateMinutes)
		assert.True(t, rec.IsEarlyExit)
		assert.Equal(t, 30, rec.EarlyExitMinutes)
		assert.Equal(t, 450, rec.WorkingMinutes)
		assert.Equal(t, 15, rec.BreakMinutes)
		assert.Equal(t, attendance.LoginStatusCheckOut, rec.LastLogin)
		require.NotNil(t, rec.CheckOut)
		assert.True(t, rec.CheckOut.Equal(date.Add(17*time.Hour + 30*time.Minute)))
	})

	t.Run("order independent", func(t *testing.T) {
		a := segment("a", date, timePtr(date.Add(9*time.Hour)), timePtr(date.Add(12*time.Hour)), intPtr(180), nil)
		b := segment("b", date, timePtr(date.Add(13*time.Hour)), timePtr(date.Add(18*time.Hour)), intPtr(300), nil)
		c := segment("c", date, timePtr(date.Add(12*time.Hour+30*time.Minute)), nil, nil, nil)

		forward := FoldDay([]attendance.Attendance{a, b, c})
		reversed := FoldDay([]attendance.Attendance{c, b, a})
		assert.Equal(t, forward, reversed)
		assert.Equal(t, 480, forward.WorkingMinutes)
	})

	t.Run("undefined working minutes treated as zero", func(t *testing.T) {
		a := segment("a", date, timePtr(date.Add(9*time.Hour)), timePtr(date.Add(9*time.Hour+30*time.Second)), nil, intPtr(60))
		b := segment("b", date, timePtr(date.Add(10*time.Hour)), timePtr(date.Add(12*time.Hour)), intPtr(120), nil)

		rec := FoldDay([]attendance.Attendance{a, b})
		assert.Equal(t, 120, rec.WorkingMinutes)
		assert.Equal(t, 0, rec.BreakMinutes)
	})
}

func TestFoldMonth(t *testing.T) {
	day1 := time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC)

	records := FoldMonth([]attendance.Attendance{
		segment("a", day1, timePtr(day1.Add(9*time.Hour)), timePtr(day1.Add(13*time.Hour)), intPtr(240), nil),
		segment("b", day1, timePtr(day1.Add(14*time.Hour)), timePtr(day1.Add(18*time.Hour)), intPtr(240), nil),
		segment("c", day2, timePtr(day2.Add(9*time.Hour)), timePtr(day2.Add(18*time.Hour)), intPtr(540), nil),
	})

	require.Len(t, records, 2)
	assert.Equal(t, 480, records["2024-02-07"].WorkingMinutes)
	assert.Equal(t, 540, records["2024-02-08"].WorkingMinutes)
}
