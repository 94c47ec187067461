package report

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/domain/holiday"
	"github.com/samar-devp/workforce-backend-go/internal/domain/leave"
	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
	"github.com/samar-devp/workforce-backend-go/internal/domain/weekoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPolicyResolverIsWeekOff(t *testing.T) {
	snap := report.Snapshot{
		WeekOffPolicies: []weekoff.Policy{
			{ID: "p1", Weekdays: []string{"Sunday"}, IsActive: true},
			{ID: "p2", Weekdays: []string{"Saturday"}, WeekCycle: []int{2, 4}, IsActive: true},
			{ID: "p3", Weekdays: []string{"Monday"}, IsActive: false},
		},
	}
	r := newPolicyResolver(snap, discardLogger())

	assert.True(t, r.IsWeekOff(time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC)))  // Sunday
	assert.True(t, r.IsWeekOff(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))) // second Saturday
	assert.False(t, r.IsWeekOff(time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))) // first Saturday
	assert.False(t, r.IsWeekOff(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))) // inactive Monday policy
}

func TestPolicyResolverIsHoliday(t *testing.T) {
	snap := report.Snapshot{
		Holidays: []holiday.Holiday{
			{ID: "h1", HolidayDate: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), IsActive: true},
			{ID: "h2", HolidayDate: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), IsActive: false},
		},
	}
	r := newPolicyResolver(snap, discardLogger())

	assert.True(t, r.IsHoliday(time.Date(2024, 2, 14, 10, 30, 0, 0, time.UTC)))
	assert.False(t, r.IsHoliday(time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.IsHoliday(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPolicyResolverLeaveAt(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 2, d, 0, 0, 0, 0, time.UTC) }

	t.Run("earliest from_date wins on overlap", func(t *testing.T) {
		snap := report.Snapshot{
			Leaves: []leave.Application{
				{ID: "b", FromDate: day(6), ToDate: day(8), DurationType: leave.DurationFullDay, Status: leave.StatusApproved},
				{ID: "a", FromDate: day(5), ToDate: day(7), DurationType: leave.DurationHalfDay, Status: leave.StatusApproved},
			},
		}
		r := newPolicyResolver(snap, discardLogger())

		app, weight := r.LeaveAt(day(6))
		require.NotNil(t, app)
		assert.Equal(t, "a", app.ID)
		assert.Equal(t, "0.5", weight.String())
	})

	t.Run("same from_date ties to smallest identifier", func(t *testing.T) {
		snap := report.Snapshot{
			Leaves: []leave.Application{
				{ID: "z", FromDate: day(5), ToDate: day(5), DurationType: leave.DurationFullDay, Status: leave.StatusApproved},
				{ID: "a", FromDate: day(5), ToDate: day(5), DurationType: leave.DurationShortLeave, Status: leave.StatusApproved},
			},
		}
		r := newPolicyResolver(snap, discardLogger())

		app, weight := r.LeaveAt(day(5))
		require.NotNil(t, app)
		assert.Equal(t, "a", app.ID)
		assert.Equal(t, "0.25", weight.String())
	})

	t.Run("non-approved and inverted ranges are ignored", func(t *testing.T) {
		snap := report.Snapshot{
			Leaves: []leave.Application{
				{ID: "p", FromDate: day(5), ToDate: day(5), Status: leave.StatusPending},
				{ID: "r", FromDate: day(8), ToDate: day(5), Status: leave.StatusApproved},
			},
		}
		r := newPolicyResolver(snap, discardLogger())

		app, weight := r.LeaveAt(day(5))
		assert.Nil(t, app)
		assert.True(t, weight.IsZero())
	})
}
