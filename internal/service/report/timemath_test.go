package report

import (
	"testing"
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingMinutes(t *testing.T) {
	in := time.Date(2024, 2, 7, 9, 0, 0, 0, time.UTC)

	t.Run("regular span", func(t *testing.T) {
		out := time.Date(2024, 2, 7, 18, 0, 0, 0, time.UTC)
		minutes, err := WorkingMinutes(in, out)
		require.NoError(t, err)
		require.NotNil(t, minutes)
		assert.Equal(t, 540, *minutes)
	})

	t.Run("night shift crossing midnight", func(t *testing.T) {
		checkIn := time.Date(2024, 2, 7, 22, 5, 0, 0, time.UTC)
		checkOut := time.Date(2024, 2, 8, 5, 40, 0, 0, time.UTC)
		minutes, err := WorkingMinutes(checkIn, checkOut)
		require.NoError(t, err)
		require.NotNil(t, minutes)
		assert.Equal(t, 455, *minutes)
	})

	t.Run("span under sixty seconds is undefined", func(t *testing.T) {
		minutes, err := WorkingMinutes(in, in.Add(45*time.Second))
		require.NoError(t, err)
		assert.Nil(t, minutes)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		_, err := WorkingMinutes(in, in.Add(-time.Minute))
		require.Error(t, err)
		assert.ErrorIs(t, err, report.ErrInvalidTemporalInput)
	})
}

func TestLateMinutes(t *testing.T) {
	date := time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC)
	start := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("after start", func(t *testing.T) {
		checkIn := time.Date(2024, 2, 7, 9, 25, 0, 0, time.UTC)
		assert.Equal(t, 25, LateMinutes(checkIn, start, date))
	})

	t.Run("on time", func(t *testing.T) {
		checkIn := time.Date(2024, 2, 7, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, LateMinutes(checkIn, start, date))
	})

	t.Run("early is not late", func(t *testing.T) {
		checkIn := time.Date(2024, 2, 7, 8, 30, 0, 0, time.UTC)
		assert.Equal(t, 0, LateMinutes(checkIn, start, date))
	})
}

func TestEarlyExitMinutes(t *testing.T) {
	end := time.Date(0, 1, 1, 6, 0, 0, 0, time.UTC)

	t.Run("night shift end anchored on check-out date", func(t *testing.T) {
		checkOut := time.Date(2024, 2, 8, 5, 40, 0, 0, time.UTC)
		checkOutDate := time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 20, EarlyExitMinutes(checkOut, end, checkOutDate))
	})

	t.Run("at or after end", func(t *testing.T) {
		checkOut := time.Date(2024, 2, 8, 6, 0, 0, 0, time.UTC)
		checkOutDate := time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, EarlyExitMinutes(checkOut, end, checkOutDate))
	})

	t.Run("day shift end anchored on segment date past midnight", func(t *testing.T) {
		// A 09:00-17:00 shift checked out at 00:30 the next day: the end
		// anchors on the segment's own date, so nothing is early.
		dayEnd := time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC)
		checkOut := time.Date(2024, 2, 8, 0, 30, 0, 0, time.UTC)
		segmentDate := time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, EarlyExitMinutes(checkOut, dayEnd, segmentDate))

		// Anchoring on the check-out date would claim the whole next
		// working day as an early exit.
		checkOutDate := time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 990, EarlyExitMinutes(checkOut, dayEnd, checkOutDate))
	})
}

func TestOvertimeMinutes(t *testing.T) {
	assert.Equal(t, 5, OvertimeMinutes(455, 450))
	assert.Equal(t, 0, OvertimeMinutes(450, 450))
	assert.Equal(t, 0, OvertimeMinutes(400, 450))
}
