package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(hour, minute int) time.Time {
	return time.Date(2000, 1, 1, hour, minute, 0, 0, time.Local)
}

func TestRecomputeDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		start, end   time.Time
		breakMin     int
		wantDuration int
		wantNight    bool
		wantErr      bool
	}{
		{"day shift", tod(9, 0), tod(18, 0), 60, 8 * 60, false, false},
		{"day shift no break", tod(9, 0), tod(17, 30), 0, 510, false, false},
		{"night shift", tod(22, 0), tod(6, 0), 30, 450, true, false},
		{"end equals start wraps full day", tod(8, 0), tod(8, 0), 0, 24 * 60, true, false},
		{"break swallows shift", tod(9, 0), tod(10, 0), 90, 0, false, true},
		{"negative break", tod(9, 0), tod(18, 0), -1, 0, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Shift{StartTime: tc.start, EndTime: tc.end, BreakMinutes: tc.breakMin}
			err := s.RecomputeDuration()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidShiftWindow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantDuration, s.DurationMinutes)
			assert.Equal(t, tc.wantNight, s.IsNightShift)
		})
	}
}

func TestNearest(t *testing.T) {
	t.Parallel()

	morning := Shift{ID: "shift-a", Name: "Morning", StartTime: tod(9, 0)}
	evening := Shift{ID: "shift-b", Name: "Evening", StartTime: tod(17, 0)}
	night := Shift{ID: "shift-c", Name: "Night", StartTime: tod(22, 0)}
	shifts := []Shift{night, morning, evening} // deliberately unsorted

	day := func(hour, minute int) time.Time {
		return time.Date(2024, 2, 7, hour, minute, 0, 0, time.Local)
	}

	t.Run("picks closest start", func(t *testing.T) {
		chosen, late := Nearest(shifts, day(9, 10))
		require.NotNil(t, chosen)
		assert.Equal(t, "shift-a", chosen.ID)
		assert.Equal(t, 10, late)
	})

	t.Run("early check-in is not late", func(t *testing.T) {
		chosen, late := Nearest(shifts, day(16, 40))
		require.NotNil(t, chosen)
		assert.Equal(t, "shift-b", chosen.ID)
		assert.Equal(t, 0, late)
	})

	t.Run("night shift check-in", func(t *testing.T) {
		chosen, late := Nearest(shifts, day(22, 5))
		require.NotNil(t, chosen)
		assert.Equal(t, "shift-c", chosen.ID)
		assert.Equal(t, 5, late)
	})

	t.Run("equidistant tie goes to earliest start", func(t *testing.T) {
		// 13:00 is 4h after 09:00 and 4h before 17:00.
		chosen, _ := Nearest(shifts, day(13, 0))
		require.NotNil(t, chosen)
		assert.Equal(t, "shift-a", chosen.ID)
	})

	t.Run("same start tie goes to smallest id", func(t *testing.T) {
		dup := []Shift{
			{ID: "shift-z", StartTime: tod(9, 0)},
			{ID: "shift-a", StartTime: tod(9, 0)},
		}
		chosen, _ := Nearest(dup, day(9, 30))
		require.NotNil(t, chosen)
		assert.Equal(t, "shift-a", chosen.ID)
	})

	t.Run("no shifts assigned", func(t *testing.T) {
		chosen, late := Nearest(nil, day(9, 0))
		assert.Nil(t, chosen)
		assert.Equal(t, 0, late)
	})
}
