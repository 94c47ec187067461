package weekoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestWeekOfMonth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		day  int
		want int
	}{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3}, {28, 4}, {29, 5}, {31, 5},
	}
	for _, tc := range cases {
		got := WeekOfMonth(civil(2024, time.January, tc.day))
		assert.Equal(t, tc.want, got, "day %d", tc.day)
	}
}

func TestPolicyAppliesOn(t *testing.T) {
	t.Parallel()

	sundays := Policy{
		ID:       "wo-1",
		Weekdays: []string{"Sunday"},
		IsActive: true,
	}

	// Feb 2024 Sundays: 4, 11, 18, 25
	assert.True(t, sundays.AppliesOn(civil(2024, time.February, 4)))
	assert.True(t, sundays.AppliesOn(civil(2024, time.February, 25)))
	assert.False(t, sundays.AppliesOn(civil(2024, time.February, 5)))

	t.Run("inactive policy never matches", func(t *testing.T) {
		inactive := sundays
		inactive.IsActive = false
		assert.False(t, inactive.AppliesOn(civil(2024, time.February, 4)))
	})

	t.Run("week cycle restricts to listed weeks", func(t *testing.T) {
		altSaturdays := Policy{
			ID:        "wo-2",
			Weekdays:  []string{"Saturday"},
			WeekCycle: []int{2, 4},
			IsActive:  true,
		}
		// Feb 2024 Saturdays: 3 (wk1), 10 (wk2), 17 (wk3), 24 (wk4)
		assert.False(t, altSaturdays.AppliesOn(civil(2024, time.February, 3)))
		assert.True(t, altSaturdays.AppliesOn(civil(2024, time.February, 10)))
		assert.False(t, altSaturdays.AppliesOn(civil(2024, time.February, 17)))
		assert.True(t, altSaturdays.AppliesOn(civil(2024, time.February, 24)))
	})

	t.Run("empty cycle matches every week", func(t *testing.T) {
		assert.True(t, sundays.AppliesOn(civil(2024, time.March, 31))) // week 5 Sunday
	})

	t.Run("day 29 onward lands in week 5", func(t *testing.T) {
		week5 := Policy{
			ID:        "wo-3",
			Weekdays:  []string{"Friday"},
			WeekCycle: []int{5},
			IsActive:  true,
		}
		assert.True(t, week5.AppliesOn(civil(2024, time.March, 29)))
		assert.False(t, week5.AppliesOn(civil(2024, time.March, 22)))
	})
}
