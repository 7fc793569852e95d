package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func hour(h int) *int { return &h }

func TestDurationUnits_Daily(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want int
	}{
		{"no start date", Selection{}, 0},
		{"start only", Selection{StartDate: date(2025, 6, 1)}, 1},
		{"two days", Selection{StartDate: date(2025, 6, 1), EndDate: date(2025, 6, 3)}, 2},
		{"same day", Selection{StartDate: date(2025, 6, 1), EndDate: date(2025, 6, 1)}, 1},
		{"partial day rounds up", Selection{
			StartDate: date(2025, 6, 1),
			EndDate: func() *time.Time {
				e := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
				return &e
			}(),
		}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationUnits(UnitDay, CategorySpace, tt.sel))
		})
	}
}

func TestDurationUnits_WeeklyAndMonthly(t *testing.T) {
	sel := Selection{StartDate: date(2025, 6, 1), EndDate: date(2025, 6, 11)} // 10 days

	assert.Equal(t, 2, DurationUnits(UnitWeek, CategorySpace, sel), "10 days = 2 weeks, rounded up")
	assert.Equal(t, 1, DurationUnits(UnitMonth, CategorySpace, sel), "10 days = 1 month, min 1")

	long := Selection{StartDate: date(2025, 1, 1), EndDate: date(2025, 3, 15)} // 73 days
	assert.Equal(t, 11, DurationUnits(UnitWeek, CategorySpace, long))
	assert.Equal(t, 3, DurationUnits(UnitMonth, CategorySpace, long))

	startOnly := Selection{StartDate: date(2025, 6, 1)}
	assert.Equal(t, 1, DurationUnits(UnitWeek, CategorySpace, startOnly))
	assert.Equal(t, 1, DurationUnits(UnitMonth, CategorySpace, startOnly))
}

func TestDurationUnits_HourlySpace(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want int
	}{
		{"no times selected", Selection{}, 0},
		{"check-in only", Selection{CheckIn: hour(9)}, 0},
		{"three hour slot", Selection{CheckIn: hour(9), CheckOut: hour(12)}, 3},
		// Reversed times clamp to 1 instead of going negative.
		{"reversed times clamp to one", Selection{CheckIn: hour(14), CheckOut: hour(13)}, 1},
		{"equal times clamp to one", Selection{CheckIn: hour(10), CheckOut: hour(10)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationUnits(UnitHour, CategorySpace, tt.sel))
		})
	}
}

func TestDurationUnits_HourlyObject(t *testing.T) {
	assert.Equal(t, 4, DurationUnits(UnitHour, CategoryObject, Selection{Hours: 4}))
	assert.Equal(t, 0, DurationUnits(UnitHour, CategoryObject, Selection{}))
	assert.Equal(t, 0, DurationUnits(UnitHour, CategoryObject, Selection{Hours: -2}))
}
