package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddDaysHandlesMonthBoundaries(t *testing.T) {
	assert.Equal(t, "2024-02-01", AddDays("2024-01-31", 1))
	assert.Equal(t, "2024-01-31", AddDays("2024-02-01", -1))
}

func TestWeekdayMatchesKnownCalendarDate(t *testing.T) {
	assert.Equal(t, time.Monday, Weekday("2024-01-01"))
}

func TestIsWeekendFlagsSaturdayAndSunday(t *testing.T) {
	assert.True(t, IsWeekend("2024-01-06"))
	assert.True(t, IsWeekend("2024-01-07"))
	assert.False(t, IsWeekend("2024-01-08"))
}

func TestPeriodDatesReturnsRequestedCountStartingInclusive(t *testing.T) {
	dates := PeriodDates("2024-01-01", 28)

	assert.Len(t, dates, 28)
	assert.Equal(t, "2024-01-01", dates[0])
	assert.Equal(t, "2024-01-28", dates[27])
}

func TestInPeriodIsHalfOpen(t *testing.T) {
	assert.True(t, InPeriod("2024-01-01", "2024-01-01", 28))
	assert.True(t, InPeriod("2024-01-28", "2024-01-01", 28))
	assert.False(t, InPeriod("2024-01-29", "2024-01-01", 28))
	assert.False(t, InPeriod("2023-12-31", "2024-01-01", 28))
}

func TestOffsetIsSignedAroundStartDate(t *testing.T) {
	assert.Equal(t, 0, Offset("2024-01-01", "2024-01-01"))
	assert.Equal(t, 1, Offset("2024-01-02", "2024-01-01"))
	assert.Equal(t, -1, Offset("2023-12-31", "2024-01-01"))
}

func TestWeekBoundsSlicesThePeriodIntoSevenDayWeeks(t *testing.T) {
	week1 := WeekBounds("2024-01-01", 0)
	week2 := WeekBounds("2024-01-01", 1)

	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07"}, week1)
	assert.Equal(t, "2024-01-08", week2[0])
}
