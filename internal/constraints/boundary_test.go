package constraints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

func TestShiftOnReadsFromThePreviousPeriodTrailBeforeStartDate(t *testing.T) {
	schedule := domain.Schedule{StartDate: periodStart}
	previous := []domain.ShiftAssignment{{StaffID: "s1", Date: "2023-12-31", Shift: domain.Night}}
	ctx := evalctx.Build(schedule, nil, domain.ConstraintConfig{}, previous)

	shift, ok := ShiftOn(ctx, "s1", "2023-12-31")
	require.True(t, ok)
	assert.Equal(t, domain.Night, shift)
}

func TestShiftOnReadsFromTheCurrentScheduleOnOrAfterStartDate(t *testing.T) {
	schedule := domain.Schedule{
		StartDate:   periodStart,
		Assignments: []domain.ShiftAssignment{{StaffID: "s1", Date: periodStart, Shift: domain.Day}},
	}
	ctx := evalctx.Build(schedule, nil, domain.ConstraintConfig{}, nil)

	shift, ok := ShiftOn(ctx, "s1", periodStart)
	require.True(t, ok)
	assert.Equal(t, domain.Day, shift)
}

func TestSeedStreakCountsBackwardUntilAGapOrFailedPredicate(t *testing.T) {
	previous := []domain.ShiftAssignment{
		{StaffID: "s1", Date: "2023-12-31", Shift: domain.Night},
		{StaffID: "s1", Date: "2023-12-30", Shift: domain.Night},
		{StaffID: "s1", Date: "2023-12-29", Shift: domain.Day},
	}
	ctx := evalctx.Build(domain.Schedule{StartDate: periodStart}, nil, domain.ConstraintConfig{}, previous)

	count, start := SeedStreak(ctx, "s1", IsNight)
	assert.Equal(t, 2, count)
	assert.Equal(t, "2023-12-30", start)
}

func TestSeedStreakStopsAtTrailDaysEvenIfAllDaysMatch(t *testing.T) {
	var previous []domain.ShiftAssignment
	date := "2023-12-31"
	for i := 0; i < domain.TrailDays+3; i++ {
		previous = append(previous, domain.ShiftAssignment{StaffID: "s1", Date: date, Shift: domain.Night})
		date = dateutil.AddDays(date, -1)
	}
	ctx := evalctx.Build(domain.Schedule{StartDate: periodStart}, nil, domain.ConstraintConfig{}, previous)

	count, _ := SeedStreak(ctx, "s1", IsNight)
	assert.Equal(t, domain.TrailDays, count)
}

func TestWalkCurrentStreakInvokesOnDayForEveryDayPastMaxLength(t *testing.T) {
	var assignments []domain.ShiftAssignment
	for i := 0; i < 6; i++ {
		assignments = append(assignments, domain.ShiftAssignment{StaffID: "s1", Date: dateAt(i), Shift: domain.Night})
	}
	ctx := evalctx.Build(domain.Schedule{StartDate: periodStart, Assignments: assignments}, nil, domain.ConstraintConfig{}, nil)

	var hits int
	WalkCurrentStreak(ctx, "s1", IsNight, 4, func(date, streakStart string, length int) {
		hits++
	})

	assert.Equal(t, 2, hits)
}

func TestSameShiftPredicateMatchesOnlyItsTarget(t *testing.T) {
	pred := SameShift(domain.Evening)
	assert.True(t, pred(domain.Evening))
	assert.False(t, pred(domain.Day))
}

