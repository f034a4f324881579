package constraints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

func TestCheckConsecutiveNightFlagsAStreakPastTheLimit(t *testing.T) {
	staff := []domain.Staff{{ID: "s1", Name: "Alice"}}
	var assignments []domain.ShiftAssignment
	for i := 0; i < 5; i++ {
		assignments = append(assignments, domain.ShiftAssignment{
			StaffID: "s1", Date: dateAt(i), Shift: domain.Night,
		})
	}
	schedule := domain.Schedule{StartDate: periodStart, Assignments: assignments}
	cfg := baseConfig()
	ctx := evalctx.Build(schedule, staff, cfg, nil)

	violations := CheckConsecutiveNight(ctx)
	require.NotEmpty(t, violations)
	assert.Equal(t, string(domain.ConsecutiveNightID), violations[0].ConstraintID)
}

func TestCheckConsecutiveNightAllowsAStreakAtTheLimit(t *testing.T) {
	staff := []domain.Staff{{ID: "s1", Name: "Alice"}}
	var assignments []domain.ShiftAssignment
	for i := 0; i < 4; i++ {
		assignments = append(assignments, domain.ShiftAssignment{
			StaffID: "s1", Date: dateAt(i), Shift: domain.Night,
		})
	}
	schedule := domain.Schedule{StartDate: periodStart, Assignments: assignments}
	ctx := evalctx.Build(schedule, staff, baseConfig(), nil)

	assert.Empty(t, CheckConsecutiveNight(ctx))
}

func TestCheckNightOffDayFlagsTheForbiddenRestPattern(t *testing.T) {
	staff := []domain.Staff{{ID: "s1", Name: "Alice"}}
	schedule := domain.Schedule{
		StartDate: periodStart,
		Assignments: []domain.ShiftAssignment{
			{StaffID: "s1", Date: "2024-01-01", Shift: domain.Night},
			{StaffID: "s1", Date: "2024-01-02", Shift: domain.Off},
			{StaffID: "s1", Date: "2024-01-03", Shift: domain.Day},
		},
	}
	ctx := evalctx.Build(schedule, staff, baseConfig(), nil)

	violations := CheckNightOffDay(ctx)
	require.Len(t, violations, 1)
	assert.Equal(t, string(domain.NightOffDayID), violations[0].ConstraintID)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, violations[0].Context.Dates)
}

func TestCheckNightOffDayAllowsRestFollowedByEvening(t *testing.T) {
	staff := []domain.Staff{{ID: "s1", Name: "Alice"}}
	schedule := domain.Schedule{
		StartDate: periodStart,
		Assignments: []domain.ShiftAssignment{
			{StaffID: "s1", Date: "2024-01-01", Shift: domain.Night},
			{StaffID: "s1", Date: "2024-01-02", Shift: domain.Off},
			{StaffID: "s1", Date: "2024-01-03", Shift: domain.Evening},
		},
	}
	ctx := evalctx.Build(schedule, staff, baseConfig(), nil)

	assert.Empty(t, CheckNightOffDay(ctx))
}

func TestCheckWeeklyOffFlagsShortfallOnlyOnceWeekIsComplete(t *testing.T) {
	staff := []domain.Staff{{ID: "s1"}, {ID: "s2"}}
	var assignments []domain.ShiftAssignment
	weekDates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07"}
	for _, s := range staff {
		for _, d := range weekDates {
			assignments = append(assignments, domain.ShiftAssignment{StaffID: s.ID, Date: d, Shift: domain.Day})
		}
	}
	schedule := domain.Schedule{StartDate: periodStart, Assignments: assignments}
	cfg := baseConfig()
	cfg.WeeklyWorkHours = 40
	ctx := evalctx.Build(schedule, staff, cfg, nil)

	violations := CheckWeeklyOff(ctx)
	require.NotEmpty(t, violations)
	for _, v := range violations {
		assert.Equal(t, string(domain.WeeklyOffID), v.ConstraintID)
	}
}

func TestCheckWeeklyOffSkipsIncompleteWeeks(t *testing.T) {
	staff := []domain.Staff{{ID: "s1"}, {ID: "s2"}}
	schedule := domain.Schedule{
		StartDate: periodStart,
		Assignments: []domain.ShiftAssignment{
			{StaffID: "s1", Date: "2024-01-01", Shift: domain.Day},
		},
	}
	ctx := evalctx.Build(schedule, staff, baseConfig(), nil)

	assert.Empty(t, CheckWeeklyOff(ctx))
}

func TestCheckMonthlyNightFlagsWhenCountDoesNotMatchRequirement(t *testing.T) {
	staff := []domain.Staff{{ID: "s1", Name: "Alice"}}
	schedule := domain.Schedule{
		StartDate: periodStart,
		Assignments: []domain.ShiftAssignment{
			{StaffID: "s1", Date: "2024-01-01", Shift: domain.Night},
		},
	}
	cfg := baseConfig()
	cfg.MonthlyNightsRequired = 7
	ctx := evalctx.Build(schedule, staff, cfg, nil)

	violations := CheckMonthlyNight(ctx)
	require.Len(t, violations, 1)
	assert.Equal(t, domain.SeverityWarning, violations[0].Severity)
}

func TestCheckMonthlyNightIsSatisfiedWhenCountMatchesExactly(t *testing.T) {
	staff := []domain.Staff{{ID: "s1", Name: "Alice"}}
	var assignments []domain.ShiftAssignment
	for i := 0; i < 7; i++ {
		assignments = append(assignments, domain.ShiftAssignment{StaffID: "s1", Date: dateAt(i), Shift: domain.Night})
	}
	schedule := domain.Schedule{StartDate: periodStart, Assignments: assignments}
	cfg := baseConfig()
	cfg.MonthlyNightsRequired = 7
	ctx := evalctx.Build(schedule, staff, cfg, nil)

	assert.Empty(t, CheckMonthlyNight(ctx))
}

func dateAt(offsetDays int) string {
	return dateutil.AddDays(periodStart, offsetDays)
}
