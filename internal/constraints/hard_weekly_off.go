package constraints

import (
	"fmt"
	"math"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
	"github.com/arnavshah/roster-feasibility/internal/shiftstats"
)

const weeksPerPeriod = domain.PeriodDays / 7

// RequiredWeeklyOff returns the number of Off days required in one week
// given the configured weekly working hours.
func RequiredWeeklyOff(weeklyWorkHours int) int {
	return 7 - int(math.Ceil(float64(weeklyWorkHours)/8.0))
}

// CheckWeeklyOff requires, for each of the four non-overlapping weeks, at
// least RequiredWeeklyOff Off days per staff member. A week is only
// evaluated once its own completeness reaches 0.5, to suppress noise on
// partial schedules.
func CheckWeeklyOff(ctx evalctx.Context) []domain.Violation {
	var violations []domain.Violation
	severity := HardSeverity(ctx.Config, domain.WeeklyOffID)
	required := RequiredWeeklyOff(ctx.Config.WeeklyWorkHours)

	for w := 0; w < weeksPerPeriod; w++ {
		weekDates := dateutil.WeekBounds(ctx.Schedule.StartDate, w)

		if shiftstats.WeekCompleteness(ctx.Schedule.Assignments, weekDates, len(ctx.Staff)) < 0.5 {
			continue
		}

		for _, staff := range ctx.Staff {
			counts := shiftstats.ShiftCounts(ctx.CurrentMap, staff.ID, weekDates)
			offCount := counts[domain.Off]
			if offCount >= required {
				continue
			}

			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.WeeklyOffID),
				ConstraintName: "Weekly Off Requirement",
				Severity:       severity,
				Message: fmt.Sprintf("%s: week %d (%s–%s) has %d off day(s), requires %d",
					ctx.StaffName(staff.ID), w+1, weekDates[0], weekDates[len(weekDates)-1], offCount, required),
				Context: domain.ViolationContext{
					StaffID:   staff.ID,
					StaffName: ctx.StaffName(staff.ID),
					Dates:     weekDates,
				},
			})
		}
	}

	return violations
}
