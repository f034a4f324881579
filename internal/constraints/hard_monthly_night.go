package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
	"github.com/arnavshah/roster-feasibility/internal/shiftstats"
)

// CheckMonthlyNight requires each staff member's total N count across the
// period to equal monthlyNightsRequired exactly. Its severity is always a
// warning regardless of the user's constraintSeverity toggle.
func CheckMonthlyNight(ctx evalctx.Context) []domain.Violation {
	var violations []domain.Violation
	severity := HardSeverity(ctx.Config, domain.MonthlyNightID)
	required := ctx.Config.MonthlyNightsRequired
	dates := dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays)

	for _, staff := range ctx.Staff {
		counts := shiftstats.ShiftCounts(ctx.CurrentMap, staff.ID, dates)
		actual := counts[domain.Night]
		if actual == required {
			continue
		}

		violations = append(violations, domain.Violation{
			ConstraintID:   string(domain.MonthlyNightID),
			ConstraintName: "Monthly Night Requirement",
			Severity:       severity,
			Message:        fmt.Sprintf("%s: %d night shifts this period, requires %d", ctx.StaffName(staff.ID), actual, required),
			Context: domain.ViolationContext{
				StaffID:   staff.ID,
				StaffName: ctx.StaffName(staff.ID),
			},
		})
	}

	return violations
}
