package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
	"github.com/arnavshah/roster-feasibility/internal/shiftstats"
)

var staffedShiftTypes = []domain.ShiftType{domain.Day, domain.Evening, domain.Night}

// CheckStaffing requires the configured minimum headcount for each shift
// type on every date. It is globally gated: on a schedule less than half
// filled, it emits nothing (the gaps are expected, not a coverage gap).
func CheckStaffing(ctx evalctx.Context) []domain.Violation {
	if ctx.ScheduleCompleteness < 0.5 {
		return nil
	}

	var violations []domain.Violation
	severity := HardSeverity(ctx.Config, domain.StaffingID)

	for _, date := range dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays) {
		counts := shiftstats.DateStaffCounts(ctx.Schedule.Assignments, date)
		requirement := ctx.StaffingFor(dateutil.IsWeekend(date))

		for _, shift := range staffedShiftTypes {
			req, _ := requirement.RequirementFor(shift)
			if counts[shift] >= req.Min {
				continue
			}

			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.StaffingID),
				ConstraintName: "Minimum Staffing",
				Severity:       severity,
				Message:        fmt.Sprintf("%s on %s: %d staff assigned, requires at least %d", shift, date, counts[shift], req.Min),
				Context: domain.ViolationContext{
					Date: date,
				},
			})
		}
	}

	return violations
}
