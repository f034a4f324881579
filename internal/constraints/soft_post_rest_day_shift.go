package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// CheckPostRestDayShift warns on an Off-then-N transition, checked across
// the previous-period boundary.
func CheckPostRestDayShift(ctx evalctx.Context) []domain.Violation {
	var violations []domain.Violation

	for _, staff := range ctx.Staff {
		for _, date := range dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays) {
			prevDate := dateutil.AddDays(date, -1)
			prevShift, prevOK := ShiftOn(ctx, staff.ID, prevDate)
			curShift, curOK := ctx.CurrentMap.ShiftAt(staff.ID, date)
			if !prevOK || !curOK {
				continue
			}
			if prevShift != domain.Off || curShift != domain.Night {
				continue
			}

			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.PostRestDayShiftID),
				ConstraintName: "Post-Rest Night Shift",
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("%s: night shift immediately after a rest day on %s", ctx.StaffName(staff.ID), date),
				Context: domain.ViolationContext{
					StaffID:   staff.ID,
					StaffName: ctx.StaffName(staff.ID),
					Date:      date,
					Dates:     []string{prevDate, date},
				},
			})
		}
	}
	return violations
}
