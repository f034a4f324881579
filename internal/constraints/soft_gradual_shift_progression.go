package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// CheckGradualShiftProgression warns on a D-then-N transition (day i is
// Day, day i+1 is Night), checked across the previous-period boundary too.
func CheckGradualShiftProgression(ctx evalctx.Context) []domain.Violation {
	var violations []domain.Violation

	for _, staff := range ctx.Staff {
		for _, date := range dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays) {
			prevDate := dateutil.AddDays(date, -1)
			prevShift, prevOK := ShiftOn(ctx, staff.ID, prevDate)
			curShift, curOK := ctx.CurrentMap.ShiftAt(staff.ID, date)
			if !prevOK || !curOK {
				continue
			}
			if prevShift != domain.Day || curShift != domain.Night {
				continue
			}

			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.GradualShiftProgressionID),
				ConstraintName: "Gradual Shift Progression",
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("%s: abrupt D→N transition on %s", ctx.StaffName(staff.ID), date),
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
