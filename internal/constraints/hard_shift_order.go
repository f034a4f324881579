package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

func isForbiddenTransition(prev, cur domain.ShiftType) bool {
	switch {
	case prev == domain.Night && cur == domain.Day:
		return true
	case prev == domain.Night && cur == domain.Evening:
		return true
	case prev == domain.Evening && cur == domain.Day:
		return true
	default:
		return false
	}
}

// CheckShiftOrder forbids the N->D, N->E, and E->D day-to-day transitions,
// both within the current period and across the previous-period boundary.
func CheckShiftOrder(ctx evalctx.Context) []domain.Violation {
	var violations []domain.Violation
	severity := HardSeverity(ctx.Config, domain.ShiftOrderID)

	for _, staff := range ctx.Staff {
		for _, date := range dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays) {
			prevDate := dateutil.AddDays(date, -1)
			prevShift, prevOK := ShiftOn(ctx, staff.ID, prevDate)
			curShift, curOK := ctx.CurrentMap.ShiftAt(staff.ID, date)
			if !prevOK || !curOK {
				continue
			}
			if !isForbiddenTransition(prevShift, curShift) {
				continue
			}

			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.ShiftOrderID),
				ConstraintName: "Forbidden Shift Transition",
				Severity:       severity,
				Message:        fmt.Sprintf("%s: forbidden shift transition %s→%s on %s", ctx.StaffName(staff.ID), prevShift, curShift, date),
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
