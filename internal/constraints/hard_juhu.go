package constraints

import (
	"fmt"
	"time"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// CheckJuhu enforces the weekly legal off-day, where known. Staff with no
// recorded juhuDay are inert for this constraint — the engine never
// computes juhu assignment itself.
func CheckJuhu(ctx evalctx.Context) []domain.Violation {
	var violations []domain.Violation
	severity := HardSeverity(ctx.Config, domain.JuhuID)

	for _, staff := range ctx.Staff {
		juhuDay, ok := ctx.JuhuDay(staff.ID)
		if !ok {
			continue
		}

		for _, date := range dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays) {
			if int(dateutil.Weekday(date)) != juhuDay {
				continue
			}

			shift, assigned := ctx.CurrentMap.ShiftAt(staff.ID, date)
			if !assigned || shift == domain.Off {
				continue
			}

			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.JuhuID),
				ConstraintName: "Weekly Legal Off-Day (Juhu)",
				Severity:       severity,
				Message:        fmt.Sprintf("%s: worked %s on their legal weekly off-day (%s)", ctx.StaffName(staff.ID), shift, time.Weekday(juhuDay)),
				Context: domain.ViolationContext{
					StaffID:   staff.ID,
					StaffName: ctx.StaffName(staff.ID),
					Date:      date,
				},
			})
		}
	}

	return violations
}
