package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

const defaultMinNightBlockSize = 2

// CheckNightBlockPolicy warns on an isolated single-day night shift: a day
// whose shift is N but whose neighbors on both sides are not N.
func CheckNightBlockPolicy(ctx evalctx.Context) []domain.Violation {
	params := ctx.Config.SoftConstraints[domain.NightBlockPolicyID]
	minBlockSize := params.MinBlockSize
	if minBlockSize <= 0 {
		minBlockSize = defaultMinNightBlockSize
	}

	var violations []domain.Violation
	for _, staff := range ctx.Staff {
		for _, date := range dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays) {
			shift, ok := ctx.CurrentMap.ShiftAt(staff.ID, date)
			if !ok || shift != domain.Night {
				continue
			}

			prev, _ := ShiftOn(ctx, staff.ID, dateutil.AddDays(date, -1))
			next, _ := ShiftOn(ctx, staff.ID, dateutil.AddDays(date, 1))
			if prev == domain.Night || next == domain.Night {
				continue
			}

			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.NightBlockPolicyID),
				ConstraintName: "Night Block Policy",
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("%s: isolated single night shift on %s (prefer blocks of at least %d)", ctx.StaffName(staff.ID), date, minBlockSize),
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
