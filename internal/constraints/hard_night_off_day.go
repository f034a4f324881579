package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// CheckNightOffDay forbids the three-day N, Off, D pattern (a legal rest
// violation). Sliding windows start at offsets -2..+25 relative to the
// schedule's start date; a violation is only reported if the D (the third
// day of the window) lies inside the current period.
func CheckNightOffDay(ctx evalctx.Context) []domain.Violation {
	var violations []domain.Violation
	severity := HardSeverity(ctx.Config, domain.NightOffDayID)

	for _, staff := range ctx.Staff {
		for offset := -2; offset <= domain.PeriodDays-3; offset++ {
			d1 := dateutil.AddDays(ctx.Schedule.StartDate, offset)
			d2 := dateutil.AddDays(ctx.Schedule.StartDate, offset+1)
			d3 := dateutil.AddDays(ctx.Schedule.StartDate, offset+2)

			if !dateutil.InPeriod(d3, ctx.Schedule.StartDate, domain.PeriodDays) {
				continue
			}

			s1, ok1 := ShiftOn(ctx, staff.ID, d1)
			s2, ok2 := ShiftOn(ctx, staff.ID, d2)
			s3, ok3 := ShiftOn(ctx, staff.ID, d3)
			if !ok1 || !ok2 || !ok3 {
				continue
			}
			if s1 != domain.Night || s2 != domain.Off || s3 != domain.Day {
				continue
			}

			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.NightOffDayID),
				ConstraintName: "Night-Off-Day Rest Violation",
				Severity:       severity,
				Message:        fmt.Sprintf("%s: rest violation N-Off-D across %s, %s, %s", ctx.StaffName(staff.ID), d1, d2, d3),
				Context: domain.ViolationContext{
					StaffID:   staff.ID,
					StaffName: ctx.StaffName(staff.ID),
					Date:      d3,
					Dates:     []string{d1, d2, d3},
				},
			})
		}
	}

	return violations
}
