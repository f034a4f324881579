package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// CheckRestClustering warns on an isolated Off day: one with no Off
// neighbor on either side.
func CheckRestClustering(ctx evalctx.Context) []domain.Violation {
	var violations []domain.Violation

	for _, staff := range ctx.Staff {
		for _, date := range dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays) {
			shift, ok := ctx.CurrentMap.ShiftAt(staff.ID, date)
			if !ok || shift != domain.Off {
				continue
			}

			prev, _ := ShiftOn(ctx, staff.ID, dateutil.AddDays(date, -1))
			next, _ := ShiftOn(ctx, staff.ID, dateutil.AddDays(date, 1))
			if prev == domain.Off || next == domain.Off {
				continue
			}

			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.RestClusteringID),
				ConstraintName: "Rest Clustering",
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("%s: isolated single off day on %s", ctx.StaffName(staff.ID), date),
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
