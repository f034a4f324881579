package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

const defaultMaxPeriodOff = 9

// CheckMaxPeriodOff warns when a staff member's total Off-day count for the
// 28-day period exceeds the configured maximum.
func CheckMaxPeriodOff(ctx evalctx.Context) []domain.Violation {
	params := ctx.Config.SoftConstraints[domain.MaxPeriodOffID]
	maxOff := params.MaxOff
	if maxOff <= 0 {
		maxOff = defaultMaxPeriodOff
	}

	var violations []domain.Violation
	for _, staff := range ctx.Staff {
		var offDates []string
		for _, date := range dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays) {
			if shift, ok := ctx.CurrentMap.ShiftAt(staff.ID, date); ok && shift == domain.Off {
				offDates = append(offDates, date)
			}
		}
		if len(offDates) <= maxOff {
			continue
		}

		violations = append(violations, domain.Violation{
			ConstraintID:   string(domain.MaxPeriodOffID),
			ConstraintName: "Max Off Days Per Period",
			Severity:       domain.SeverityWarning,
			Message:        fmt.Sprintf("%s: %d off days this period (max %d)", ctx.StaffName(staff.ID), len(offDates), maxOff),
			Context: domain.ViolationContext{
				StaffID:   staff.ID,
				StaffName: ctx.StaffName(staff.ID),
				Dates:     offDates,
			},
		})
	}
	return violations
}
