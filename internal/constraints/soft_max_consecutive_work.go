package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

const defaultMaxConsecutiveWorkDays = 5

// CheckMaxConsecutiveWork warns when a staff member exceeds the configured
// maximum of consecutive non-Off days, seeded from the previous-period
// trail.
func CheckMaxConsecutiveWork(ctx evalctx.Context) []domain.Violation {
	params := ctx.Config.SoftConstraints[domain.MaxConsecutiveWorkID]
	maxDays := params.MaxDays
	if maxDays <= 0 {
		maxDays = defaultMaxConsecutiveWorkDays
	}

	var violations []domain.Violation
	for _, staff := range ctx.Staff {
		WalkCurrentStreak(ctx, staff.ID, IsWork, maxDays, func(date, streakStart string, length int) {
			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.MaxConsecutiveWorkID),
				ConstraintName: "Max Consecutive Work Days",
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("%s: %d consecutive work days (max %d)", ctx.StaffName(staff.ID), length, maxDays),
				Context: domain.ViolationContext{
					StaffID:   staff.ID,
					StaffName: ctx.StaffName(staff.ID),
					Date:      date,
					Dates:     []string{streakStart, date},
				},
			})
		})
	}
	return violations
}
