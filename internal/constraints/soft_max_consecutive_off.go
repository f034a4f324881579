package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

const defaultMaxConsecutiveOff = 2

// CheckMaxConsecutiveOff warns when a staff member's Off-day streak
// exceeds the configured maximum, symmetric to CheckMaxConsecutiveWork.
func CheckMaxConsecutiveOff(ctx evalctx.Context) []domain.Violation {
	params := ctx.Config.SoftConstraints[domain.MaxConsecutiveOffID]
	maxDays := params.MaxDays
	if maxDays <= 0 {
		maxDays = defaultMaxConsecutiveOff
	}

	var violations []domain.Violation
	for _, staff := range ctx.Staff {
		WalkCurrentStreak(ctx, staff.ID, IsOff, maxDays, func(date, streakStart string, length int) {
			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.MaxConsecutiveOffID),
				ConstraintName: "Max Consecutive Off Days",
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("%s: %d consecutive off days (max %d)", ctx.StaffName(staff.ID), length, maxDays),
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
