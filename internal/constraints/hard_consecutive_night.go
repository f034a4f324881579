package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// CheckConsecutiveNight forbids exceeding maxConsecutiveNights consecutive
// N shifts, with the streak seeded from the previous-period trail.
func CheckConsecutiveNight(ctx evalctx.Context) []domain.Violation {
	var violations []domain.Violation
	severity := HardSeverity(ctx.Config, domain.ConsecutiveNightID)
	maxNights := ctx.Config.MaxConsecutiveNights

	for _, staff := range ctx.Staff {
		WalkCurrentStreak(ctx, staff.ID, IsNight, maxNights, func(date, streakStart string, length int) {
			violations = append(violations, domain.Violation{
				ConstraintID:   string(domain.ConsecutiveNightID),
				ConstraintName: "Consecutive Night Limit",
				Severity:       severity,
				Message:        fmt.Sprintf("%s: 연속 %d일 나이트 근무 (최대 %d일 초과)", ctx.StaffName(staff.ID), length, maxNights),
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
