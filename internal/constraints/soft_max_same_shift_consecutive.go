package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

const sameShiftStreakThreshold = 5

var trackedShiftTypes = []domain.ShiftType{domain.Day, domain.Evening, domain.Night}

// CheckMaxSameShiftConsecutive warns, separately per shift type, the first
// time a same-shift streak (seeded from the previous-period trail) reaches
// sameShiftStreakThreshold days.
func CheckMaxSameShiftConsecutive(ctx evalctx.Context) []domain.Violation {
	var violations []domain.Violation

	for _, staff := range ctx.Staff {
		for _, shiftType := range trackedShiftTypes {
			pred := SameShift(shiftType)
			count, streakStart := SeedStreak(ctx, staff.ID, pred)
			warned := count >= sameShiftStreakThreshold

			for _, date := range dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays) {
				s, ok := ctx.CurrentMap.ShiftAt(staff.ID, date)
				if ok && pred(s) {
					if count == 0 {
						streakStart = date
					}
					count++
					if count == sameShiftStreakThreshold && !warned {
						warned = true
						violations = append(violations, domain.Violation{
							ConstraintID:   string(domain.MaxSameShiftConsecutiveID),
							ConstraintName: "Max Same Shift Consecutive",
							Severity:       domain.SeverityWarning,
							Message:        fmt.Sprintf("%s: %d consecutive %s shifts", ctx.StaffName(staff.ID), count, shiftType),
							Context: domain.ViolationContext{
								StaffID:   staff.ID,
								StaffName: ctx.StaffName(staff.ID),
								Date:      date,
								Dates:     []string{streakStart, date},
							},
						})
					}
				} else {
					count = 0
					streakStart = ""
					warned = false
				}
			}
		}
	}
	return violations
}
