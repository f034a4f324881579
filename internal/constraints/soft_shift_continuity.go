package constraints

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

const defaultMaxShiftChanges = 10

// CheckShiftContinuity warns when a staff member's number of worked-shift
// type changes (D/E/N transitions, Off days excluded) across the period
// exceeds the configured maximum.
func CheckShiftContinuity(ctx evalctx.Context) []domain.Violation {
	params := ctx.Config.SoftConstraints[domain.ShiftContinuityID]
	maxChanges := params.MaxDays
	if maxChanges <= 0 {
		maxChanges = defaultMaxShiftChanges
	}

	dates := dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays)

	var violations []domain.Violation
	for _, staff := range ctx.Staff {
		changes := 0
		var last domain.ShiftType
		haveLast := false

		for _, date := range dates {
			shift, ok := ctx.CurrentMap.ShiftAt(staff.ID, date)
			if !ok || !shift.IsWork() {
				continue
			}
			if haveLast && shift != last {
				changes++
			}
			last = shift
			haveLast = true
		}

		if changes <= maxChanges {
			continue
		}
		violations = append(violations, domain.Violation{
			ConstraintID:   string(domain.ShiftContinuityID),
			ConstraintName: "Shift Continuity",
			Severity:       domain.SeverityWarning,
			Message:        fmt.Sprintf("%s: %d shift-type changes across the period (max %d)", ctx.StaffName(staff.ID), changes, maxChanges),
			Context: domain.ViolationContext{
				StaffID:   staff.ID,
				StaffName: ctx.StaffName(staff.ID),
			},
		})
	}
	return violations
}
