package constraints

import (
	"fmt"
	"math"

	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// CheckWeekendFairness warns on a staff member whose weekend workload
// (Saturday+Sunday shifts worked across the period) exceeds the staff-wide
// mean by more than two.
func CheckWeekendFairness(ctx evalctx.Context) []domain.Violation {
	dates := dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays)

	worked := make(map[domain.StableId]int, len(ctx.Staff))
	var total, staffCount int
	for _, staff := range ctx.Staff {
		count := 0
		for _, date := range dates {
			if !dateutil.IsWeekend(date) {
				continue
			}
			shift, ok := ctx.CurrentMap.ShiftAt(staff.ID, date)
			if ok && shift.IsWork() {
				count++
			}
		}
		worked[staff.ID] = count
		total += count
		staffCount++
	}
	if staffCount == 0 {
		return nil
	}
	mean := float64(total) / float64(staffCount)

	var violations []domain.Violation
	for _, staff := range ctx.Staff {
		count := worked[staff.ID]
		if float64(count) <= mean+2 {
			continue
		}
		violations = append(violations, domain.Violation{
			ConstraintID:   string(domain.WeekendFairnessID),
			ConstraintName: "Weekend Fairness",
			Severity:       domain.SeverityWarning,
			Message: fmt.Sprintf("%s: %d weekend shifts worked (team mean %.1f)",
				ctx.StaffName(staff.ID), count, math.Round(mean*10)/10),
			Context: domain.ViolationContext{
				StaffID:   staff.ID,
				StaffName: ctx.StaffName(staff.ID),
			},
		})
	}
	return violations
}
