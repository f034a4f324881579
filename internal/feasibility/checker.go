// Package feasibility runs the constraint registry against one schedule
// snapshot and folds the result into a feasible/violations verdict.
package feasibility

import (
	"time"

	"github.com/arnavshah/roster-feasibility/internal/constraints"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// Check evaluates every enabled registry constraint against schedule and
// returns the aggregate result. It holds no state across calls and mutates
// nothing it is given.
func Check(schedule domain.Schedule, staff []domain.Staff, cfg domain.ConstraintConfig, previousPeriodEnd []domain.ShiftAssignment) domain.FeasibilityResult {
	ctx := evalctx.Build(schedule, staff, cfg, previousPeriodEnd)

	var violations []domain.Violation
	for _, d := range constraints.All() {
		if !d.Enabled(cfg) {
			continue
		}
		violations = append(violations, d.Check(ctx)...)
	}

	feasible := true
	for _, v := range violations {
		if v.Severity == domain.SeverityError {
			feasible = false
			break
		}
	}

	return domain.FeasibilityResult{
		Feasible:   feasible,
		Violations: violations,
		CheckedAt:  time.Now().UTC(),
	}
}
