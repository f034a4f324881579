// Package constraints implements the seven hard and ten soft constraints
// of the feasibility engine, plus the registry that orders and gates them.
package constraints

import (
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// CheckFunc is the pure function every constraint implements: same context
// in, same violations out, independent of registry evaluation order.
type CheckFunc func(ctx evalctx.Context) []domain.Violation

// Descriptor describes one constraint: its stable id, display name,
// natural severity class, and check function.
type Descriptor struct {
	ID            string
	Name          string
	SeverityClass domain.SeverityClass
	Check         CheckFunc
}

// Enabled resolves whether this descriptor is active under cfg.
func (d Descriptor) Enabled(cfg domain.ConstraintConfig) bool {
	if d.SeverityClass == domain.SeverityHard {
		return hardEnabled(cfg, domain.HardConstraintID(d.ID))
	}
	return softEnabled(cfg, domain.SoftConstraintID(d.ID))
}

func hardEnabled(cfg domain.ConstraintConfig, id domain.HardConstraintID) bool {
	v, ok := cfg.EnabledConstraints[id]
	if !ok {
		return true
	}
	return v
}

func softEnabled(cfg domain.ConstraintConfig, id domain.SoftConstraintID) bool {
	p, ok := cfg.SoftConstraints[id]
	if !ok {
		return false
	}
	return p.Enabled
}

// HardRegistry lists the seven legal/coverage constraints, in the order
// violations are reported when all are enabled.
var HardRegistry = []Descriptor{
	{ID: string(domain.ShiftOrderID), Name: "Forbidden Shift Transition", SeverityClass: domain.SeverityHard, Check: CheckShiftOrder},
	{ID: string(domain.NightOffDayID), Name: "Night-Off-Day Rest Violation", SeverityClass: domain.SeverityHard, Check: CheckNightOffDay},
	{ID: string(domain.ConsecutiveNightID), Name: "Consecutive Night Limit", SeverityClass: domain.SeverityHard, Check: CheckConsecutiveNight},
	{ID: string(domain.WeeklyOffID), Name: "Weekly Off Requirement", SeverityClass: domain.SeverityHard, Check: CheckWeeklyOff},
	{ID: string(domain.JuhuID), Name: "Weekly Legal Off-Day (Juhu)", SeverityClass: domain.SeverityHard, Check: CheckJuhu},
	{ID: string(domain.StaffingID), Name: "Minimum Staffing", SeverityClass: domain.SeverityHard, Check: CheckStaffing},
	{ID: string(domain.MonthlyNightID), Name: "Monthly Night Requirement", SeverityClass: domain.SeverityHard, Check: CheckMonthlyNight},
}

// SoftRegistry lists the ten tier-weighted preference constraints.
var SoftRegistry = []Descriptor{
	{ID: string(domain.MaxConsecutiveWorkID), Name: "Max Consecutive Work Days", SeverityClass: domain.SeveritySoft, Check: CheckMaxConsecutiveWork},
	{ID: string(domain.NightBlockPolicyID), Name: "Night Block Policy", SeverityClass: domain.SeveritySoft, Check: CheckNightBlockPolicy},
	{ID: string(domain.MaxPeriodOffID), Name: "Max Off Days Per Period", SeverityClass: domain.SeveritySoft, Check: CheckMaxPeriodOff},
	{ID: string(domain.MaxConsecutiveOffID), Name: "Max Consecutive Off Days", SeverityClass: domain.SeveritySoft, Check: CheckMaxConsecutiveOff},
	{ID: string(domain.GradualShiftProgressionID), Name: "Gradual Shift Progression", SeverityClass: domain.SeveritySoft, Check: CheckGradualShiftProgression},
	{ID: string(domain.MaxSameShiftConsecutiveID), Name: "Max Same Shift Consecutive", SeverityClass: domain.SeveritySoft, Check: CheckMaxSameShiftConsecutive},
	{ID: string(domain.RestClusteringID), Name: "Rest Clustering", SeverityClass: domain.SeveritySoft, Check: CheckRestClustering},
	{ID: string(domain.PostRestDayShiftID), Name: "Post-Rest Night Shift", SeverityClass: domain.SeveritySoft, Check: CheckPostRestDayShift},
	{ID: string(domain.WeekendFairnessID), Name: "Weekend Fairness", SeverityClass: domain.SeveritySoft, Check: CheckWeekendFairness},
	{ID: string(domain.ShiftContinuityID), Name: "Shift Continuity", SeverityClass: domain.SeveritySoft, Check: CheckShiftContinuity},
}

// All returns the full registry, hard constraints first, in stable order.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(HardRegistry)+len(SoftRegistry))
	out = append(out, HardRegistry...)
	out = append(out, SoftRegistry...)
	return out
}

// Tier is the soft-constraint priority class used by the downstream
// optimizer to scale penalties. The feasibility engine
// itself never applies these weights, and violation messages do not
// mention the tier.
type Tier int

const (
	Tier1 Tier = 1
	Tier2 Tier = 2
	Tier3 Tier = 3
)

// TierWeight is the fixed penalty multiplier for one tier.
func TierWeight(t Tier) int {
	switch t {
	case Tier1:
		return 1000
	case Tier2:
		return 100
	case Tier3:
		return 10
	default:
		return 0
	}
}

// SoftTier maps each soft constraint id to its tier.
var SoftTier = map[domain.SoftConstraintID]Tier{
	domain.MaxConsecutiveWorkID:      Tier1,
	domain.NightBlockPolicyID:        Tier1,
	domain.MaxPeriodOffID:            Tier1,
	domain.MaxConsecutiveOffID:       Tier1,
	domain.GradualShiftProgressionID: Tier2,
	domain.MaxSameShiftConsecutiveID: Tier2,
	domain.RestClusteringID:         Tier2,
	domain.PostRestDayShiftID:       Tier2,
	domain.WeekendFairnessID:        Tier3,
	domain.ShiftContinuityID:        Tier3,
}
