package constraints

import "github.com/arnavshah/roster-feasibility/internal/domain"

// HardSeverity resolves the effective severity of a hard constraint under
// cfg: monthly-night always reports as a warning regardless of the
// user's toggle, and juhu is immutable (always error) unless the config
// opts into the "open" jurisdiction profile.
func HardSeverity(cfg domain.ConstraintConfig, id domain.HardConstraintID) domain.Severity {
	if id == domain.MonthlyNightID {
		return domain.SeverityWarning
	}
	if id == domain.JuhuID && !cfg.JurisdictionAllowsJuhuDowngrade() {
		return domain.SeverityError
	}

	class, ok := cfg.ConstraintSeverity[id]
	if !ok {
		class = domain.SeverityHard
	}
	if class == domain.SeveritySoft {
		return domain.SeverityWarning
	}
	return domain.SeverityError
}
