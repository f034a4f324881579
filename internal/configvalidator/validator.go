// Package configvalidator runs static sanity checks over a ConstraintConfig
// and staff roster, independent of the constraint engine itself. These
// advisories mean a config can be structurally valid yet still
// flagged here as operationally unworkable.
package configvalidator

import (
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/domain"
)

// Advisory is one sanity-check finding.
type Advisory struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Validate returns every advisory that applies to cfg given staffCount
// rostered staff.
func Validate(cfg domain.ConstraintConfig, staffCount int) []Advisory {
	var advisories []Advisory

	if staffCount == 0 {
		advisories = append(advisories, Advisory{
			Code:    "zero-staff",
			Message: "no staff are rostered",
		})
		return advisories
	}

	advisories = append(advisories, coverageAdvisories(cfg.WeekdayStaffing, "weekday", staffCount)...)
	advisories = append(advisories, coverageAdvisories(cfg.WeekendStaffing, "weekend", staffCount)...)

	requiredNights := cfg.WeekdayStaffing.Night.Min * domain.PeriodDays
	available := staffCount * cfg.MonthlyNightsRequired
	if requiredNights > available {
		advisories = append(advisories, Advisory{
			Code: "insufficient-night-capacity",
			Message: fmt.Sprintf(
				"period requires %d night assignments but staff can only supply %d (staff=%d x monthlyNightsRequired=%d)",
				requiredNights, available, staffCount, cfg.MonthlyNightsRequired),
		})
	}

	if cfg.MaxConsecutiveNights < 1 {
		advisories = append(advisories, Advisory{
			Code:    "invalid-max-consecutive-nights",
			Message: fmt.Sprintf("maxConsecutiveNights must be at least 1, got %d", cfg.MaxConsecutiveNights),
		})
	}

	return advisories
}

func coverageAdvisories(req domain.StaffingRequirement, label string, staffCount int) []Advisory {
	total := req.Day.Min + req.Evening.Min + req.Night.Min
	if total <= staffCount {
		return nil
	}
	return []Advisory{{
		Code: fmt.Sprintf("%s-coverage-infeasible", label),
		Message: fmt.Sprintf(
			"%s minimum coverage (day=%d+evening=%d+night=%d=%d) exceeds staff count %d",
			label, req.Day.Min, req.Evening.Min, req.Night.Min, total, staffCount),
	}}
}
