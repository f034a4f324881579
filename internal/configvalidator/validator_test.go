package configvalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnavshah/roster-feasibility/internal/domain"
)

func codes(advisories []Advisory) []string {
	out := make([]string, len(advisories))
	for i, a := range advisories {
		out[i] = a.Code
	}
	return out
}

func TestValidateFlagsZeroStaffAndStopsEarly(t *testing.T) {
	cfg := domain.ConstraintConfig{MaxConsecutiveNights: 0}

	advisories := Validate(cfg, 0)

	assert.Equal(t, []string{"zero-staff"}, codes(advisories))
}

func TestValidateFlagsCoverageInfeasibleWeekdayAndWeekend(t *testing.T) {
	cfg := domain.ConstraintConfig{
		MaxConsecutiveNights:  4,
		MonthlyNightsRequired: 7,
		WeekdayStaffing: domain.StaffingRequirement{
			Day: domain.DailyStaffing{Min: 3}, Evening: domain.DailyStaffing{Min: 3}, Night: domain.DailyStaffing{Min: 3},
		},
		WeekendStaffing: domain.StaffingRequirement{
			Day: domain.DailyStaffing{Min: 3}, Evening: domain.DailyStaffing{Min: 3}, Night: domain.DailyStaffing{Min: 3},
		},
	}

	advisories := Validate(cfg, 2)

	assert.Contains(t, codes(advisories), "weekday-coverage-infeasible")
	assert.Contains(t, codes(advisories), "weekend-coverage-infeasible")
}

func TestValidateFlagsInsufficientNightCapacity(t *testing.T) {
	cfg := domain.ConstraintConfig{
		MaxConsecutiveNights:  4,
		MonthlyNightsRequired: 2,
		WeekdayStaffing: domain.StaffingRequirement{
			Night: domain.DailyStaffing{Min: 2},
		},
	}

	advisories := Validate(cfg, 3)

	assert.Contains(t, codes(advisories), "insufficient-night-capacity")
}

func TestValidateFlagsInvalidMaxConsecutiveNights(t *testing.T) {
	cfg := domain.ConstraintConfig{MaxConsecutiveNights: 0, MonthlyNightsRequired: 7}

	advisories := Validate(cfg, 5)

	assert.Contains(t, codes(advisories), "invalid-max-consecutive-nights")
}

func TestValidateReturnsNoAdvisoriesForAHealthyConfig(t *testing.T) {
	cfg := domain.ConstraintConfig{
		MaxConsecutiveNights:  4,
		MonthlyNightsRequired: 7,
		WeekdayStaffing: domain.StaffingRequirement{
			Day: domain.DailyStaffing{Min: 1}, Evening: domain.DailyStaffing{Min: 1}, Night: domain.DailyStaffing{Min: 1},
		},
		WeekendStaffing: domain.StaffingRequirement{
			Day: domain.DailyStaffing{Min: 1}, Evening: domain.DailyStaffing{Min: 1}, Night: domain.DailyStaffing{Min: 1},
		},
	}

	advisories := Validate(cfg, 10)

	assert.Empty(t, advisories)
}
