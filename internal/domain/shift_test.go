package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftTypeIsWorkExcludesOffAndEmpty(t *testing.T) {
	assert.True(t, Day.IsWork())
	assert.True(t, Evening.IsWork())
	assert.True(t, Night.IsWork())
	assert.False(t, Off.IsWork())
	assert.False(t, ShiftType("").IsWork())
}

func TestShiftTypeValidRecognizesOnlyTheFourKnownStates(t *testing.T) {
	assert.True(t, Day.Valid())
	assert.True(t, Off.Valid())
	assert.False(t, ShiftType("X").Valid())
}

func TestRequirementForSelectsTheMatchingDailyStaffing(t *testing.T) {
	req := StaffingRequirement{
		Day:     DailyStaffing{Min: 1},
		Evening: DailyStaffing{Min: 2},
		Night:   DailyStaffing{Min: 3},
	}

	d, ok := req.RequirementFor(Day)
	assert.True(t, ok)
	assert.Equal(t, 1, d.Min)

	_, ok = req.RequirementFor(Off)
	assert.False(t, ok)
}

func TestJurisdictionAllowsJuhuDowngradeOnlyUnderTheOpenProfile(t *testing.T) {
	assert.False(t, ConstraintConfig{Jurisdiction: JurisdictionKRDefault}.JurisdictionAllowsJuhuDowngrade())
	assert.True(t, ConstraintConfig{Jurisdiction: JurisdictionOpen}.JurisdictionAllowsJuhuDowngrade())
}
