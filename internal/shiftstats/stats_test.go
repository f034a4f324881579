package shiftstats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnavshah/roster-feasibility/internal/domain"
)

func sampleAssignments() []domain.ShiftAssignment {
	return []domain.ShiftAssignment{
		{StaffID: "s1", Date: "2024-01-01", Shift: domain.Day},
		{StaffID: "s1", Date: "2024-01-02", Shift: domain.Night},
		{StaffID: "s2", Date: "2024-01-01", Shift: domain.Evening},
	}
}

func TestBuildAssignmentMapIndexesByStaffAndDate(t *testing.T) {
	m := BuildAssignmentMap(sampleAssignments())

	s, ok := m.ShiftAt("s1", "2024-01-01")
	assert.True(t, ok)
	assert.Equal(t, domain.Day, s)

	_, ok = m.ShiftAt("s1", "2024-01-09")
	assert.False(t, ok)

	_, ok = m.ShiftAt("unknown", "2024-01-01")
	assert.False(t, ok)
}

func TestShiftCountsTalliesOnlyRequestedDates(t *testing.T) {
	m := BuildAssignmentMap(sampleAssignments())

	counts := ShiftCounts(m, "s1", []string{"2024-01-01", "2024-01-02", "2024-01-03"})

	assert.Equal(t, 1, counts[domain.Day])
	assert.Equal(t, 1, counts[domain.Night])
	assert.Equal(t, 0, counts[domain.Off])
}

func TestDateStaffCountsTalliesAcrossStaffForOneDate(t *testing.T) {
	counts := DateStaffCounts(sampleAssignments(), "2024-01-01")

	assert.Equal(t, 1, counts[domain.Day])
	assert.Equal(t, 1, counts[domain.Evening])
}

func TestCompletenessIsRatioOfFilledToPossibleCells(t *testing.T) {
	assert.InDelta(t, 0.5, Completeness(14, 1, 28), 1e-9)
	assert.Equal(t, float64(0), Completeness(10, 0, 28))
	assert.Equal(t, float64(0), Completeness(10, 2, 0))
}

func TestWeekCompletenessCountsOnlyAssignmentsWithinTheGivenWeek(t *testing.T) {
	weekDates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07"}
	assignments := append(sampleAssignments(), domain.ShiftAssignment{StaffID: "s2", Date: "2024-02-01", Shift: domain.Day})

	ratio := WeekCompleteness(assignments, weekDates, 2)

	assert.InDelta(t, 3.0/14.0, ratio, 1e-9)
}
