// Package shiftstats computes per-staff and per-date aggregates over a
// schedule, shared by the completeness gates and several constraints.
package shiftstats

import "github.com/arnavshah/roster-feasibility/internal/domain"

// AssignmentMap indexes a schedule's assignments by (staffId, date) for
// O(1) lookup; built once per evaluation.
type AssignmentMap map[domain.StableId]map[string]domain.ShiftType

// BuildAssignmentMap indexes the given assignments.
func BuildAssignmentMap(assignments []domain.ShiftAssignment) AssignmentMap {
	m := make(AssignmentMap)
	for _, a := range assignments {
		if m[a.StaffID] == nil {
			m[a.StaffID] = make(map[string]domain.ShiftType)
		}
		m[a.StaffID][a.Date] = a.Shift
	}
	return m
}

// ShiftAt returns the shift assigned to staffID on date, and whether one
// exists at all.
func (m AssignmentMap) ShiftAt(staffID domain.StableId, date string) (domain.ShiftType, bool) {
	byDate, ok := m[staffID]
	if !ok {
		return "", false
	}
	s, ok := byDate[date]
	return s, ok
}

// ShiftCounts returns, for one staff member, how many assignments of each
// shift type they hold across the given dates.
func ShiftCounts(m AssignmentMap, staffID domain.StableId, dates []string) map[domain.ShiftType]int {
	counts := make(map[domain.ShiftType]int)
	byDate := m[staffID]
	for _, d := range dates {
		if s, ok := byDate[d]; ok {
			counts[s]++
		}
	}
	return counts
}

// DateStaffCounts returns, for one date, how many staff are assigned each
// shift type.
func DateStaffCounts(assignments []domain.ShiftAssignment, date string) map[domain.ShiftType]int {
	counts := make(map[domain.ShiftType]int)
	for _, a := range assignments {
		if a.Date == date {
			counts[a.Shift]++
		}
	}
	return counts
}

// Completeness is the ratio of filled cells to the maximum possible
// (|staff| x periodDays).
func Completeness(assignmentCount, staffCount, periodDays int) float64 {
	if staffCount == 0 || periodDays == 0 {
		return 0
	}
	return float64(assignmentCount) / float64(staffCount*periodDays)
}

// WeekCompleteness is the ratio of filled cells within a specific set of
// week dates to 7 * |staff|, used by the weekly-off gate.
func WeekCompleteness(assignments []domain.ShiftAssignment, weekDates []string, staffCount int) float64 {
	if staffCount == 0 {
		return 0
	}
	inWeek := make(map[string]bool, len(weekDates))
	for _, d := range weekDates {
		inWeek[d] = true
	}
	count := 0
	for _, a := range assignments {
		if inWeek[a.Date] {
			count++
		}
	}
	return float64(count) / float64(7*staffCount)
}
