// Package evalctx builds the immutable evaluation context shared by every
// constraint check.
package evalctx

import (
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/shiftstats"
)

// Context is the bundle passed to every constraint. It is built once per
// evaluation and never mutated afterward; constraints return new violation
// slices and read from Context only.
type Context struct {
	Schedule              domain.Schedule
	Staff                 []domain.Staff
	Config                domain.ConstraintConfig
	PreviousPeriodEnd     []domain.ShiftAssignment
	ScheduleCompleteness  float64

	// CurrentMap and PreviousMap are shared, precomputed (staffId,date)
	// lookups built once per evaluation.
	CurrentMap  shiftstats.AssignmentMap
	PreviousMap shiftstats.AssignmentMap

	staffByID map[domain.StableId]domain.Staff
}

// Build constructs an immutable Context from the raw inputs of one
// evaluation.
func Build(schedule domain.Schedule, staff []domain.Staff, config domain.ConstraintConfig, previousPeriodEnd []domain.ShiftAssignment) Context {
	completeness := shiftstats.Completeness(len(schedule.Assignments), len(staff), domain.PeriodDays)

	staffByID := make(map[domain.StableId]domain.Staff, len(staff))
	for _, s := range staff {
		staffByID[s.ID] = s
	}

	return Context{
		Schedule:             schedule,
		Staff:                staff,
		Config:               config,
		PreviousPeriodEnd:    previousPeriodEnd,
		ScheduleCompleteness: completeness,
		CurrentMap:           shiftstats.BuildAssignmentMap(schedule.Assignments),
		PreviousMap:          shiftstats.BuildAssignmentMap(previousPeriodEnd),
		staffByID:            staffByID,
	}
}

// StaffName resolves a staff id to its display name, or the id itself if
// unknown — a constraint should never fail to emit a message over a
// missing lookup.
func (c Context) StaffName(id domain.StableId) string {
	if s, ok := c.staffByID[id]; ok {
		return s.Name
	}
	return id
}

// JuhuDay returns the staff member's weekly legal off-day, if known.
func (c Context) JuhuDay(id domain.StableId) (int, bool) {
	if c.Schedule.StaffJuhuDays == nil {
		return 0, false
	}
	d, ok := c.Schedule.StaffJuhuDays[id]
	return int(d), ok
}

// StaffingFor returns the staffing requirement applicable to date (weekend
// vs weekday).
func (c Context) StaffingFor(isWeekend bool) domain.StaffingRequirement {
	if isWeekend {
		return c.Config.WeekendStaffing
	}
	return c.Config.WeekdayStaffing
}
