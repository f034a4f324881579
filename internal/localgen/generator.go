// Package localgen provides a best-effort greedy fallback schedule
// generator for use when no external optimizer is configured. It
// generalizes a least-loaded-first volunteer/shift assignment algorithm
// from {volunteer, shift} pairs to {staff, ShiftType} cells on a fixed
// 28-day grid.
package localgen

import (
	"sort"

	"github.com/arnavshah/roster-feasibility/internal/constraints"
	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// ConflictReason records why a cell could not be filled.
type ConflictReason struct {
	Date      string `json:"date"`
	ShiftType string `json:"shiftType"`
	Reason    string `json:"reason"`
}

// Result is the generator's output: an assignment for every unlocked
// period cell it could fill, plus the conflicts it gave up on.
type Result struct {
	Assignments []domain.ShiftAssignment
	Conflicts   []ConflictReason
}

type load struct {
	staffID    domain.StableId
	totalShifts int
	nightRun   int // not populated; pickCandidate computes the night streak itself
}

// Generate greedily fills every unlocked (staff, date) slot needed to
// satisfy the weekday/weekend staffing minimums, preferring the
// least-loaded eligible staff member for each slot. Locked assignments
// are preserved untouched. The output is not claimed to be optimal; it
// is a convenience path and is always re-verified against the real
// feasibility checker by the caller.
func Generate(schedule domain.Schedule, staff []domain.Staff, cfg domain.ConstraintConfig, previousPeriodEnd []domain.ShiftAssignment) Result {
	locked := make(map[string]domain.ShiftAssignment)
	for _, a := range schedule.Assignments {
		if a.Locked {
			locked[cellKey(a.StaffID, a.Date)] = a
		}
	}

	working := make([]domain.ShiftAssignment, 0, len(schedule.Assignments))
	for _, a := range schedule.Assignments {
		if a.Locked {
			working = append(working, a)
		}
	}

	dates := dateutil.PeriodDates(schedule.StartDate, domain.PeriodDays)
	var conflicts []ConflictReason

	for _, date := range dates {
		isWeekend := dateutil.IsWeekend(date)
		var req domain.StaffingRequirement
		if isWeekend {
			req = cfg.WeekendStaffing
		} else {
			req = cfg.WeekdayStaffing
		}

		for _, shiftType := range []domain.ShiftType{domain.Day, domain.Evening, domain.Night} {
			requirement, ok := req.RequirementFor(shiftType)
			if !ok {
				continue
			}

			haveCount := 0
			for _, a := range working {
				if a.Date == date && a.Shift == shiftType {
					haveCount++
				}
			}

			for haveCount < requirement.Min {
				probe := domain.Schedule{StartDate: schedule.StartDate, Assignments: working, StaffJuhuDays: schedule.StaffJuhuDays}
				ctx := evalctx.Build(probe, staff, cfg, previousPeriodEnd)

				candidate, reason := pickCandidate(ctx, staff, working, locked, date, shiftType, cfg)
				if candidate == "" {
					conflicts = append(conflicts, ConflictReason{Date: date, ShiftType: string(shiftType), Reason: reason})
					break
				}

				working = append(working, domain.ShiftAssignment{StaffID: candidate, Date: date, Shift: shiftType})
				haveCount++
			}
		}
	}

	// Fill any staff member's remaining unassigned period days with Off.
	assigned := make(map[string]bool, len(working))
	for _, a := range working {
		assigned[cellKey(a.StaffID, a.Date)] = true
	}
	for _, s := range staff {
		for _, date := range dates {
			if !assigned[cellKey(s.ID, date)] {
				working = append(working, domain.ShiftAssignment{StaffID: s.ID, Date: date, Shift: domain.Off})
			}
		}
	}

	return Result{Assignments: working, Conflicts: conflicts}
}

func cellKey(staffID domain.StableId, date string) string {
	return staffID + "|" + date
}

// pickCandidate selects the least-loaded staff member eligible for
// (date, shiftType): no existing assignment that day, no forbidden
// shift-order transition, no juhu-day conflict, and no breach of
// maxConsecutiveNights for a Night pick.
func pickCandidate(ctx evalctx.Context, staff []domain.Staff, working []domain.ShiftAssignment, locked map[string]domain.ShiftAssignment, date string, shiftType domain.ShiftType, cfg domain.ConstraintConfig) (domain.StableId, string) {
	loads := buildLoads(working, staff)
	sort.Slice(loads, func(i, j int) bool { return loads[i].totalShifts < loads[j].totalShifts })

	for _, l := range loads {
		if _, taken := locked[cellKey(l.staffID, date)]; taken {
			continue
		}
		if ctx.CurrentMap != nil {
			if _, ok := ctx.CurrentMap.ShiftAt(l.staffID, date); ok {
				continue
			}
		}

		if juhuDay, ok := ctx.JuhuDay(l.staffID); ok && int(dateutil.Weekday(date)) == juhuDay && shiftType != domain.Off {
			continue
		}

		prevShift, prevOK := constraints.ShiftOn(ctx, l.staffID, dateutil.AddDays(date, -1))
		if prevOK && forbidsTransition(prevShift, shiftType) {
			continue
		}

		if shiftType == domain.Day && prevOK && prevShift == domain.Off {
			twoBack, twoBackOK := constraints.ShiftOn(ctx, l.staffID, dateutil.AddDays(date, -2))
			if twoBackOK && twoBack == domain.Night {
				continue
			}
		}

		if shiftType == domain.Night {
			run := 0
			for d := dateutil.AddDays(date, -1); ; d = dateutil.AddDays(d, -1) {
				s, ok := constraints.ShiftOn(ctx, l.staffID, d)
				if !ok || s != domain.Night {
					break
				}
				run++
			}
			if run >= cfg.MaxConsecutiveNights {
				continue
			}
		}

		return l.staffID, ""
	}

	return "", "no eligible staff member available (load, juhu, sequence, or streak constraints exhausted)"
}

func forbidsTransition(prev, cur domain.ShiftType) bool {
	switch {
	case prev == domain.Night && cur == domain.Day:
		return true
	case prev == domain.Night && cur == domain.Evening:
		return true
	case prev == domain.Evening && cur == domain.Day:
		return true
	default:
		return false
	}
}

func buildLoads(working []domain.ShiftAssignment, staff []domain.Staff) []load {
	counts := make(map[domain.StableId]int, len(staff))
	for _, s := range staff {
		counts[s.ID] = 0
	}
	for _, a := range working {
		if a.Shift.IsWork() {
			counts[a.StaffID]++
		}
	}

	loads := make([]load, 0, len(staff))
	for _, s := range staff {
		loads = append(loads, load{staffID: s.ID, totalShifts: counts[s.ID]})
	}
	return loads
}
