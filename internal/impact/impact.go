// Package impact computes which other cells of a schedule are affected by
// editing one target cell, for highlighting in a caller's UI.
package impact

import (
	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
)

// Reason names why a cell is impacted by a target edit.
type Reason string

const (
	ReasonStaffing Reason = "staffing"
	ReasonSequence Reason = "sequence"
	ReasonJuhu     Reason = "juhu"
)

// priority orders reasons for CellKey resolution: sequence beats juhu beats
// staffing.
var priority = map[Reason]int{
	ReasonSequence: 3,
	ReasonJuhu:     2,
	ReasonStaffing: 1,
}

// Record is one (staffId, date, reason) impact finding.
type Record struct {
	StaffID domain.StableId `json:"staffId"`
	Date    string          `json:"date"`
	Reason  Reason          `json:"reason"`
}

// Target identifies the cell an edit is proposed for.
type Target struct {
	StaffID domain.StableId `json:"staffId"`
	Date    string          `json:"date"`
}

// Compute returns every cell impacted by editing target, in no particular
// order; use Fold to resolve to one reason per cell for display.
func Compute(schedule domain.Schedule, staff []domain.Staff, target Target) []Record {
	var records []Record

	for _, s := range staff {
		if s.ID == target.StaffID {
			continue
		}
		records = append(records, Record{StaffID: s.ID, Date: target.Date, Reason: ReasonStaffing})
	}

	for offset := -2; offset <= 2; offset++ {
		if offset == 0 {
			continue
		}
		date := dateutil.AddDays(target.Date, offset)
		if !dateutil.InPeriod(date, schedule.StartDate, domain.PeriodDays) {
			continue
		}
		records = append(records, Record{StaffID: target.StaffID, Date: date, Reason: ReasonSequence})
	}

	if schedule.StaffJuhuDays != nil {
		if juhuDay, ok := schedule.StaffJuhuDays[target.StaffID]; ok {
			for _, date := range dateutil.PeriodDates(schedule.StartDate, domain.PeriodDays) {
				if date == target.Date {
					continue
				}
				if dateutil.Weekday(date) == juhuDay {
					records = append(records, Record{StaffID: target.StaffID, Date: date, Reason: ReasonJuhu})
				}
			}
		}
	}

	return records
}

// CellKey identifies one (staffId, date) cell in the folded impact map.
type CellKey struct {
	StaffID domain.StableId
	Date    string
}

// Fold collapses records into a cellKey -> highest-priority-reason map.
func Fold(records []Record) map[CellKey]Reason {
	out := make(map[CellKey]Reason, len(records))
	for _, r := range records {
		key := CellKey{StaffID: r.StaffID, Date: r.Date}
		existing, ok := out[key]
		if !ok || priority[r.Reason] > priority[existing] {
			out[key] = r.Reason
		}
	}
	return out
}
