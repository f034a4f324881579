package constraints

import (
	"github.com/arnavshah/roster-feasibility/internal/dateutil"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/evalctx"
)

// Predicate reports whether a shift satisfies a streak's continuation
// condition (is N, is non-Off, is Off, is a specific shift type, ...).
type Predicate func(domain.ShiftType) bool

// ShiftOn resolves the shift a staff member holds on date, transparently
// reading from the previous-period trail when date precedes the schedule's
// start, or from the current schedule otherwise. This is the single
// lookup every boundary-crossing constraint uses.
func ShiftOn(ctx evalctx.Context, staffID domain.StableId, date string) (domain.ShiftType, bool) {
	if dateutil.Offset(date, ctx.Schedule.StartDate) < 0 {
		return ctx.PreviousMap.ShiftAt(staffID, date)
	}
	return ctx.CurrentMap.ShiftAt(staffID, date)
}

// SeedStreak walks backward from day -1 of the previous-period trail, up
// to domain.TrailDays days, counting how many consecutive days satisfy
// pred. It stops at the first day that fails pred, at a gap (no
// assignment), or once the trail is exhausted. It returns the count and
// the earliest (oldest) date included in the streak, or "" if count is 0.
func SeedStreak(ctx evalctx.Context, staffID domain.StableId, pred Predicate) (count int, streakStart string) {
	date := dateutil.AddDays(ctx.Schedule.StartDate, -1)
	for i := 0; i < domain.TrailDays; i++ {
		s, ok := ctx.PreviousMap.ShiftAt(staffID, date)
		if !ok || !pred(s) {
			break
		}
		count++
		streakStart = date
		date = dateutil.AddDays(date, -1)
	}
	return count, streakStart
}

// WalkCurrentStreak runs the seeded-streak protocol across
// the 28 current-period days for one staff member, invoking onDay for
// every day whose running streak length (after extending) exceeds
// maxLength. onDay receives the current date and the date the streak
// (including any seed from the trail) started.
func WalkCurrentStreak(ctx evalctx.Context, staffID domain.StableId, pred Predicate, maxLength int, onDay func(date, streakStart string, length int)) {
	count, streakStart := SeedStreak(ctx, staffID, pred)

	for _, date := range dateutil.PeriodDates(ctx.Schedule.StartDate, domain.PeriodDays) {
		s, ok := ctx.CurrentMap.ShiftAt(staffID, date)
		if ok && pred(s) {
			if count == 0 {
				streakStart = date
			}
			count++
			if count > maxLength {
				onDay(date, streakStart, count)
			}
		} else {
			count = 0
			streakStart = ""
		}
	}
}

// IsNight, IsOff, IsWork are the common streak predicates.
func IsNight(s domain.ShiftType) bool { return s == domain.Night }
func IsOff(s domain.ShiftType) bool   { return s == domain.Off }
func IsWork(s domain.ShiftType) bool  { return s.IsWork() }

// SameShift returns a predicate matching exactly one shift type.
func SameShift(target domain.ShiftType) Predicate {
	return func(s domain.ShiftType) bool { return s == target }
}
