// Package scheduling holds the shared slot generation and conflict
// logic used by the availability endpoint, customer booking and staff
// manual booking. All intervals are half-open: [start, end).
package scheduling

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// ScopedInterval is a busy interval together with the employee it
// belongs to. A nil EmployeeID means the interval applies salon-wide.
type ScopedInterval struct {
	Interval
	EmployeeID *uint
}

// Scope selects which busy intervals count as conflicts.
// A nil EmployeeID means single-resource mode: everything conflicts.
type Scope struct {
	EmployeeID *uint
}

// ScopeGlobal considers every booking and block a potential conflict.
func ScopeGlobal() Scope {
	return Scope{}
}

// ScopeEmployee considers only that employee's rows plus salon-wide
// rows (nil employee).
func ScopeEmployee(id uint) Scope {
	return Scope{EmployeeID: &id}
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Touching endpoints do not overlap: a slot ending 10:00 does not
// conflict with a booking starting 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// InScope reports whether a busy interval owned by rowEmployee is
// visible to the given scope.
func InScope(rowEmployee *uint, scope Scope) bool {
	if scope.EmployeeID == nil {
		return true
	}
	if rowEmployee == nil {
		return true
	}
	return *rowEmployee == *scope.EmployeeID
}

// FilterConflicts keeps only the intervals visible to scope.
func FilterConflicts(rows []ScopedInterval, scope Scope) []Interval {
	busy := make([]Interval, 0, len(rows))
	for _, row := range rows {
		if InScope(row.EmployeeID, scope) {
			busy = append(busy, row.Interval)
		}
	}
	return busy
}

// IsSlotFree reports whether [start, end) overlaps none of the busy
// intervals. Unavailability is a plain false, never an error.
func IsSlotFree(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return false
		}
	}
	return true
}
