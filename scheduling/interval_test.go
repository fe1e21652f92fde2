package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", at(10, 0), at(10, 30), at(10, 0), at(10, 30), true},
		{"partial overlap", at(10, 0), at(10, 30), at(10, 15), at(10, 45), true},
		{"contained", at(10, 0), at(11, 0), at(10, 15), at(10, 30), true},
		{"touching end to start", at(9, 30), at(10, 0), at(10, 0), at(10, 30), false},
		{"touching start to end", at(10, 30), at(11, 0), at(10, 0), at(10, 30), false},
		{"disjoint", at(9, 0), at(9, 30), at(11, 0), at(11, 30), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestFilterConflicts(t *testing.T) {
	empA := uint(1)
	empB := uint(2)
	rows := []ScopedInterval{
		{Interval: Interval{Start: at(9, 0), End: at(9, 30)}, EmployeeID: &empA},
		{Interval: Interval{Start: at(10, 0), End: at(10, 30)}, EmployeeID: &empB},
		{Interval: Interval{Start: at(11, 0), End: at(11, 30)}, EmployeeID: nil}, // salon-wide
	}

	t.Run("global scope sees everything", func(t *testing.T) {
		busy := FilterConflicts(rows, ScopeGlobal())
		assert.Len(t, busy, 3)
	})

	t.Run("employee scope sees own rows plus salon-wide rows", func(t *testing.T) {
		busy := FilterConflicts(rows, ScopeEmployee(empA))
		assert.Len(t, busy, 2)
		assert.Equal(t, at(9, 0), busy[0].Start)
		assert.Equal(t, at(11, 0), busy[1].Start)
	})

	t.Run("employee scope ignores other employees", func(t *testing.T) {
		busy := FilterConflicts(rows, ScopeEmployee(99))
		assert.Len(t, busy, 1)
		assert.Equal(t, at(11, 0), busy[0].Start)
	})
}

func TestIsSlotFree(t *testing.T) {
	busy := []Interval{
		{Start: at(10, 0), End: at(10, 30)},
		{Start: at(14, 0), End: at(15, 0)},
	}

	assert.True(t, IsSlotFree(at(9, 0), at(9, 30), busy))
	assert.True(t, IsSlotFree(at(9, 30), at(10, 0), busy), "touching slot is free")
	assert.False(t, IsSlotFree(at(9, 45), at(10, 15), busy))
	assert.False(t, IsSlotFree(at(14, 30), at(15, 30), busy))
	assert.True(t, IsSlotFree(at(15, 0), at(15, 30), busy))
	assert.True(t, IsSlotFree(at(10, 0), at(10, 30), nil), "no busy intervals")
}
