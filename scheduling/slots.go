package scheduling

import "time"

// Slot is a bookable candidate produced by GenerateSlots.
type Slot struct {
	Start     time.Time `json:"-"`
	End       time.Time `json:"-"`
	Available bool      `json:"available"`
}

// SlotInfo is the JSON shape returned by the availability endpoint.
type SlotInfo struct {
	Start     string `json:"start"` // "09:00"
	End       string `json:"end"`   // "09:30"
	Available bool   `json:"available"`
}

// GenerateSlots walks from open to close in interval steps and emits a
// candidate (start, start+duration) whenever the candidate still fits
// before close. Candidates overlapping the break window are dropped,
// not emitted. Output is ordered by start time ascending.
func GenerateSlots(open, close time.Time, duration, interval time.Duration, breakStart, breakEnd *time.Time) []Slot {
	if interval <= 0 || duration <= 0 {
		return nil
	}

	hasBreak := breakStart != nil && breakEnd != nil

	var slots []Slot
	for cur := open; !cur.Add(duration).After(close); cur = cur.Add(interval) {
		slotStart := cur
		slotEnd := cur.Add(duration)

		if hasBreak && Overlaps(slotStart, slotEnd, *breakStart, *breakEnd) {
			continue
		}

		slots = append(slots, Slot{Start: slotStart, End: slotEnd, Available: true})
	}

	return slots
}

// MarkAvailability flags each slot against the busy intervals in a
// single in-memory pass; no per-slot queries.
func MarkAvailability(slots []Slot, busy []Interval) []Slot {
	for i := range slots {
		slots[i].Available = IsSlotFree(slots[i].Start, slots[i].End, busy)
	}
	return slots
}

// ToSlotInfo converts slots to their wire representation.
func ToSlotInfo(slots []Slot) []SlotInfo {
	result := make([]SlotInfo, len(slots))
	for i, s := range slots {
		result[i] = SlotInfo{
			Start:     s.Start.Format("15:04"),
			End:       s.End.Format("15:04"),
			Available: s.Available,
		}
	}
	return result
}
