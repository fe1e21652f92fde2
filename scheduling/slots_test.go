package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func TestGenerateSlots(t *testing.T) {
	t.Run("full day every slot fits", func(t *testing.T) {
		// 09:00-18:00, 30 min service, 15 min grid
		slots := GenerateSlots(at(9, 0), at(18, 0), 30*time.Minute, 15*time.Minute, nil, nil)
		require.Len(t, slots, 35)

		assert.Equal(t, at(9, 0), slots[0].Start)
		assert.Equal(t, at(9, 30), slots[0].End)

		last := slots[len(slots)-1]
		assert.Equal(t, at(17, 30), last.Start)
		assert.Equal(t, at(18, 0), last.End)
	})

	t.Run("slot must end by close", func(t *testing.T) {
		// 60 min service in a 09:00-10:30 window: only 09:00 and 09:15
		// and 09:30 fit
		slots := GenerateSlots(at(9, 0), at(10, 30), 60*time.Minute, 15*time.Minute, nil, nil)
		require.Len(t, slots, 3)
		assert.Equal(t, at(9, 30), slots[2].Start)
		assert.Equal(t, at(10, 30), slots[2].End)
	})

	t.Run("break window drops overlapping candidates", func(t *testing.T) {
		breakStart := at(12, 0)
		breakEnd := at(13, 0)
		slots := GenerateSlots(at(9, 0), at(18, 0), 30*time.Minute, 30*time.Minute, &breakStart, &breakEnd)

		for _, s := range slots {
			assert.False(t, Overlaps(s.Start, s.End, breakStart, breakEnd),
				"slot %s-%s overlaps the break", s.Start.Format("15:04"), s.End.Format("15:04"))
		}
		// 11:30-12:00 survives (touching is not overlapping), 13:00
		// resumes
		starts := make(map[string]bool)
		for _, s := range slots {
			starts[s.Start.Format("15:04")] = true
		}
		assert.True(t, starts["11:30"])
		assert.False(t, starts["12:00"])
		assert.False(t, starts["12:30"])
		assert.True(t, starts["13:00"])
	})

	t.Run("zero interval yields nothing", func(t *testing.T) {
		assert.Nil(t, GenerateSlots(at(9, 0), at(18, 0), 30*time.Minute, 0, nil, nil))
	})

	t.Run("window shorter than duration yields nothing", func(t *testing.T) {
		assert.Empty(t, GenerateSlots(at(9, 0), at(9, 20), 30*time.Minute, 15*time.Minute, nil, nil))
	})
}

func TestMarkAvailability(t *testing.T) {
	slots := GenerateSlots(at(9, 0), at(11, 0), 30*time.Minute, 15*time.Minute, nil, nil)
	busy := []Interval{{Start: at(10, 0), End: at(10, 30)}}

	slots = MarkAvailability(slots, busy)

	expectUnavailable := map[string]bool{
		"09:45": true, // ends 10:15, overlaps
		"10:00": true,
		"10:15": true, // starts inside the booking
	}
	for _, s := range slots {
		key := s.Start.Format("15:04")
		if expectUnavailable[key] {
			assert.False(t, s.Available, "slot %s should be blocked", key)
		} else {
			assert.True(t, s.Available, "slot %s should be free", key)
		}
	}
}

func TestToSlotInfo(t *testing.T) {
	slots := []Slot{{Start: at(9, 0), End: at(9, 30), Available: true}}
	info := ToSlotInfo(slots)
	require.Len(t, info, 1)
	assert.Equal(t, "09:00", info[0].Start)
	assert.Equal(t, "09:30", info[0].End)
	assert.True(t, info[0].Available)
}
