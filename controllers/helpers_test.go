package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowslot/salon-booking/models"
)

func day(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func TestSlotsForDay(t *testing.T) {
	open := &models.BusinessHours{
		DayOfWeek: models.Monday,
		OpenTime:  "09:00",
		CloseTime: "18:00",
		IsOpen:    true,
	}

	t.Run("closed day yields no slots", func(t *testing.T) {
		closed := &models.BusinessHours{DayOfWeek: models.Sunday, IsOpen: false}
		assert.Empty(t, slotsForDay(closed, day(0, 0), 30*time.Minute, 15*time.Minute))
	})

	t.Run("missing schedule row yields no slots", func(t *testing.T) {
		assert.Empty(t, slotsForDay(nil, day(0, 0), 30*time.Minute, 15*time.Minute))
	})

	t.Run("open day produces the full grid", func(t *testing.T) {
		slots := slotsForDay(open, day(0, 0), 30*time.Minute, 15*time.Minute)
		require.Len(t, slots, 35)
		assert.Equal(t, day(9, 0), slots[0].Start)
		assert.Equal(t, day(9, 30), slots[0].End)
		assert.Equal(t, day(17, 30), slots[len(slots)-1].Start)
		assert.Equal(t, day(18, 0), slots[len(slots)-1].End)
	})

	t.Run("break window is excluded", func(t *testing.T) {
		bs, be := "12:00", "13:00"
		withBreak := &models.BusinessHours{
			DayOfWeek:  models.Monday,
			OpenTime:   "09:00",
			CloseTime:  "18:00",
			IsOpen:     true,
			BreakStart: &bs,
			BreakEnd:   &be,
		}
		slots := slotsForDay(withBreak, day(0, 0), 30*time.Minute, 30*time.Minute)
		for _, s := range slots {
			assert.False(t, s.Start.Before(day(13, 0)) && day(12, 0).Before(s.End),
				"slot %s overlaps the break", s.Start.Format("15:04"))
		}
	})

	t.Run("unparseable hours yield no slots", func(t *testing.T) {
		broken := &models.BusinessHours{OpenTime: "nine", CloseTime: "18:00", IsOpen: true}
		assert.Empty(t, slotsForDay(broken, day(0, 0), 30*time.Minute, 15*time.Minute))
	})
}

func TestAdvanceWindowError(t *testing.T) {
	now := day(10, 0)

	t.Run("inside the window", func(t *testing.T) {
		date := day(0, 0).AddDate(0, 0, 3)
		start := date.Add(10 * time.Hour)
		assert.Empty(t, advanceWindowError(now, date, start, 30, 0))
	})

	t.Run("beyond max advance days", func(t *testing.T) {
		date := day(0, 0).AddDate(0, 0, 31)
		start := date.Add(10 * time.Hour)
		msg := advanceWindowError(now, date, start, 30, 0)
		assert.Contains(t, msg, "30 days in advance")
	})

	t.Run("exactly at max advance days is allowed", func(t *testing.T) {
		date := day(0, 0).AddDate(0, 0, 30)
		start := date.Add(10 * time.Hour)
		assert.Empty(t, advanceWindowError(now, date, start, 30, 0))
	})

	t.Run("under min advance hours", func(t *testing.T) {
		start := now.Add(1 * time.Hour)
		msg := advanceWindowError(now, day(0, 0), start, 30, 2)
		assert.Contains(t, msg, "2 hours notice")
	})

	t.Run("start in the past", func(t *testing.T) {
		start := now.Add(-1 * time.Hour)
		assert.NotEmpty(t, advanceWindowError(now, day(0, 0), start, 30, 0))
	})
}
