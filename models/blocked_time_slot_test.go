package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockedTimeSlotBeforeCreate(t *testing.T) {
	valid := BlockedTimeSlot{StartTime: "12:00", EndTime: "13:00"}
	assert.NoError(t, valid.BeforeCreate(nil))

	inverted := BlockedTimeSlot{StartTime: "13:00", EndTime: "12:00"}
	assert.Error(t, inverted.BeforeCreate(nil))

	empty := BlockedTimeSlot{StartTime: "12:00", EndTime: "12:00"}
	assert.Error(t, empty.BeforeCreate(nil))
}
