package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusNoShow, false},

		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},

		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusNoShow, StatusConfirmed, false},
		{StatusNoShow, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			b := Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransition(tt.to))
		})
	}
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	// Illegal transitions fail before any DB work, so no tx is needed.
	tests := []struct {
		from BookingStatus
		to   BookingStatus
	}{
		{StatusCancelled, StatusCancelled},
		{StatusCancelled, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusNoShow, StatusConfirmed},
		{StatusPending, StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			b := Booking{Status: tt.from}
			err := b.UpdateStatus(nil, tt.to)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.from, b.Status, "status must not change on a rejected transition")
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestTargetName(t *testing.T) {
	serviceID := uint(1)
	bundleID := uint(2)

	withService := Booking{ServiceID: &serviceID, Service: &Service{Name: "Haircut"}}
	assert.Equal(t, "Haircut", withService.TargetName())

	withBundle := Booking{BundleID: &bundleID, Bundle: &Bundle{Name: "Spa Day"}}
	assert.Equal(t, "Spa Day", withBundle.TargetName())

	assert.Equal(t, "", (&Booking{}).TargetName())
}
