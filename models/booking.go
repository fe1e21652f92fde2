package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/glowslot/salon-booking/utils"
)

// ErrInvalidTransition reports a status change the booking lifecycle
// does not allow. Handlers map it to 409; anything else is a 500.
var ErrInvalidTransition = errors.New("invalid status transition")

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

type Booking struct {
	gorm.Model
	CustomerID uint      `json:"customer_id"`
	Customer   Customer  `json:"customer" gorm:"foreignKey:CustomerID"`
	ServiceID  *uint     `json:"service_id"`
	Service    *Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	BundleID   *uint     `json:"bundle_id"`
	Bundle     *Bundle   `json:"bundle,omitempty" gorm:"foreignKey:BundleID"`
	EmployeeID *uint     `json:"employee_id"`
	Employee   *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`

	BookingDate time.Time     `json:"booking_date" gorm:"index:idx_bookings_date_status"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Status      BookingStatus `json:"status" gorm:"index:idx_bookings_date_status"`
	Notes       string        `json:"notes"`

	ConfirmationToken string `json:"-" gorm:"index"`

	ReminderSentAt *time.Time `json:"reminder_sent_at"`
	FollowUpSentAt *time.Time `json:"follow_up_sent_at"`
	CancelledAt    *time.Time `json:"cancelled_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.ConfirmationToken == "" {
		b.ConfirmationToken = utils.GenerateToken()
	}
	// Exactly one of service or bundle must be set
	if (b.ServiceID == nil) == (b.BundleID == nil) {
		return fmt.Errorf("booking must reference exactly one of service or bundle")
	}
	return nil
}

// TargetName returns the name of whatever the booking is for.
func (b *Booking) TargetName() string {
	if b.ServiceID != nil && b.Service != nil {
		return b.Service.Name
	}
	if b.BundleID != nil && b.Bundle != nil {
		return b.Bundle.Name
	}
	return ""
}

// IsActive reports whether the booking still occupies its time slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// UpdateStatus validates and applies a status transition, persisting the
// booking inside the given transaction. Cancelled and completed are terminal.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if !b.CanTransition(newStatus) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, b.Status, newStatus)
	}

	now := time.Now()
	b.Status = newStatus
	switch newStatus {
	case StatusCancelled:
		b.CancelledAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	}

	if err := tx.Save(b).Error; err != nil {
		return err
	}

	// Completing a visit updates the customer's stats
	if newStatus == StatusCompleted {
		if err := tx.Model(&Customer{}).Where("id = ?", b.CustomerID).
			Updates(map[string]interface{}{
				"last_visit": now,
			}).Error; err != nil {
			return err
		}
	}

	return nil
}

// CanTransition reports whether a transition is legal without applying it.
func (b *Booking) CanTransition(newStatus BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return newStatus == StatusConfirmed || newStatus == StatusCancelled
	case StatusConfirmed:
		return newStatus == StatusCompleted || newStatus == StatusNoShow || newStatus == StatusCancelled
	default:
		return false
	}
}
