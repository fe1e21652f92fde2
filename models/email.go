package models

import (
	"time"

	"gorm.io/gorm"
)

type EmailType string

const (
	EmailConfirmation EmailType = "confirmation"
	EmailReminder     EmailType = "reminder"
	EmailFollowUp     EmailType = "follow_up"
	EmailCancellation EmailType = "cancellation"
	EmailNewsletter   EmailType = "newsletter"
)

type EmailStatus string

const (
	EmailPending EmailStatus = "pending"
	EmailSent    EmailStatus = "sent"
	EmailFailed  EmailStatus = "failed"
	EmailSkipped EmailStatus = "skipped"
)

// EmailLog is the audit trail of every send attempt.
type EmailLog struct {
	gorm.Model
	BookingID *uint       `json:"booking_id"`
	Recipient string      `json:"recipient"`
	EmailType EmailType   `json:"email_type"`
	Status    EmailStatus `json:"status"`
	Error     string      `json:"error,omitempty"`
	SentAt    *time.Time  `json:"sent_at"`
}

// EmailOutbox holds messages queued inside business transactions and
// dispatched later by the cron worker. A booking never waits on SMTP.
type EmailOutbox struct {
	gorm.Model
	Recipient   string      `json:"recipient"`
	Subject     string      `json:"subject"`
	Body        string      `json:"body"`
	EmailType   EmailType   `json:"email_type"`
	BookingID   *uint       `json:"booking_id"`
	Status      EmailStatus `json:"status" gorm:"default:pending;index"`
	Attempts    int         `json:"attempts"`
	ProcessedAt *time.Time  `json:"processed_at"`
}
