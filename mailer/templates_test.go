package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/glowslot/salon-booking/models"
)

func testBooking() *models.Booking {
	serviceID := uint(1)
	return &models.Booking{
		CustomerID:        1,
		Customer:          models.Customer{Name: "Alice", Email: "alice@example.com"},
		ServiceID:         &serviceID,
		Service:           &models.Service{Name: "Haircut"},
		BookingDate:       time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:         time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		EndTime:           time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC),
		Status:            models.StatusPending,
		ConfirmationToken: "tok-123",
	}
}

func TestConfirmationEmail(t *testing.T) {
	subject, body := ConfirmationEmail(testBooking(), "https://salon.example")
	assert.Contains(t, subject, "Haircut")
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "2026-09-14")
	assert.Contains(t, body, "https://salon.example/bookings/confirm/tok-123")
}

func TestReminderEmail(t *testing.T) {
	subject, body := ReminderEmail(testBooking())
	assert.Contains(t, subject, "Reminder")
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "Haircut")
}

func TestFollowUpEmail(t *testing.T) {
	_, body := FollowUpEmail(testBooking())
	assert.Contains(t, body, "Thank you")
	assert.Contains(t, body, "Haircut")
}

func TestCancellationEmail(t *testing.T) {
	subject, body := CancellationEmail(testBooking())
	assert.Contains(t, subject, "Cancelled")
	assert.Contains(t, body, "10:00")
}

func TestNewsletterEmail(t *testing.T) {
	subject, body := NewsletterEmail("September Offers", "<p>20% off</p>", "https://salon.example", "unsub-1")
	assert.Equal(t, "September Offers", subject)
	assert.True(t, strings.Contains(body, "<p>20% off</p>"))
	assert.Contains(t, body, "https://salon.example/newsletter/unsubscribe/unsub-1")
}
