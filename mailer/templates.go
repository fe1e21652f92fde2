package mailer

import (
	"fmt"

	"github.com/glowslot/salon-booking/models"
)

const timeFormat = "2006-01-02 15:04"

// ConfirmationEmail builds the subject and HTML body sent right after
// a booking is created.
func ConfirmationEmail(booking *models.Booking, baseURL string) (string, string) {
	subject := fmt.Sprintf("Booking Confirmation - %s", booking.TargetName())
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been received.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>You can confirm your booking here: <a href="%s/bookings/confirm/%s">Confirm booking</a></p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, booking.Customer.Name, booking.TargetName(),
		booking.BookingDate.Format("2006-01-02"),
		booking.StartTime.Format(timeFormat), booking.EndTime.Format(timeFormat),
		booking.Status, baseURL, booking.ConfirmationToken)
	return subject, body
}

// ReminderEmail builds the reminder sent the day before a visit.
func ReminderEmail(booking *models.Booking) (string, string) {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", booking.TargetName())
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, booking.Customer.Name, booking.TargetName(),
		booking.StartTime.Format(timeFormat), booking.EndTime.Format(timeFormat))
	return subject, body
}

// FollowUpEmail builds the thank-you note sent the day after a
// completed visit.
func FollowUpEmail(booking *models.Booking) (string, string) {
	subject := "Thank you for your visit!"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for visiting us. We hope you enjoyed your %s.</p>
		<p>We would love to see you again soon.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, booking.Customer.Name, booking.TargetName())
	return subject, body
}

// CancellationEmail builds the notice sent when a booking is cancelled.
func CancellationEmail(booking *models.Booking) (string, string) {
	subject := fmt.Sprintf("Booking Cancelled - %s", booking.TargetName())
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking for %s on %s at %s has been cancelled.</p>
		<p>We hope to see you another time.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, booking.Customer.Name, booking.TargetName(),
		booking.BookingDate.Format("2006-01-02"),
		booking.StartTime.Format("15:04"))
	return subject, body
}

// NewsletterEmail wraps campaign content with an unsubscribe footer.
func NewsletterEmail(subject, content, baseURL, token string) (string, string) {
	body := fmt.Sprintf(`
		%s
		<p><a href="%s/newsletter/unsubscribe/%s">Unsubscribe</a></p>
	`, content, baseURL, token)
	return subject, body
}
