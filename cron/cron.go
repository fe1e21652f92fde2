package cron

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/mailer"
	"github.com/glowslot/salon-booking/models"
)

// StartCronJobs initializes and starts the scheduler for the email
// pipeline: outbox dispatch every minute, reminder sweep hourly,
// follow-up sweep once a day.
func StartCronJobs() {
	c := cron.New()

	if _, err := c.AddFunc("* * * * *", func() {
		mailer.DispatchPending(db.DB)
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to add outbox dispatch job")
	}
	if _, err := c.AddFunc("0 * * * *", queueReminders); err != nil {
		log.Fatal().Err(err).Msg("Failed to add reminder job")
	}
	if _, err := c.AddFunc("0 10 * * *", queueFollowUps); err != nil {
		log.Fatal().Err(err).Msg("Failed to add follow-up job")
	}

	c.Start()
	log.Info().Msg("Cron scheduler started")
}

// queueReminders enqueues a reminder for every confirmed booking
// starting 24-25 hours from now that has not been reminded yet. The
// hourly window plus the reminder_sent_at flag keeps the sweep
// idempotent.
func queueReminders() {
	now := time.Now()
	windowStart := now.Add(24 * time.Hour)
	windowEnd := now.Add(25 * time.Hour)

	var bookings []models.Booking
	err := db.DB.Preload("Customer").Preload("Service").Preload("Bundle").
		Where("status = ? AND reminder_sent_at IS NULL AND start_time BETWEEN ? AND ?",
			models.StatusConfirmed, windowStart, windowEnd).
		Find(&bookings).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to load bookings for reminders")
		return
	}

	for i := range bookings {
		booking := &bookings[i]
		subject, body := mailer.ReminderEmail(booking)
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			if err := mailer.Enqueue(tx, models.EmailReminder, &booking.ID, booking.Customer.Email, subject, body); err != nil {
				return err
			}
			return tx.Model(booking).Update("reminder_sent_at", time.Now()).Error
		})
		if err != nil {
			log.Error().Err(err).Uint("booking_id", booking.ID).Msg("Failed to queue reminder")
			continue
		}
		log.Info().Uint("booking_id", booking.ID).Str("recipient", booking.Customer.Email).Msg("Reminder queued")
	}
}

// queueFollowUps enqueues a thank-you note for every booking completed
// the previous day.
func queueFollowUps() {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := db.DB.Preload("Customer").Preload("Service").Preload("Bundle").
		Where("status = ? AND follow_up_sent_at IS NULL AND completed_at >= ? AND completed_at < ?",
			models.StatusCompleted, dayStart, dayEnd).
		Find(&bookings).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to load bookings for follow-ups")
		return
	}

	for i := range bookings {
		booking := &bookings[i]
		subject, body := mailer.FollowUpEmail(booking)
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			if err := mailer.Enqueue(tx, models.EmailFollowUp, &booking.ID, booking.Customer.Email, subject, body); err != nil {
				return err
			}
			return tx.Model(booking).Update("follow_up_sent_at", time.Now()).Error
		})
		if err != nil {
			log.Error().Err(err).Uint("booking_id", booking.ID).Msg("Failed to queue follow-up")
			continue
		}
		log.Info().Uint("booking_id", booking.ID).Str("recipient", booking.Customer.Email).Msg("Follow-up queued")
	}
}
