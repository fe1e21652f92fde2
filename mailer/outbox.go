package mailer

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/glowslot/salon-booking/models"
)

// Enqueue stores an email in the outbox inside the caller's
// transaction. Dispatch happens later in the cron worker, so the
// business operation commits regardless of SMTP health.
func Enqueue(tx *gorm.DB, emailType models.EmailType, bookingID *uint, recipient, subject, body string) error {
	row := models.EmailOutbox{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		EmailType: emailType,
		BookingID: bookingID,
		Status:    models.EmailPending,
	}
	return tx.Create(&row).Error
}

// DispatchPending sends queued outbox rows and writes one EmailLog
// audit row per attempt. Each row gets a single attempt; there is no
// retry policy.
func DispatchPending(db *gorm.DB) {
	var pending []models.EmailOutbox
	if err := db.Where("status = ?", models.EmailPending).
		Order("created_at asc").
		Limit(50).
		Find(&pending).Error; err != nil {
		log.Error().Err(err).Msg("Failed to load pending outbox rows")
		return
	}

	for _, row := range pending {
		now := time.Now()
		row.Attempts++
		row.ProcessedAt = &now

		logRow := models.EmailLog{
			BookingID: row.BookingID,
			Recipient: row.Recipient,
			EmailType: row.EmailType,
		}

		if err := Send(row.Recipient, row.Subject, row.Body); err != nil {
			log.Warn().Err(err).Str("recipient", row.Recipient).Msg("Email send failed")
			row.Status = models.EmailFailed
			logRow.Status = models.EmailFailed
			logRow.Error = err.Error()
		} else {
			row.Status = models.EmailSent
			logRow.Status = models.EmailSent
			logRow.SentAt = &now
		}

		if err := db.Save(&row).Error; err != nil {
			log.Error().Err(err).Uint("outbox_id", row.ID).Msg("Failed to update outbox row")
		}
		if err := db.Create(&logRow).Error; err != nil {
			log.Error().Err(err).Msg("Failed to write email log")
		}
	}
}
