package db

import (
	"github.com/rs/zerolog/log"

	"github.com/glowslot/salon-booking/models"
)

// Migrate runs AutoMigrate plus the raw constraints gorm cannot
// express. Init must have been called first.
func Migrate() {
	err := DB.AutoMigrate(
		&models.Employee{},
		&models.Customer{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Bundle{},
		&models.BusinessHours{},
		&models.BlockedTimeSlot{},
		&models.Booking{},
		&models.Setting{},
		&models.EmailLog{},
		&models.EmailOutbox{},
		&models.Subscriber{},
		&models.TrackingEvent{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// A booking references exactly one of service or bundle.
	if err := DB.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS chk_booking_target`).Error; err != nil {
		log.Fatal().Err(err).Msg("Failed to drop booking target constraint")
	}
	if err := DB.Exec(`
		ALTER TABLE bookings
		ADD CONSTRAINT chk_booking_target
		CHECK ((service_id IS NULL) <> (bundle_id IS NULL))
	`).Error; err != nil {
		log.Fatal().Err(err).Msg("Failed to add booking target constraint")
	}

	// Backstop against two requests racing for the same slot: only one
	// non-cancelled booking may exist per (date, start, employee).
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot_guard
		ON bookings (booking_date, start_time, COALESCE(employee_id, 0))
		WHERE status <> 'cancelled' AND deleted_at IS NULL
	`).Error; err != nil {
		log.Fatal().Err(err).Msg("Failed to create booking slot guard index")
	}

	log.Info().Msg("Migrations applied")
}
