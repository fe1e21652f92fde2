package db

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/glowslot/salon-booking/models"
)

// Seed inserts default settings and a Mon-Sat schedule when the tables
// are empty. Safe to call repeatedly.
func Seed() {
	defaults := map[string]string{
		models.SettingBookingIntervalMinutes:  strconv.Itoa(models.DefaultBookingIntervalMinutes),
		models.SettingMaxAdvanceBookingDays:   strconv.Itoa(models.DefaultMaxAdvanceBookingDays),
		models.SettingMinAdvanceBookingHours:  strconv.Itoa(models.DefaultMinAdvanceBookingHours),
		models.SettingRequireConfirmation:     "true",
		models.SettingConfirmationExpiryHours: strconv.Itoa(models.DefaultConfirmationExpiryHours),
	}

	for key, value := range defaults {
		var existing models.Setting
		if DB.Where("key = ?", key).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&models.Setting{Key: key, Value: value}).Error; err != nil {
				log.Error().Err(err).Str("key", key).Msg("Failed to seed setting")
			}
		}
	}

	var count int64
	DB.Model(&models.BusinessHours{}).Count(&count)
	if count == 0 {
		for day := models.Monday; day <= models.Saturday; day++ {
			hours := models.BusinessHours{
				DayOfWeek: day,
				OpenTime:  "09:00",
				CloseTime: "18:00",
				IsOpen:    true,
			}
			if err := DB.Create(&hours).Error; err != nil {
				log.Error().Err(err).Msg(fmt.Sprintf("Failed to seed business hours for day %d", day))
			}
		}
		DB.Create(&models.BusinessHours{DayOfWeek: models.Sunday, OpenTime: "00:00", CloseTime: "00:00", IsOpen: false})
	}

	log.Info().Msg("Seed data ensured")
}
