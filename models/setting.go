package models

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Setting is a key/value row for tunable business configuration.
type Setting struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex"`
	Value string `json:"value"`
}

// Known setting keys and their defaults.
const (
	SettingBookingIntervalMinutes  = "BOOKING_INTERVAL_MINUTES"
	SettingMaxAdvanceBookingDays   = "MAX_ADVANCE_BOOKING_DAYS"
	SettingMinAdvanceBookingHours  = "MIN_ADVANCE_BOOKING_HOURS"
	SettingRequireConfirmation     = "REQUIRE_EXPLICIT_CONFIRMATION"
	SettingConfirmationExpiryHours = "CONFIRMATION_LINK_EXPIRY_HOURS"
)

const (
	DefaultBookingIntervalMinutes  = 15
	DefaultMaxAdvanceBookingDays   = 30
	DefaultMinAdvanceBookingHours  = 0
	DefaultConfirmationExpiryHours = 24
)

// GetSettingInt reads an integer setting, falling back to def when the
// row is missing or the value does not parse.
func GetSettingInt(tx *gorm.DB, key string, def int) int {
	var setting Setting
	if err := tx.Where("key = ?", key).First(&setting).Error; err != nil {
		return def
	}
	return ParseIntSetting(setting.Value, def)
}

// GetSettingBool reads a boolean setting with a default.
func GetSettingBool(tx *gorm.DB, key string, def bool) bool {
	var setting Setting
	if err := tx.Where("key = ?", key).First(&setting).Error; err != nil {
		return def
	}
	return ParseBoolSetting(setting.Value, def)
}

// ParseIntSetting parses a setting value, returning def on garbage.
func ParseIntSetting(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return def
	}
	return n
}

// ParseBoolSetting parses a boolean setting value, returning def on garbage.
func ParseBoolSetting(value string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return b
}
