package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// BusinessHours holds the salon's opening schedule, one row per weekday.
type BusinessHours struct {
	gorm.Model
	DayOfWeek  DayOfWeek `json:"day_of_week" gorm:"uniqueIndex"`
	OpenTime   string    `json:"open_time"`  // Format "HH:MM" in 24h
	CloseTime  string    `json:"close_time"` // Format "HH:MM" in 24h
	IsOpen     bool      `json:"is_open" gorm:"default:true"`
	BreakStart *string   `json:"break_start"` // Optional break start time
	BreakEnd   *string   `json:"break_end"`   // Optional break end time
}
