package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name          string     `json:"name"`
	Email         string     `json:"email" gorm:"uniqueIndex"`
	Phone         string     `json:"phone" gorm:"index"`
	Notes         string     `json:"notes"`
	TotalBookings int        `json:"total_bookings"`
	LastVisit     *time.Time `json:"last_visit"`
	Bookings      []Booking  `json:"bookings,omitempty" gorm:"foreignKey:CustomerID"`
}
