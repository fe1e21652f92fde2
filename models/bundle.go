package models

import (
	"time"

	"gorm.io/gorm"
)

// Bundle groups several services sold together at one price.
type Bundle struct {
	gorm.Model
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	Services        []Service `json:"services,omitempty" gorm:"many2many:bundle_services;"`
}

// Duration returns the bundle length as a time.Duration.
func (b *Bundle) Duration() time.Duration {
	return time.Duration(b.DurationMinutes) * time.Minute
}
