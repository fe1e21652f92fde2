package models

import (
	"time"

	"gorm.io/gorm"
)

type ServiceCategory struct {
	gorm.Model
	Name        string    `json:"name" gorm:"unique"`
	Description string    `json:"description"`
	Services    []Service `json:"services,omitempty" gorm:"foreignKey:CategoryID"`
}

type Service struct {
	gorm.Model
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	DurationMinutes int              `json:"duration_minutes"`
	Price           float64          `json:"price"`
	IsActive        bool             `json:"is_active" gorm:"default:true"`
	CategoryID      *uint            `json:"category_id"`
	Category        *ServiceCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// Duration returns the service length as a time.Duration.
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
