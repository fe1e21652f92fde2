package models

import (
	"gorm.io/gorm"

	"github.com/glowslot/salon-booking/utils"
)

// Subscriber is a newsletter recipient.
type Subscriber struct {
	gorm.Model
	Email            string `json:"email" gorm:"uniqueIndex"`
	UnsubscribeToken string `json:"-" gorm:"index"`
	IsActive         bool   `json:"is_active" gorm:"default:true"`
}

func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.UnsubscribeToken == "" {
		s.UnsubscribeToken = utils.GenerateToken()
	}
	return nil
}
