package models

import (
	"gorm.io/gorm"
)

// TrackingEvent is a lightweight analytics row written by the public
// tracking endpoint.
type TrackingEvent struct {
	gorm.Model
	EventType string `json:"event_type"`
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
	VisitorID string `json:"visitor_id" gorm:"index"`
}
