package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// BlockedTimeSlot removes a window from availability, either for one
// employee or for the whole salon when EmployeeID is nil.
type BlockedTimeSlot struct {
	gorm.Model
	BlockDate  time.Time `json:"block_date" gorm:"index"`
	StartTime  string    `json:"start_time"` // Format "HH:MM" in 24h
	EndTime    string    `json:"end_time"`   // Format "HH:MM" in 24h
	Reason     string    `json:"reason"`
	EmployeeID *uint     `json:"employee_id"`
	Employee   *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

func (b *BlockedTimeSlot) BeforeCreate(tx *gorm.DB) error {
	if b.StartTime >= b.EndTime {
		return fmt.Errorf("blocked slot start time must be before end time")
	}
	return nil
}
