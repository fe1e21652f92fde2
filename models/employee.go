package models

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type Employee struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role" gorm:"default:staff"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
