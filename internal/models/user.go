package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleOwner    = "owner"
	RoleBarber   = "barber"
	RoleCustomer = "customer"
)

// User covers shop owners, barbers and customers. Customers have no salon.
type User struct {
	ID      string  `gorm:"primaryKey;size:36" json:"id"`
	SalonID *string `gorm:"size:36;index" json:"salon_id"`
	Salon   *Salon  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon,omitempty"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'customer'" json:"role"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = newID()
	}
	return nil
}
