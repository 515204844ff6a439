package models

import (
	"time"

	"gorm.io/gorm"
)

// Slot times are minutes since midnight on Date, in the salon's zone.
// A nil BarberID marks a general slot.
type Slot struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`
	SalonID  string  `gorm:"size:36;not null;index:idx_slot_key,priority:1" json:"salon_id"`
	BarberID *string `gorm:"size:36;index:idx_slot_key,priority:2" json:"barber_id"`

	Date       time.Time `gorm:"type:date;not null;index:idx_slot_key,priority:3" json:"date"`
	FromMinute int       `gorm:"not null" json:"from_minute"`
	ToMinute   int       `gorm:"not null" json:"to_minute"`

	Status     string `gorm:"size:20;not null;default:'available'" json:"status"`
	Note       string `gorm:"size:255" json:"note"`
	BarberName string `gorm:"size:100" json:"barber_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Slot) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = newID()
	}
	return nil
}
