package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	UserID  string `gorm:"size:36;not null;index" json:"user_id"`
	SalonID string `gorm:"size:36;not null;index" json:"salon_id"`
	SlotID  string `gorm:"size:36;not null;uniqueIndex" json:"slot_id"`

	BarberID   *string   `gorm:"size:36" json:"barber_id"`
	BarberName string    `gorm:"size:100" json:"barber_name"`
	SlotTime   string    `gorm:"size:40" json:"slot_time"`
	Date       time.Time `gorm:"type:date;not null" json:"date"`

	Amount        float64 `json:"amount"`
	PaymentStatus string  `gorm:"size:20" json:"payment_status"`
	Status        string  `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = newID()
	}
	return nil
}
