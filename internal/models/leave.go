package models

import (
	"time"

	"gorm.io/gorm"
)

// Leave is a barber's leave (whole day) or permission (optional window)
// request. FromMinute/ToMinute are nil when no window was given.
type Leave struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	BarberID string `gorm:"size:36;not null;index:idx_leave_barber_date,priority:1" json:"barber_id"`
	SalonID  string `gorm:"size:36;not null;index" json:"salon_id"`

	Type       string    `gorm:"size:20;not null" json:"type"`
	Date       time.Time `gorm:"type:date;not null;index:idx_leave_barber_date,priority:2" json:"date"`
	FromMinute *int      `json:"from_minute"`
	ToMinute   *int      `json:"to_minute"`
	Reason     string    `gorm:"size:255;not null" json:"reason"`

	Status       string     `gorm:"size:30;not null" json:"status"`
	RejectReason string     `gorm:"size:255" json:"reject_reason"`
	DecidedAt    *time.Time `json:"decided_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Leave) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = newID()
	}
	return nil
}
