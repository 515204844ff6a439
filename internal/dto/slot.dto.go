package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type SlotDTO struct {
	ID            string    `json:"id"`
	SalonID       string    `json:"salon_id"`
	BarberID      *string   `json:"barber_id"`
	BarberName    string    `json:"barber_name"`
	Date          string    `json:"date"`
	FromTime      string    `json:"from_time"`
	ToTime        string    `json:"to_time"`
	Status        string    `json:"status"`
	DisplayStatus string    `json:"display_status"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewSlotDTO renders s. displayStatus is computed by the caller since it
// depends on the salon clock.
func NewSlotDTO(s *models.Slot, displayStatus string) SlotDTO {
	if displayStatus == "" {
		displayStatus = s.Status
	}

	return SlotDTO{
		ID:            s.ID,
		SalonID:       s.SalonID,
		BarberID:      s.BarberID,
		BarberName:    s.BarberName,
		Date:          s.Date.Format(timezone.DateLayout),
		FromTime:      slot.FormatClock(s.FromMinute),
		ToTime:        slot.FormatClock(s.ToMinute),
		Status:        s.Status,
		DisplayStatus: displayStatus,
		Note:          s.Note,
		CreatedAt:     s.CreatedAt,
	}
}
