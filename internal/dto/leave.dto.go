package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type LeaveDTO struct {
	ID           string     `json:"id"`
	BarberID     string     `json:"barber_id"`
	SalonID      string     `json:"salon_id"`
	Type         string     `json:"type"`
	Date         string     `json:"date"`
	FromTime     string     `json:"from_time,omitempty"`
	ToTime       string     `json:"to_time,omitempty"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	RejectReason string     `json:"reject_reason,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewLeaveDTO(l *models.Leave) LeaveDTO {
	out := LeaveDTO{
		ID:           l.ID,
		BarberID:     l.BarberID,
		SalonID:      l.SalonID,
		Type:         l.Type,
		Date:         l.Date.Format(timezone.DateLayout),
		Reason:       l.Reason,
		Status:       l.Status,
		RejectReason: l.RejectReason,
		DecidedAt:    l.DecidedAt,
		CreatedAt:    l.CreatedAt,
	}
	if l.FromMinute != nil {
		out.FromTime = slot.FormatClock(*l.FromMinute)
	}
	if l.ToMinute != nil {
		out.ToTime = slot.FormatClock(*l.ToMinute)
	}
	return out
}

func NewLeaveDTOs(in []models.Leave) []LeaveDTO {
	out := make([]LeaveDTO, 0, len(in))
	for i := range in {
		out = append(out, NewLeaveDTO(&in[i]))
	}
	return out
}
