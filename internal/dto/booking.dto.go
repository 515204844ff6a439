package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type BookingDTO struct {
	ID            string    `json:"id"`
	SlotID        string    `json:"slot_id"`
	UserID        string    `json:"user_id"`
	SalonID       string    `json:"salon_id"`
	BarberID      *string   `json:"barber_id"`
	BarberName    string    `json:"barber_name"`
	SlotTime      string    `json:"slot_time"`
	Date          string    `json:"date"`
	Amount        float64   `json:"amount"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewBookingDTO(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:            b.ID,
		SlotID:        b.SlotID,
		UserID:        b.UserID,
		SalonID:       b.SalonID,
		BarberID:      b.BarberID,
		BarberName:    b.BarberName,
		SlotTime:      b.SlotTime,
		Date:          b.Date.Format(timezone.DateLayout),
		Amount:        b.Amount,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

func NewBookingDTOs(in []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(in))
	for i := range in {
		out = append(out, NewBookingDTO(&in[i]))
	}
	return out
}
