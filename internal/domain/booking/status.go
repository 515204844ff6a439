package booking

import (
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Status string

const (
	StatusPaid Status = "paid"
)

type PaymentStatus string

const (
	PaymentPaid PaymentStatus = "paid"
)

// SlotTime is the display label stored on the booking.
func SlotTime(s *models.Slot) string {
	return slot.WindowOf(s).String()
}

// NewForSlot builds the paid booking record for a confirmed slot.
func NewForSlot(s *models.Slot, userID string, amount float64) (*models.Booking, error) {
	if amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}

	return &models.Booking{
		UserID:        userID,
		SalonID:       s.SalonID,
		SlotID:        s.ID,
		BarberID:      s.BarberID,
		BarberName:    s.BarberName,
		SlotTime:      SlotTime(s),
		Date:          s.Date,
		Amount:        amount,
		PaymentStatus: string(PaymentPaid),
		Status:        string(StatusPaid),
	}, nil
}
