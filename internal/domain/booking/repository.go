package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Booking) error

	// GetBySlot returns nil, nil when the slot has no booking.
	GetBySlot(ctx context.Context, slotID string) (*models.Booking, error)

	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListBySalon(ctx context.Context, salonID string) ([]models.Booking, error)
}
