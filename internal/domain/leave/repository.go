package leave

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	Create(ctx context.Context, l *models.Leave) error
	GetByID(ctx context.Context, id string) (*models.Leave, error)
	Update(ctx context.Context, l *models.Leave) error

	// ListForBarberOnDate returns every request of the barber for the date,
	// regardless of status.
	ListForBarberOnDate(ctx context.Context, barberID string, date time.Time) ([]models.Leave, error)

	ListBySalon(ctx context.Context, salonID string, status *Status) ([]models.Leave, error)
	ListByBarber(ctx context.Context, barberID string) ([]models.Leave, error)
}
