package salon

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(ctx context.Context, id string) (*models.Salon, error)
	GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error)
	UpdateSalon(ctx context.Context, s *models.Salon) error

	// CreateSalonWithOwner stores the salon and its owner together.
	CreateSalonWithOwner(ctx context.Context, s *models.Salon, owner *models.User) error

	// -------- Users --------
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetBarber returns the active barber of the salon.
	GetBarber(ctx context.Context, salonID, barberID string) (*models.User, error)
	ListBarbers(ctx context.Context, salonID, query string) ([]models.User, error)
}
