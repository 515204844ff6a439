package slot

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Filter selects slots. Zero-valued fields are not applied.
type Filter struct {
	SalonID  string
	BarberID *string
	General  bool // only slots without a barber
	Date     *time.Time
	Status   *Status
}

type Repository interface {
	// -------- Create / conflict --------
	LockSchedule(
		ctx context.Context,
		key string,
	) error

	ListForSchedule(
		ctx context.Context,
		salonID string,
		barberID *string,
		date time.Time,
	) ([]models.Slot, error)

	Create(
		ctx context.Context,
		s *models.Slot,
	) error

	// -------- Read --------
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Slot, error)

	// GetForUpdate reads the slot and locks its row until the enclosing
	// transaction ends.
	GetForUpdate(
		ctx context.Context,
		id string,
	) (*models.Slot, error)

	List(
		ctx context.Context,
		f Filter,
	) ([]models.Slot, error)

	// -------- State change --------
	UpdateStatus(
		ctx context.Context,
		id string,
		status Status,
	) error

	// MarkBooked flips the slot from available to booked in one conditional
	// write. It returns false when the slot was not available.
	MarkBooked(
		ctx context.Context,
		id string,
	) (bool, error)

	Delete(
		ctx context.Context,
		id string,
	) error
}
