package booking

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListBookingsInput struct {
	Role    string
	UserID  string
	SalonID string
}

// ListBookings returns the caller's view of bookings, most recent date
// first: a customer's own history, an owner's whole salon, or the
// bookings on a barber's slots.
type ListBookings struct {
	bookings domain.Repository
}

func NewListBookings(bookings domain.Repository) *ListBookings {
	return &ListBookings{bookings: bookings}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) ([]models.Booking, error) {

	switch in.Role {
	case models.RoleOwner:
		return uc.bookings.ListBySalon(ctx, in.SalonID)

	case models.RoleBarber:
		all, err := uc.bookings.ListBySalon(ctx, in.SalonID)
		if err != nil {
			return nil, err
		}
		out := make([]models.Booking, 0, len(all))
		for _, b := range all {
			if b.BarberID != nil && *b.BarberID == in.UserID {
				out = append(out, b)
			}
		}
		return out, nil

	default:
		return uc.bookings.ListByUser(ctx, in.UserID)
	}
}
