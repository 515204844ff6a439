package leave

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/leave"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListLeavesInput struct {
	SalonID string

	// BarberID limits the list to one barber's requests.
	BarberID string
	Status   string
}

type ListLeaves struct {
	leaves domain.Repository
}

func NewListLeaves(leaves domain.Repository) *ListLeaves {
	return &ListLeaves{leaves: leaves}
}

func (uc *ListLeaves) Execute(
	ctx context.Context,
	in ListLeavesInput,
) ([]models.Leave, error) {

	var status *domain.Status
	if in.Status != "" {
		s := domain.Status(in.Status)
		if !s.Valid() {
			return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "unknown status")
		}
		status = &s
	}

	if in.BarberID == "" {
		return uc.leaves.ListBySalon(ctx, in.SalonID, status)
	}

	all, err := uc.leaves.ListByBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Leave, 0, len(all))
	for _, l := range all {
		if l.SalonID != in.SalonID {
			continue
		}
		if status != nil && l.Status != string(*status) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
