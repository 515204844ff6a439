package slot

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ToggleAvailability flips a slot between available and unavailable.
// Only the status changes.
type ToggleAvailability struct {
	slots     domain.Repository
	tx        TransactionManager
	audit     Auditor
	publisher Publisher
	log       Logger
}

func NewToggleAvailability(
	slots domain.Repository,
	tx TransactionManager,
	audit Auditor,
	publisher Publisher,
	log Logger,
) *ToggleAvailability {
	return &ToggleAvailability{
		slots:     slots,
		tx:        tx,
		audit:     audit,
		publisher: publisher,
		log:       log,
	}
}

type ToggleAvailabilityInput struct {
	SalonID   string
	ActorID   string
	ActorRole string
	SlotID    string
}

// Execute flips the slot. Barbers may only toggle their own slots.
func (uc *ToggleAvailability) Execute(
	ctx context.Context,
	in ToggleAvailabilityInput,
) (*models.Slot, error) {

	var s *models.Slot

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := uc.slots.GetForUpdate(ctx, in.SlotID)
		if err != nil {
			return err
		}
		if current.SalonID != in.SalonID {
			return httperr.ErrBusiness(httperr.CodeSlotNotFound)
		}
		if in.ActorRole == models.RoleBarber &&
			(current.BarberID == nil || *current.BarberID != in.ActorID) {
			return httperr.ErrBusinessMsg(httperr.CodeForbidden, "slot belongs to another schedule")
		}

		next, err := domain.Toggle(domain.Status(current.Status))
		if err != nil {
			return err
		}
		if err := uc.slots.UpdateStatus(ctx, current.ID, next); err != nil {
			return err
		}

		current.Status = string(next)
		s = current
		return nil
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeForbidden) {
			uc.log.Warn("ToggleAvailability: barber=%s denied slot=%s", in.ActorID, in.SlotID)
		}
		return nil, err
	}

	uc.log.Info("ToggleAvailability: %s now %s", s.ID, s.Status)

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.SalonID,
		UserID:   &in.ActorID,
		Action:   "slot_toggled",
		Entity:   "slot",
		EntityID: &s.ID,
		Metadata: map[string]string{"status": s.Status},
	})

	publish(ctx, uc.publisher, uc.log, "toggled", s)

	return s, nil
}
