package slot

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type DeleteSlot struct {
	slots     domain.Repository
	tx        TransactionManager
	audit     Auditor
	publisher Publisher
	log       Logger
}

func NewDeleteSlot(
	slots domain.Repository,
	tx TransactionManager,
	audit Auditor,
	publisher Publisher,
	log Logger,
) *DeleteSlot {
	return &DeleteSlot{
		slots:     slots,
		tx:        tx,
		audit:     audit,
		publisher: publisher,
		log:       log,
	}
}

// Execute removes a slot of the salon. Booked slots keep their booking
// and cannot be deleted.
func (uc *DeleteSlot) Execute(
	ctx context.Context,
	salonID string,
	actorID string,
	slotID string,
) error {

	var s *models.Slot

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := uc.slots.GetForUpdate(ctx, slotID)
		if err != nil {
			return err
		}
		if current.SalonID != salonID {
			return httperr.ErrBusiness(httperr.CodeSlotNotFound)
		}
		if domain.Status(current.Status) == domain.StatusBooked {
			return httperr.ErrBusinessMsg(httperr.CodeInvalidState, "booked slots cannot be deleted")
		}

		s = current
		return uc.slots.Delete(ctx, current.ID)
	})
	if err != nil {
		return err
	}

	uc.log.Info("DeleteSlot: %s", s.ID)

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.SalonID,
		UserID:   &actorID,
		Action:   "slot_deleted",
		Entity:   "slot",
		EntityID: &s.ID,
		Metadata: map[string]string{
			"date":   s.Date.Format(timezone.DateLayout),
			"window": domain.WindowOf(s).String(),
		},
	})

	publish(ctx, uc.publisher, uc.log, "deleted", s)

	return nil
}
