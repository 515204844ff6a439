package slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/realtime"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucLeave "github.com/BruksfildServices01/salon-scheduler/internal/usecase/leave"
)

const GeneralSlotName = "General Slot"

// ======================================================
// INPUT
// ======================================================

type CreateSlotInput struct {
	SalonID string
	ActorID string

	// BarberID is empty for a general slot.
	BarberID string

	Date     string
	FromTime string
	ToTime   string
	Note     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSlot struct {
	slots        domain.Repository
	salons       SalonDirectory
	availability AvailabilityChecker
	tx           TransactionManager
	audit        Auditor
	publisher    Publisher
	metrics      Metrics
	log          Logger
}

func NewCreateSlot(
	slots domain.Repository,
	salons SalonDirectory,
	availability AvailabilityChecker,
	tx TransactionManager,
	audit Auditor,
	publisher Publisher,
	metrics Metrics,
	log Logger,
) *CreateSlot {
	return &CreateSlot{
		slots:        slots,
		salons:       salons,
		availability: availability,
		tx:           tx,
		audit:        audit,
		publisher:    publisher,
		metrics:      metrics,
		log:          log,
	}
}

func (uc *CreateSlot) Execute(
	ctx context.Context,
	in CreateSlotInput,
) (*models.Slot, error) {

	// --------------------------------------------------
	// Validation (no store access)
	// --------------------------------------------------

	window, err := domain.ParseWindow(in.FromTime, in.ToTime)
	if err != nil {
		return nil, err
	}

	if in.SalonID == "" {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "salon is required")
	}

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	s := &models.Slot{
		SalonID:    in.SalonID,
		Date:       date,
		FromMinute: window.From,
		ToMinute:   window.To,
		Status:     string(domain.InitialStatus()),
		Note:       strings.TrimSpace(in.Note),
		BarberName: GeneralSlotName,
	}

	// --------------------------------------------------
	// Barber
	// --------------------------------------------------

	if in.BarberID != "" {
		barber, err := uc.salons.GetBarber(ctx, in.SalonID, in.BarberID)
		if err != nil {
			return nil, err
		}
		s.BarberID = &barber.ID
		s.BarberName = barber.Name
	}

	// --------------------------------------------------
	// Availability, conflict check and insert, serialised per schedule
	// --------------------------------------------------

	var blockedReason string

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.slots.LockSchedule(ctx, domain.ScheduleKey(s.SalonID, s.BarberID, s.Date)); err != nil {
			return fmt.Errorf("lock schedule: %w", err)
		}

		// read under the lock so a leave approved before it is seen
		if s.BarberID != nil {
			avail, err := uc.availability.Check(ctx, *s.BarberID, date, &window)
			if err != nil {
				return err
			}
			if err := ucLeave.Blocked(avail); err != nil {
				blockedReason = avail.Reason
				return err
			}
		}

		existing, err := uc.slots.ListForSchedule(ctx, s.SalonID, s.BarberID, s.Date)
		if err != nil {
			return fmt.Errorf("list schedule: %w", err)
		}

		if c := domain.FindConflict(s.SalonID, s.BarberID, s.Date, window, existing); c != nil {
			return httperr.ErrBusinessMsg(
				httperr.CodeSlotConflict,
				fmt.Sprintf("overlaps existing slot %s", domain.WindowOf(c)),
			)
		}

		if err := uc.slots.Create(ctx, s); err != nil {
			return fmt.Errorf("create slot: %w", err)
		}
		return nil
	})
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			switch be.Code {
			case httperr.CodeSlotConflict:
				uc.metrics.SlotConflict()
			case httperr.CodeSchedulingBlocked:
				uc.metrics.SchedulingBlocked()
				uc.log.Warn("CreateSlot: barber=%s date=%s blocked: %s", *s.BarberID, in.Date, blockedReason)
				return nil, err
			}
			uc.log.Warn("CreateSlot: %s %s rejected: %v", in.Date, window, err)
			return nil, err
		}
		uc.log.Error("CreateSlot: %s %s: %v", in.Date, window, err)
		return nil, err
	}

	uc.metrics.SlotCreated()
	uc.log.Info("CreateSlot: %s %s %s for %s", s.ID, in.Date, window, s.BarberName)

	actor := in.ActorID
	uc.audit.Dispatch(audit.Event{
		SalonID:  s.SalonID,
		UserID:   &actor,
		Action:   "slot_created",
		Entity:   "slot",
		EntityID: &s.ID,
		Metadata: map[string]string{"date": in.Date, "window": window.String(), "barber": s.BarberName},
	})

	publish(ctx, uc.publisher, uc.log, "created", s)

	return s, nil
}

func publish(ctx context.Context, p Publisher, log Logger, action string, s *models.Slot) {
	err := p.Publish(ctx, realtime.Event{
		Kind:    realtime.KindSlot,
		Action:  action,
		SalonID: s.SalonID,
		ID:      s.ID,
		Payload: s,
	})
	if err != nil {
		log.Warn("slot %s: publish %s: %v", s.ID, action, err)
	}
}
