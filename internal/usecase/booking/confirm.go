package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	slotdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/realtime"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ConfirmBookingInput struct {
	SlotID string
	UserID string
	Amount float64
}

// ======================================================
// USE CASE
// ======================================================

type ConfirmBooking struct {
	slots     slotdomain.Repository
	bookings  domain.Repository
	salons    SalonDirectory
	tx        TransactionManager
	audit     Auditor
	publisher Publisher
	metrics   Metrics
	clock     TimeProvider
	log       Logger
}

func NewConfirmBooking(
	slots slotdomain.Repository,
	bookings domain.Repository,
	salons SalonDirectory,
	tx TransactionManager,
	audit Auditor,
	publisher Publisher,
	metrics Metrics,
	log Logger,
) *ConfirmBooking {
	return &ConfirmBooking{
		slots:     slots,
		bookings:  bookings,
		salons:    salons,
		tx:        tx,
		audit:     audit,
		publisher: publisher,
		metrics:   metrics,
		clock:     RealTimeProvider{},
		log:       log,
	}
}

// Execute books the slot for the user once payment has succeeded.
//
// The slot flip and the booking insert share one transaction; the flip is a
// conditional write so only one of several concurrent buyers wins. A retry
// by the user who already holds the booking returns that booking.
func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	in ConfirmBookingInput,
) (*models.Booking, error) {

	slotID := strings.TrimSpace(in.SlotID)
	if slotID == "" {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "slot_id is required")
	}
	if in.UserID == "" {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "user is required")
	}
	if in.Amount < 0 {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "amount must not be negative")
	}

	s, err := uc.slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}

	var (
		b      *models.Booking
		replay bool
	)

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := uc.bookings.GetBySlot(ctx, s.ID)
		if err != nil {
			return fmt.Errorf("load booking: %w", err)
		}
		if existing != nil {
			if existing.UserID != in.UserID {
				return httperr.ErrBusiness(httperr.CodeSlotNotAvailable)
			}
			b, replay = existing, true
			return nil
		}

		if err := uc.checkNotOver(ctx, s); err != nil {
			return err
		}

		flipped, err := uc.slots.MarkBooked(ctx, s.ID)
		if err != nil {
			return fmt.Errorf("mark booked: %w", err)
		}
		if !flipped {
			return httperr.ErrBusiness(httperr.CodeSlotNotAvailable)
		}

		nb, err := domain.NewForSlot(s, in.UserID, in.Amount)
		if err != nil {
			return httperr.ErrBusinessMsg(httperr.CodeInvalidInput, err.Error())
		}
		if err := uc.bookings.Create(ctx, nb); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		s.Status = string(slotdomain.StatusBooked)
		b = nb
		return nil
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotNotAvailable) {
			uc.metrics.BookingRejected()
			uc.log.Warn("ConfirmBooking: slot=%s user=%s not available", s.ID, in.UserID)
			return nil, err
		}
		if _, ok := httperr.AsBusiness(err); !ok {
			uc.log.Error("ConfirmBooking: slot=%s user=%s: %v", s.ID, in.UserID, err)
		}
		return nil, err
	}

	if replay {
		uc.log.Info("ConfirmBooking: slot=%s already booked by user=%s, returning %s", s.ID, in.UserID, b.ID)
		return b, nil
	}

	uc.metrics.BookingConfirmed()
	uc.log.Info("ConfirmBooking: %s slot=%s user=%s", b.ID, s.ID, in.UserID)

	uc.audit.Dispatch(audit.Event{
		SalonID:  b.SalonID,
		UserID:   &b.UserID,
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"slot_id": s.ID, "slot_time": b.SlotTime, "amount": b.Amount},
	})

	uc.publish(ctx, realtime.Event{Kind: realtime.KindSlot, Action: "booked", SalonID: s.SalonID, ID: s.ID, Payload: s})
	uc.publish(ctx, realtime.Event{Kind: realtime.KindBooking, Action: "created", SalonID: b.SalonID, ID: b.ID, Payload: b})

	return b, nil
}

// checkNotOver refuses slots whose window has already passed.
func (uc *ConfirmBooking) checkNotOver(ctx context.Context, s *models.Slot) error {
	salon, err := uc.salons.GetSalonByID(ctx, s.SalonID)
	if err != nil {
		return err
	}
	if slotdomain.IsExpired(uc.clock.Now(), s, timezone.Location(salon.Timezone)) {
		return httperr.ErrBusinessMsg(httperr.CodeSlotNotAvailable, "slot has already ended")
	}
	return nil
}

func (uc *ConfirmBooking) publish(ctx context.Context, ev realtime.Event) {
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.log.Warn("ConfirmBooking: publish %s.%s: %v", ev.Kind, ev.Action, err)
	}
}
