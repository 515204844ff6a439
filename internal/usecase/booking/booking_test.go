package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	slotdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/realtime"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil/memstore"
)

type fixture struct {
	store  *memstore.Store
	rec    *memstore.Recorder
	salon  *models.Salon
	barber *models.User
	slot   *models.Slot
}

func newFixture() *fixture {
	store := memstore.New()
	salon := store.AddSalon("Fade Street", "fade-street", "Asia/Kolkata")
	barber := store.AddUser(&salon.ID, "Ravi", "ravi@example.com", models.RoleBarber)

	s := store.PutSlot(models.Slot{
		SalonID:    salon.ID,
		BarberID:   &barber.ID,
		BarberName: barber.Name,
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		FromMinute: 9 * 60,
		ToMinute:   9*60 + 30,
		Status:     string(slotdomain.StatusAvailable),
	})

	return &fixture{store: store, rec: memstore.NewRecorder(), salon: salon, barber: barber, slot: s}
}

func (f *fixture) confirm() *ConfirmBooking {
	uc := NewConfirmBooking(
		f.store.Slots(), f.store.Bookings(), f.store.Salons(), f.store,
		f.rec, f.rec, f.rec, logger.Nop(),
	)
	// the evening before the slot, Kolkata time
	uc.clock = memstore.Clock{T: time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)}
	return uc
}

func TestConfirmBookingFlipsSlotAndCreatesOneBooking(t *testing.T) {
	f := newFixture()

	b, err := f.confirm().Execute(context.Background(), ConfirmBookingInput{
		SlotID: f.slot.ID, UserID: "customer-1", Amount: 250,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPaid), b.Status)
	assert.Equal(t, string(domain.PaymentPaid), b.PaymentStatus)
	assert.Equal(t, "9:00 AM - 9:30 AM", b.SlotTime)
	assert.Equal(t, "Ravi", b.BarberName)
	assert.Equal(t, 250.0, b.Amount)

	assert.Equal(t, string(slotdomain.StatusBooked), f.store.Slot(f.slot.ID).Status)
	assert.Len(t, f.store.BookingsFor(f.slot.ID), 1)
	assert.Equal(t, 1, f.rec.Count("booking_confirmed"))

	var kinds []string
	for _, ev := range f.rec.Events() {
		kinds = append(kinds, ev.Kind+"."+ev.Action)
	}
	assert.Equal(t, []string{realtime.KindSlot + ".booked", realtime.KindBooking + ".created"}, kinds)
}

func TestConfirmBookingRetryBySameUserIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	in := ConfirmBookingInput{SlotID: f.slot.ID, UserID: "customer-1", Amount: 250}

	first, err := f.confirm().Execute(ctx, in)
	require.NoError(t, err)

	second, err := f.confirm().Execute(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.store.BookingsFor(f.slot.ID), 1)
	assert.Equal(t, 1, f.rec.Count("booking_confirmed"))
}

func TestConfirmBookingOtherUserGetsNotAvailable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.confirm().Execute(ctx, ConfirmBookingInput{SlotID: f.slot.ID, UserID: "customer-1"})
	require.NoError(t, err)

	_, err = f.confirm().Execute(ctx, ConfirmBookingInput{SlotID: f.slot.ID, UserID: "customer-2"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotNotAvailable))
	assert.Equal(t, 1, f.rec.Count("booking_rejected"))
}

func TestConfirmBookingConcurrentBuyers(t *testing.T) {
	f := newFixture()
	uc := f.confirm()

	const n = 10
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), ConfirmBookingInput{
				SlotID: f.slot.ID,
				UserID: "customer-" + string(rune('a'+i)),
			})
			if err == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, won)
	assert.Len(t, f.store.BookingsFor(f.slot.ID), 1)
}

func TestConfirmBookingRejectsUnavailableAndEndedSlots(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	off := f.store.PutSlot(models.Slot{
		SalonID: f.salon.ID, Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		FromMinute: 600, ToMinute: 630, Status: string(slotdomain.StatusUnavailable),
	})
	_, err := f.confirm().Execute(ctx, ConfirmBookingInput{SlotID: off.ID, UserID: "customer-1"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotNotAvailable))
	assert.Equal(t, string(slotdomain.StatusUnavailable), f.store.Slot(off.ID).Status)

	past := f.store.PutSlot(models.Slot{
		SalonID: f.salon.ID, Date: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC),
		FromMinute: 600, ToMinute: 630, Status: string(slotdomain.StatusAvailable),
	})
	_, err = f.confirm().Execute(ctx, ConfirmBookingInput{SlotID: past.ID, UserID: "customer-1"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotNotAvailable))
	assert.Equal(t, string(slotdomain.StatusAvailable), f.store.Slot(past.ID).Status)
}

func TestConfirmBookingValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.confirm().Execute(ctx, ConfirmBookingInput{UserID: "customer-1"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	_, err = f.confirm().Execute(ctx, ConfirmBookingInput{SlotID: f.slot.ID, UserID: "customer-1", Amount: -1})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	_, err = f.confirm().Execute(ctx, ConfirmBookingInput{SlotID: "missing", UserID: "customer-1"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotNotFound))
}

func TestListBookingsByRole(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	later := f.store.PutSlot(models.Slot{
		SalonID: f.salon.ID, Date: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		FromMinute: 600, ToMinute: 630, Status: string(slotdomain.StatusAvailable), BarberName: "General Slot",
	})

	_, err := f.confirm().Execute(ctx, ConfirmBookingInput{SlotID: f.slot.ID, UserID: "customer-1"})
	require.NoError(t, err)
	_, err = f.confirm().Execute(ctx, ConfirmBookingInput{SlotID: later.ID, UserID: "customer-1"})
	require.NoError(t, err)

	uc := NewListBookings(f.store.Bookings())

	mine, err := uc.Execute(ctx, ListBookingsInput{Role: models.RoleCustomer, UserID: "customer-1"})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, later.ID, mine[0].SlotID)

	salon, err := uc.Execute(ctx, ListBookingsInput{Role: models.RoleOwner, SalonID: f.salon.ID})
	require.NoError(t, err)
	assert.Len(t, salon, 2)

	barber, err := uc.Execute(ctx, ListBookingsInput{Role: models.RoleBarber, SalonID: f.salon.ID, UserID: f.barber.ID})
	require.NoError(t, err)
	require.Len(t, barber, 1)
	assert.Equal(t, f.slot.ID, barber[0].SlotID)
}
