package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/leave"
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
	owner  *models.User
}

func newFixture() *fixture {
	store := memstore.New()
	salon := store.AddSalon("Fade Street", "fade-street", "Asia/Kolkata")
	return &fixture{
		store:  store,
		rec:    memstore.NewRecorder(),
		salon:  salon,
		barber: store.AddUser(&salon.ID, "Ravi", "ravi@example.com", models.RoleBarber),
		owner:  store.AddUser(&salon.ID, "Asha", "asha@example.com", models.RoleOwner),
	}
}

func (f *fixture) request() *RequestLeave {
	return NewRequestLeave(f.store.Leaves(), f.store.Salons(), f.rec, f.rec, logger.Nop())
}

func (f *fixture) decide() *DecideLeave {
	uc := NewDecideLeave(f.store.Leaves(), f.rec, f.rec, f.rec, logger.Nop())
	uc.clock = memstore.Clock{T: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func (f *fixture) availability() *CheckAvailability {
	return NewCheckAvailability(f.store.Leaves(), f.store.Salons())
}

// --------------------------------------------------
// Request
// --------------------------------------------------

func TestRequestLeaveCreatesWaitingRequest(t *testing.T) {
	f := newFixture()

	l, err := f.request().Execute(context.Background(), RequestLeaveInput{
		SalonID:  f.salon.ID,
		BarberID: f.barber.ID,
		ActorID:  f.barber.ID,
		Type:     "Permission",
		Date:     "2026-03-02",
		FromTime: "2:00 PM",
		ToTime:   "4:00 PM",
		Reason:   " dentist ",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusWaiting), l.Status)
	assert.Equal(t, "dentist", l.Reason)
	require.NotNil(t, l.FromMinute)
	assert.Equal(t, 14*60, *l.FromMinute)
	assert.Equal(t, 16*60, *l.ToMinute)

	events := f.rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, realtime.KindLeave, events[0].Kind)
	assert.Equal(t, "requested", events[0].Action)
	assert.Equal(t, f.salon.ID, events[0].SalonID)
	assert.Len(t, f.rec.Audits(), 1)
}

func TestRequestLeaveIgnoresWindowForWholeDayLeave(t *testing.T) {
	f := newFixture()

	l, err := f.request().Execute(context.Background(), RequestLeaveInput{
		SalonID: f.salon.ID, BarberID: f.barber.ID,
		Type: "Leave", Date: "2026-03-02", FromTime: "2:00 PM", ToTime: "4:00 PM", Reason: "wedding",
	})
	require.NoError(t, err)
	assert.Nil(t, l.FromMinute)
	assert.Nil(t, l.ToMinute)
}

func TestRequestLeaveValidation(t *testing.T) {
	f := newFixture()
	base := RequestLeaveInput{SalonID: f.salon.ID, BarberID: f.barber.ID, Type: "Leave", Date: "2026-03-02", Reason: "x"}

	cases := []struct {
		name string
		mut  func(*RequestLeaveInput)
		code string
	}{
		{"bad type", func(in *RequestLeaveInput) { in.Type = "Holiday" }, httperr.CodeInvalidInput},
		{"bad date", func(in *RequestLeaveInput) { in.Date = "03/02/2026" }, httperr.CodeInvalidDate},
		{"no reason", func(in *RequestLeaveInput) { in.Reason = "  " }, httperr.CodeInvalidInput},
		{"inverted window", func(in *RequestLeaveInput) {
			in.Type, in.FromTime, in.ToTime = "Permission", "4:00 PM", "2:00 PM"
		}, httperr.CodeInvalidTimeRange},
		{"half window", func(in *RequestLeaveInput) {
			in.Type, in.FromTime = "Permission", "4:00 PM"
		}, httperr.CodeInvalidTime},
		{"unknown barber", func(in *RequestLeaveInput) { in.BarberID = "nobody" }, httperr.CodeBarberNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mut(&in)
			_, err := f.request().Execute(context.Background(), in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code), err.Error())
		})
	}
}

// --------------------------------------------------
// Decide
// --------------------------------------------------

func TestApproveThenRejectThenApprove(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	l, err := f.request().Execute(ctx, RequestLeaveInput{
		SalonID: f.salon.ID, BarberID: f.barber.ID, Type: "Leave", Date: "2026-03-02", Reason: "wedding",
	})
	require.NoError(t, err)

	_, err = f.decide().Reject(ctx, f.salon.ID, f.owner.ID, l.ID, "")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	rejected, err := f.decide().Reject(ctx, f.salon.ID, f.owner.ID, l.ID, "busy week")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), rejected.Status)
	assert.Equal(t, "busy week", rejected.RejectReason)
	require.NotNil(t, rejected.DecidedAt)

	approved, err := f.decide().Approve(ctx, f.salon.ID, f.owner.ID, l.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), approved.Status)
	assert.Empty(t, approved.RejectReason)

	assert.Equal(t, 1, f.rec.Count("leave_Approved"))
	assert.Equal(t, 1, f.rec.Count("leave_Rejected"))

	var actions []string
	for _, ev := range f.rec.Events() {
		actions = append(actions, ev.Action)
	}
	assert.Equal(t, []string{"requested", "rejected", "approved"}, actions)
}

func TestDecideIsScopedToSalon(t *testing.T) {
	f := newFixture()
	other := f.store.AddSalon("Other", "other", "")

	l := f.store.PutLeave(models.Leave{
		BarberID: f.barber.ID, SalonID: f.salon.ID, Type: "Leave",
		Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Reason: "x", Status: string(domain.StatusWaiting),
	})

	_, err := f.decide().Approve(context.Background(), other.ID, "someone", l.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeLeaveNotFound))

	_, err = f.decide().Approve(context.Background(), f.salon.ID, "someone", "missing")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeLeaveNotFound))
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func TestCheckAvailability(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got, err := f.availability().Execute(ctx, CheckAvailabilityInput{
		SalonID: f.salon.ID, BarberID: f.barber.ID, Date: "2026-03-03",
	})
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, domain.ReasonWeeklyOff, got.Reason)

	from, to := 14*60, 16*60
	f.store.PutLeave(models.Leave{
		BarberID: f.barber.ID, SalonID: f.salon.ID, Type: "Permission", Date: monday,
		FromMinute: &from, ToMinute: &to, Reason: "dentist", Status: string(domain.StatusApproved),
	})

	got, err = f.availability().Execute(ctx, CheckAvailabilityInput{
		SalonID: f.salon.ID, BarberID: f.barber.ID, Date: "2026-03-02", FromTime: "3:00 PM", ToTime: "3:30 PM",
	})
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, "On permission 2:00 PM - 4:00 PM: dentist", got.Reason)
	assert.Equal(t, "scheduling_blocked: On permission 2:00 PM - 4:00 PM: dentist", Blocked(got).Error())

	got, err = f.availability().Execute(ctx, CheckAvailabilityInput{
		SalonID: f.salon.ID, BarberID: f.barber.ID, Date: "2026-03-02", FromTime: "9:00 AM", ToTime: "9:30 AM",
	})
	require.NoError(t, err)
	assert.True(t, got.Available)
	assert.NoError(t, Blocked(got))
}

func TestCheckAvailabilityTuesdaySkipsStore(t *testing.T) {
	f := newFixture()
	before := f.store.Calls()

	got, err := f.availability().Check(context.Background(), f.barber.ID, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, before, f.store.Calls())
}

func TestCheckAvailabilityRejectsUnknownBarber(t *testing.T) {
	f := newFixture()
	_, err := f.availability().Execute(context.Background(), CheckAvailabilityInput{
		SalonID: f.salon.ID, BarberID: f.owner.ID, Date: "2026-03-02",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberNotFound))
}

// --------------------------------------------------
// List
// --------------------------------------------------

func TestListLeaves(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	other := f.store.AddUser(&f.salon.ID, "Kiran", "kiran@example.com", models.RoleBarber)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	f.store.PutLeave(models.Leave{BarberID: f.barber.ID, SalonID: f.salon.ID, Type: "Leave", Date: day, Reason: "a", Status: string(domain.StatusWaiting)})
	f.store.PutLeave(models.Leave{BarberID: f.barber.ID, SalonID: f.salon.ID, Type: "Leave", Date: day.AddDate(0, 0, 1), Reason: "b", Status: string(domain.StatusApproved)})
	f.store.PutLeave(models.Leave{BarberID: other.ID, SalonID: f.salon.ID, Type: "Leave", Date: day, Reason: "c", Status: string(domain.StatusWaiting)})

	uc := NewListLeaves(f.store.Leaves())

	all, err := uc.Execute(ctx, ListLeavesInput{SalonID: f.salon.ID})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	waiting, err := uc.Execute(ctx, ListLeavesInput{SalonID: f.salon.ID, Status: "Waiting for Approval"})
	require.NoError(t, err)
	assert.Len(t, waiting, 2)

	mine, err := uc.Execute(ctx, ListLeavesInput{SalonID: f.salon.ID, BarberID: f.barber.ID, Status: "Approved"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "b", mine[0].Reason)

	_, err = uc.Execute(ctx, ListLeavesInput{SalonID: f.salon.ID, Status: "Pending"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))
}
