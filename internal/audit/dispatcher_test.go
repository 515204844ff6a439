package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
)

type memStore struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
	fail   bool
}

func (s *memStore) Log(_ context.Context, ev Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("db down")
	}
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	store := &memStore{}
	d := NewDispatcher(store, logger.Nop(), 10)

	d.Dispatch(Event{SalonID: "s1", Action: "slot_created"})
	d.Dispatch(Event{SalonID: "s1", Action: "booking_confirmed"})
	d.Close()

	require.Len(t, store.events, 2)
	assert.Equal(t, "slot_created", store.events[0].Action)
	assert.Equal(t, "booking_confirmed", store.events[1].Action)
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	store := &memStore{block: make(chan struct{})}
	d := NewDispatcher(store, logger.Nop(), 1)

	// one event held by the worker, one in the buffer, the rest dropped
	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "x"})
	}
	close(store.block)
	d.Close()

	assert.LessOrEqual(t, len(store.events), 2)
	assert.GreaterOrEqual(t, len(store.events), 1)
}

func TestDispatcherSurvivesStoreErrors(t *testing.T) {
	store := &memStore{fail: true}
	d := NewDispatcher(store, logger.Nop(), 4)

	d.Dispatch(Event{Action: "x"})
	d.Close()

	assert.Empty(t, store.events)
}

func TestToModelEncodesMetadata(t *testing.T) {
	id := "slot-1"
	m := ToModel(Event{
		SalonID:  "s1",
		Action:   "slot_created",
		Entity:   "slot",
		EntityID: &id,
		Metadata: map[string]string{"window": "9:00 AM - 9:30 AM"},
	})

	assert.Equal(t, "s1", m.SalonID)
	assert.Equal(t, &id, m.EntityID)
	assert.JSONEq(t, `{"window":"9:00 AM - 9:30 AM"}`, m.Metadata)

	assert.Empty(t, ToModel(Event{Metadata: make(chan int)}).Metadata)
}

type sinkRecorder struct {
	mu     sync.Mutex
	errors []string
}

func (r *sinkRecorder) Warn(format string, v ...interface{}) {}

func (r *sinkRecorder) Error(format string, v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, format)
}

func TestDispatcherWritesThroughGormLogger(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=audit dbname=audit sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	sink := &sinkRecorder{}
	d := NewDispatcher(New(db), sink, 2)

	userID := "owner-1"
	d.Dispatch(Event{SalonID: "salon-1", UserID: &userID, Action: "slot_created", Entity: "slot"})
	d.Close()

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Empty(t, sink.errors)
}
