package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/realtime"
)

// Recorder captures audit events, realtime events and metric increments.
type Recorder struct {
	mu       sync.Mutex
	audits   []audit.Event
	events   []realtime.Event
	counters map[string]int
}

func NewRecorder() *Recorder {
	return &Recorder{counters: make(map[string]int)}
}

func (r *Recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.audits = append(r.audits, ev)
}

func (r *Recorder) Publish(_ context.Context, ev realtime.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *Recorder) Audits() []audit.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]audit.Event(nil), r.audits...)
}

func (r *Recorder) Events() []realtime.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]realtime.Event(nil), r.events...)
}

func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[name]
}

func (r *Recorder) inc(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name]++
}

func (r *Recorder) SlotCreated() { r.inc("slot_created") }
func (r *Recorder) SlotConflict() { r.inc("slot_conflict") }
func (r *Recorder) SchedulingBlocked() { r.inc("scheduling_blocked") }
func (r *Recorder) BookingConfirmed() { r.inc("booking_confirmed") }
func (r *Recorder) BookingRejected() { r.inc("booking_rejected") }
func (r *Recorder) LeaveDecided(status string) { r.inc("leave_" + status) }

// Clock is a fixed TimeProvider.
type Clock struct{ T time.Time }

func (c Clock) Now() time.Time { return c.T }
