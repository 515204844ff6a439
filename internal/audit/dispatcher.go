package audit

import (
	"context"
	"sync"
	"time"
)

type Event struct {
	SalonID  string
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

type Store interface {
	Log(ctx context.Context, ev Event) error
}

// LogSink receives dispatcher warnings and store failures.
type LogSink interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const writeTimeout = 5 * time.Second

// Dispatcher writes audit events from a single background worker so that
// request handlers never wait on the audit table.
type Dispatcher struct {
	store Store
	log   LogSink
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(store Store, log LogSink, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		store: store,
		log:   log,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.store.Log(ctx, ev); err != nil {
			d.log.Error("audit %s: %v", ev.Action, err)
		}
		cancel()
	}
}

// Dispatch enqueues ev. A full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping %s", ev.Action)
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
