package realtime

import (
	"context"
	"sync"
	"time"
)

// MemoryBroker is an in-process Broker. It is used when no Redis URL is
// configured and in tests. Slow subscribers miss events instead of
// blocking publishers.
type MemoryBroker struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{}
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: make(map[string]map[chan Event]struct{})}
}

func (b *MemoryBroker) Publish(_ context.Context, ev Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs[ev.SalonID] {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context, salonID string) (<-chan Event, error) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	if b.subs[salonID] == nil {
		b.subs[salonID] = make(map[chan Event]struct{})
	}
	b.subs[salonID][ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()

		b.mu.Lock()
		delete(b.subs[salonID], ch)
		if len(b.subs[salonID]) == 0 {
			delete(b.subs, salonID)
		}
		close(ch)
		b.mu.Unlock()
	}()

	return ch, nil
}

// Compile-time check
var _ Broker = (*MemoryBroker)(nil)
