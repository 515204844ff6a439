package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBrokerDeliversPerSalon(t *testing.T) {
	b := NewMemoryBroker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := b.Subscribe(ctx, "salon-1")
	require.NoError(t, err)

	require.NoError(t, b.Publish(ctx, Event{Kind: KindLeave, Action: "created", SalonID: "salon-2", ID: "x"}))
	require.NoError(t, b.Publish(ctx, Event{Kind: KindLeave, Action: "created", SalonID: "salon-1", ID: "l1"}))

	select {
	case ev := <-ch:
		assert.Equal(t, "l1", ev.ID)
		assert.False(t, ev.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestMemoryBrokerClosesOnCancel(t *testing.T) {
	b := NewMemoryBroker()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := b.Subscribe(ctx, "salon-1")
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}

	// publishing after unsubscribe is a no-op
	assert.NoError(t, b.Publish(context.Background(), Event{SalonID: "salon-1"}))
}

func TestChannel(t *testing.T) {
	assert.Equal(t, "salon:abc:events", Channel("abc"))
}
