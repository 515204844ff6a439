package realtime

import (
	"context"
	"time"
)

const (
	KindSlot    = "slot"
	KindBooking = "booking"
	KindLeave   = "leave"
)

// Event is a change notification fanned out to a salon's live clients.
type Event struct {
	Kind    string    `json:"kind"`
	Action  string    `json:"action"`
	SalonID string    `json:"salon_id"`
	ID      string    `json:"id"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// Broker fans events out per salon. Subscribe returns a channel that is
// closed once ctx is done.
type Broker interface {
	Publish(ctx context.Context, ev Event) error
	Subscribe(ctx context.Context, salonID string) (<-chan Event, error)
}

func Channel(salonID string) string {
	return "salon:" + salonID + ":events"
}
