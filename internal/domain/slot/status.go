package slot

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Slot Status
// ===============================

type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusUnavailable Status = "unavailable"
)

// DisplayCompleted is a view-only status for slots whose window has passed.
// It is never persisted.
const DisplayCompleted = "Completed"

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusUnavailable:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// InitialStatus is the status of every newly created slot.
func InitialStatus() Status {
	return StatusAvailable
}

// CanBook reports whether a booking may be confirmed against the slot.
func CanBook(current Status) error {
	if current != StatusAvailable {
		return httperr.ErrBusiness(httperr.CodeSlotNotAvailable)
	}
	return nil
}

// Toggle flips available <-> unavailable. Booked slots stay booked.
func Toggle(current Status) (Status, error) {
	switch current {
	case StatusAvailable:
		return StatusUnavailable, nil
	case StatusUnavailable:
		return StatusAvailable, nil
	default:
		return current, httperr.ErrBusinessMsg(httperr.CodeInvalidState, "booked slots cannot be toggled")
	}
}
