package slot

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const generalKey = "general"

// ScheduleKey identifies the (salon, barber|general, date) schedule a slot
// belongs to. Slots only conflict within the same key.
func ScheduleKey(salonID string, barberID *string, date time.Time) string {
	b := generalKey
	if barberID != nil && *barberID != "" {
		b = *barberID
	}
	return salonID + "|" + b + "|" + timezone.DateOnly(date).Format(timezone.DateLayout)
}

// WindowOf returns the slot's interval.
func WindowOf(s *models.Slot) Window {
	return Window{From: s.FromMinute, To: s.ToMinute}
}

// FindConflict returns the first existing slot of the same schedule whose
// window intersects candidate, or nil.
func FindConflict(
	salonID string,
	barberID *string,
	date time.Time,
	candidate Window,
	existing []models.Slot,
) *models.Slot {
	key := ScheduleKey(salonID, barberID, date)

	for i := range existing {
		s := &existing[i]
		if ScheduleKey(s.SalonID, s.BarberID, s.Date) != key {
			continue
		}
		if candidate.Overlaps(WindowOf(s)) {
			return s
		}
	}
	return nil
}
