package slot

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// IsExpired reports whether the slot's window has fully passed at now,
// reading the slot date and end time in loc.
func IsExpired(now time.Time, s *models.Slot, loc *time.Location) bool {
	end := timezone.At(s.Date, s.ToMinute, loc)
	return !now.Before(end)
}

// DisplayStatus is the status shown to users: "Completed" for expired
// slots, otherwise the stored status.
func DisplayStatus(now time.Time, s *models.Slot, loc *time.Location) string {
	if IsExpired(now, s, loc) {
		return DisplayCompleted
	}
	return s.Status
}
