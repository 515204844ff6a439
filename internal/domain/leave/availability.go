package leave

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// WeeklyOffDay is the fixed salon-wide day off for every barber.
const WeeklyOffDay = time.Tuesday

const ReasonWeeklyOff = "weekly off day"

type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Evaluate decides whether a barber can work on date.
//
// Rules, in order:
//   - the weekly off day blocks the whole day;
//   - an approved Leave on the date blocks the whole day;
//   - an approved Permission without a window blocks the whole day;
//   - an approved Permission with a window blocks only a checked window
//     that intersects it. A date-only check (window == nil) is not blocked
//     by a windowed Permission.
//
// Waiting and rejected requests never block.
func Evaluate(date time.Time, window *slot.Window, requests []models.Leave) Availability {
	day := timezone.DateOnly(date)

	if day.Weekday() == WeeklyOffDay {
		return Availability{Reason: ReasonWeeklyOff}
	}

	for i := range requests {
		l := &requests[i]
		if Status(l.Status) != StatusApproved || !timezone.DateOnly(l.Date).Equal(day) {
			continue
		}

		switch Type(l.Type) {
		case TypeLeave:
			return Availability{Reason: "On leave: " + l.Reason}
		case TypePermission:
			pw, hasWindow := WindowOf(l)
			if !hasWindow {
				return Availability{Reason: "On permission: " + l.Reason}
			}
			if window != nil && window.Overlaps(pw) {
				return Availability{Reason: fmt.Sprintf("On permission %s: %s", pw, l.Reason)}
			}
		}
	}

	return Availability{Available: true}
}

// WindowOf returns the permission window when both ends are set.
func WindowOf(l *models.Leave) (slot.Window, bool) {
	if l.FromMinute == nil || l.ToMinute == nil {
		return slot.Window{}, false
	}
	return slot.Window{From: *l.FromMinute, To: *l.ToMinute}, true
}
