package slot

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// Window is a half-open [From, To) interval of minutes since midnight.
type Window struct {
	From int
	To   int
}

// ParseWindow parses both ends and checks that To is strictly after From.
func ParseWindow(from, to string) (Window, error) {
	f, err := ParseClock(from)
	if err != nil {
		return Window{}, err
	}
	t, err := ParseClock(to)
	if err != nil {
		return Window{}, err
	}

	w := Window{From: f, To: t}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func (w Window) Validate() error {
	if w.From < 0 || w.To > MinutesPerDay || w.To <= w.From {
		return httperr.ErrBusinessMsg(
			httperr.CodeInvalidTimeRange,
			"end time must be after start time",
		)
	}
	return nil
}

// Overlaps reports a non-empty intersection. Touching windows do not overlap.
func (w Window) Overlaps(o Window) bool {
	return max(w.From, o.From) < min(w.To, o.To)
}

func (w Window) String() string {
	return FormatClock(w.From) + " - " + FormatClock(w.To)
}
