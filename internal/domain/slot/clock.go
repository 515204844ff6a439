package slot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const MinutesPerDay = 24 * 60

// ParseClock converts a wall-clock string into minutes since midnight.
//
// Accepted forms are 12-hour times with an AM/PM suffix ("9:30 AM",
// "09:30:00 pm", "9 AM") and 24-hour "15:04". Non-breaking spaces, as
// produced by locale time formatting, are treated as regular spaces.
func ParseClock(raw string) (int, error) {
	s := strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(raw)
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, httperr.ErrBusinessMsg(httperr.CodeInvalidTime, "time is required")
	}

	meridiem := ""
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		meridiem = s[len(s)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 || (meridiem == "" && len(parts) < 2) {
		return 0, invalidClock(raw)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, invalidClock(raw)
		}
		nums[i] = n
	}

	hour := nums[0]
	minute := 0
	if len(nums) > 1 {
		minute = nums[1]
	}
	if minute > 59 || (len(nums) == 3 && nums[2] > 59) {
		return 0, invalidClock(raw)
	}

	switch meridiem {
	case "AM", "PM":
		if hour < 1 || hour > 12 {
			return 0, invalidClock(raw)
		}
		if meridiem == "PM" && hour < 12 {
			hour += 12
		}
		if meridiem == "AM" && hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return 0, invalidClock(raw)
		}
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as "9:05 AM".
func FormatClock(minute int) string {
	minute = ((minute % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	h, m := minute/60, minute%60

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

func invalidClock(raw string) error {
	return httperr.ErrBusinessMsg(httperr.CodeInvalidTime, fmt.Sprintf("unrecognised time %q", raw))
}
