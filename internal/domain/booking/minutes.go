package booking

import (
	"fmt"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
)

const minutesPerDay = 24 * 60

// TimeToMinutes parses a wall-clock "HH:MM" string into minutes from
// midnight (0..1439). Malformed input fails with invalid_time_format.
func TimeToMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	h, ok1 := twoDigits(s[0], s[1])
	m, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	return h*60 + m, nil
}

// MinutesToTime is the inverse of TimeToMinutes, zero-padded. It is only
// defined for 0 <= m < 1440; the slot cadence loop must stop before
// midnight, so reaching this panic means a caller bug.
func MinutesToTime(m int) string {
	if m < 0 || m >= minutesPerDay {
		panic(fmt.Sprintf("minutes out of range: %d", m))
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
