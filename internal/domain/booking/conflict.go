package booking

import (
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

// Interval is a booked [start, end) window in minutes from midnight.
type Interval struct {
	StartMin int
	EndMin   int
}

// BusyIntervals converts a day's non-terminated bookings into minute
// intervals. The stored duration snapshot is authoritative; records
// predating the snapshot column fall back to the default duration.
func BusyIntervals(bookings []models.Booking) []Interval {
	busy := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		start, err := TimeToMinutes(b.BookingTime)
		if err != nil {
			continue
		}
		duration := b.TotalDurationMin
		if duration <= 0 {
			duration = DefaultServiceDurationMin
		}
		busy = append(busy, Interval{StartMin: start, EndMin: start + duration})
	}
	return busy
}

// HasConflict reports whether [startMin, endMin) overlaps any busy
// interval under the half-open rule.
func HasConflict(startMin, endMin int, busy []Interval) bool {
	for _, iv := range busy {
		if overlaps(startMin, endMin, iv.StartMin, iv.EndMin) {
			return true
		}
	}
	return false
}

// FilterBooked drops generated slots that collide with live bookings.
func FilterBooked(slots []Slot, busy []Interval) []Slot {
	if len(busy) == 0 {
		return slots
	}

	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		start, err := TimeToMinutes(s.StartTime)
		if err != nil {
			continue
		}
		if HasConflict(start, start+s.DurationMin, busy) {
			continue
		}
		out = append(out, s)
	}
	return out
}
