package booking

import (
	"testing"

	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

func TestBusyIntervals(t *testing.T) {
	bookings := []models.Booking{
		{BookingTime: "10:00", TotalDurationMin: 90},
		{BookingTime: "15:30", TotalDurationMin: 0}, // legacy row, default duration
	}

	busy := BusyIntervals(bookings)
	if len(busy) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(busy))
	}
	if busy[0].StartMin != 600 || busy[0].EndMin != 690 {
		t.Fatalf("unexpected first interval %+v", busy[0])
	}
	if busy[1].EndMin-busy[1].StartMin != DefaultServiceDurationMin {
		t.Fatalf("legacy row should use the default duration, got %+v", busy[1])
	}
}

func TestBusyIntervals_SkipsMalformed(t *testing.T) {
	bookings := []models.Booking{
		{BookingTime: "bogus", TotalDurationMin: 60},
		{BookingTime: "10:00", TotalDurationMin: 60},
	}

	busy := BusyIntervals(bookings)
	if len(busy) != 1 {
		t.Fatalf("expected malformed row skipped, got %d intervals", len(busy))
	}
}

func TestHasConflict(t *testing.T) {
	busy := []Interval{{StartMin: 600, EndMin: 660}}

	if !HasConflict(630, 690, busy) {
		t.Fatal("overlapping request must conflict")
	}
	if HasConflict(660, 720, busy) {
		t.Fatal("back-to-back request must not conflict")
	}
	if HasConflict(540, 600, busy) {
		t.Fatal("request ending at busy start must not conflict")
	}
}

func TestFilterBooked(t *testing.T) {
	slots := []Slot{
		{StartTime: "09:00", EndTime: "10:00", DurationMin: 60},
		{StartTime: "09:30", EndTime: "10:30", DurationMin: 60},
		{StartTime: "10:00", EndTime: "11:00", DurationMin: 60},
	}
	busy := []Interval{{StartMin: 540, EndMin: 600}} // 09:00-10:00 taken

	out := FilterBooked(slots, busy)
	if len(out) != 1 {
		t.Fatalf("expected 1 free slot, got %d", len(out))
	}
	if out[0].StartTime != "10:00" {
		t.Fatalf("expected the 10:00 slot to survive, got %+v", out[0])
	}
}

func TestFilterBooked_NoBusy(t *testing.T) {
	slots := []Slot{{StartTime: "09:00", EndTime: "10:00", DurationMin: 60}}
	out := FilterBooked(slots, nil)
	if len(out) != 1 {
		t.Fatalf("expected slots untouched, got %d", len(out))
	}
}
