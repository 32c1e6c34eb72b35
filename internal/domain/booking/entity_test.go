package booking

import (
	"testing"
	"time"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

func pendingBooking(startAt time.Time) *models.Booking {
	return &models.Booking{
		Status:  string(StatusPending),
		StartAt: startAt,
	}
}

func TestCancel_InsideWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	b := pendingBooking(now.Add(3 * time.Hour))

	if err := Cancel(b, false, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != string(StatusCancelledByUser) {
		t.Fatalf("expected cancelled_by_user, got %s", b.Status)
	}
	if b.CancelledAt == nil || !b.CancelledAt.Equal(now) {
		t.Fatalf("expected CancelledAt = now, got %v", b.CancelledAt)
	}
}

func TestCancel_WindowClosed(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	b := pendingBooking(now.Add(1 * time.Hour))

	err := Cancel(b, false, now)
	if !httperr.IsBusiness(err, "cancellation_window_closed") {
		t.Fatalf("expected cancellation_window_closed, got %v", err)
	}
	if b.Status != string(StatusPending) {
		t.Fatalf("failed cancel must not mutate status, got %s", b.Status)
	}
}

func TestCancel_BySalon(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	b := pendingBooking(now.Add(3 * time.Hour))
	b.Status = string(StatusConfirmed)

	if err := Cancel(b, true, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != string(StatusCancelledBySalon) {
		t.Fatalf("expected cancelled_by_salon, got %s", b.Status)
	}
}

func TestCancel_TerminalStates(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	for _, status := range []Status{StatusCompleted, StatusCancelledByUser, StatusCancelledBySalon, StatusRejected} {
		b := pendingBooking(now.Add(3 * time.Hour))
		b.Status = string(status)

		err := Cancel(b, false, now)
		if !httperr.IsBusiness(err, "not_cancellable") {
			t.Fatalf("%s: expected not_cancellable, got %v", status, err)
		}
	}
}

func TestLifecycle_PendingToCompleted(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	b := pendingBooking(now.Add(3 * time.Hour))

	if err := Confirm(b, now); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if b.Status != string(StatusConfirmed) || b.ConfirmedAt == nil {
		t.Fatalf("unexpected state after confirm: %+v", b)
	}

	if err := Complete(b, now); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if b.Status != string(StatusCompleted) || b.CompletedAt == nil {
		t.Fatalf("unexpected state after complete: %+v", b)
	}
}

func TestComplete_RequiresConfirmed(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	b := pendingBooking(now.Add(3 * time.Hour))

	err := Complete(b, now)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

// Rejection is the salon declining a request; no lead-time window applies.
func TestReject_NoWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	b := pendingBooking(now.Add(10 * time.Minute))

	if err := Reject(b, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != string(StatusRejected) {
		t.Fatalf("expected rejected, got %s", b.Status)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled_by_user", "cancelled_by_salon", "rejected"} {
		if !IsValidStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
	}
	if IsValidStatus("archived") {
		t.Fatal("archived should be invalid")
	}
}

func TestTerminatedStatuses(t *testing.T) {
	terminated := TerminatedStatuses()
	if len(terminated) != 3 {
		t.Fatalf("expected 3 terminated statuses, got %d", len(terminated))
	}
	for _, s := range terminated {
		if s == string(StatusCompleted) {
			t.Fatal("completed bookings still block the slot")
		}
	}
}
