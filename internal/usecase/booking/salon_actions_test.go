package booking

import (
	"context"
	"testing"
	"time"

	"github.com/MikyMack/Blushley-full-sub000/internal/audit"
	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/events"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
)

func newActionUC(repo *fakeRepo) *SalonAction {
	return NewSalonAction(repo, audit.NewDispatcher(audit.New(nil)), events.NewPublisher(nil, ""))
}

func TestSalonAction_ConfirmThenComplete(t *testing.T) {
	repo := newFakeRepo()
	uc := newActionUC(repo)

	seeded := seedBooking(t, repo, 3*time.Hour)

	b, err := uc.Confirm(context.Background(), 1, seeded.ID, 2)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if b.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", b.Status)
	}

	b, err = uc.Complete(context.Background(), 1, seeded.ID, 2)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if b.Status != string(domain.StatusCompleted) {
		t.Fatalf("expected completed, got %s", b.Status)
	}

	stored, _ := repo.GetBookingForSalon(context.Background(), seeded.ID, 1)
	if stored.Status != string(domain.StatusCompleted) || stored.CompletedAt == nil {
		t.Fatalf("completion not persisted: %+v", stored)
	}
}

func TestSalonAction_CompleteRequiresConfirmed(t *testing.T) {
	repo := newFakeRepo()
	uc := newActionUC(repo)

	seeded := seedBooking(t, repo, 3*time.Hour)

	_, err := uc.Complete(context.Background(), 1, seeded.ID, 2)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

// Reject has no lead-time window: a salon may decline right up to the start.
func TestSalonAction_RejectNearStart(t *testing.T) {
	repo := newFakeRepo()
	uc := newActionUC(repo)

	seeded := seedBooking(t, repo, 10*time.Minute)

	b, err := uc.Reject(context.Background(), 1, seeded.ID, 2)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if b.Status != string(domain.StatusRejected) {
		t.Fatalf("expected rejected, got %s", b.Status)
	}
}

// Salon-side cancellation honours the same two-hour window as the customer's.
func TestSalonAction_CancelWindow(t *testing.T) {
	repo := newFakeRepo()
	uc := newActionUC(repo)

	near := seedBooking(t, repo, time.Hour)
	if _, err := uc.Cancel(context.Background(), 1, near.ID, 2); !httperr.IsBusiness(err, "cancellation_window_closed") {
		t.Fatalf("expected cancellation_window_closed, got %v", err)
	}

	repo2 := newFakeRepo()
	uc2 := newActionUC(repo2)

	far := seedBooking(t, repo2, 3*time.Hour)
	b, err := uc2.Cancel(context.Background(), 1, far.ID, 2)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if b.Status != string(domain.StatusCancelledBySalon) {
		t.Fatalf("expected cancelled_by_salon, got %s", b.Status)
	}
}

func TestSalonAction_WrongSalon(t *testing.T) {
	repo := newFakeRepo()
	repo.salons[2] = repo.salons[1]
	uc := newActionUC(repo)

	seeded := seedBooking(t, repo, 3*time.Hour)

	_, err := uc.Confirm(context.Background(), 2, seeded.ID, 2)
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}
