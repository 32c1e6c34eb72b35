package booking

import (
	"time"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

// CancellationWindow is the minimum lead time before the booked start at
// which a pending or confirmed booking may still be cancelled.
const CancellationWindow = 2 * time.Hour

// ===============================
// Domain Actions
// ===============================

// Cancel transitions to the actor's cancelled status. Bookings are never
// deleted; a cancelled row stops blocking conflict checks but stays
// queryable for history.
func Cancel(b *models.Booking, bySalon bool, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}
	if b.StartAt.Sub(now) < CancellationWindow {
		return httperr.ErrBusiness("cancellation_window_closed")
	}

	if bySalon {
		b.Status = string(StatusCancelledBySalon)
	} else {
		b.Status = string(StatusCancelledByUser)
	}
	b.CancelledAt = &now
	return nil
}

func Confirm(b *models.Booking, now time.Time) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}
	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}
	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// Reject declines a request; unlike cancellation it has no lead-time
// window, since it is the salon refusing rather than a party backing out.
func Reject(b *models.Booking, now time.Time) error {
	if err := CanReject(Status(b.Status)); err != nil {
		return err
	}
	b.Status = string(StatusRejected)
	b.CancelledAt = &now
	return nil
}
