package booking

import (
	"context"
	"time"

	"github.com/MikyMack/Blushley-full-sub000/internal/audit"
	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/events"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
	"github.com/MikyMack/Blushley-full-sub000/internal/timezone"
)

// SalonAction covers the salon-side lifecycle transitions. They share
// the load-transition-save shape, so one use case carries all four.
type SalonAction struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Publisher
}

func NewSalonAction(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *events.Publisher,
) *SalonAction {
	return &SalonAction{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *SalonAction) Confirm(ctx context.Context, salonID, bookingID, actorID uint) (*models.Booking, error) {
	return uc.apply(ctx, salonID, bookingID, actorID, "booking_confirmed", domain.Confirm)
}

func (uc *SalonAction) Complete(ctx context.Context, salonID, bookingID, actorID uint) (*models.Booking, error) {
	return uc.apply(ctx, salonID, bookingID, actorID, "booking_completed", domain.Complete)
}

func (uc *SalonAction) Reject(ctx context.Context, salonID, bookingID, actorID uint) (*models.Booking, error) {
	return uc.apply(ctx, salonID, bookingID, actorID, "booking_rejected", domain.Reject)
}

func (uc *SalonAction) Cancel(ctx context.Context, salonID, bookingID, actorID uint) (*models.Booking, error) {
	return uc.apply(ctx, salonID, bookingID, actorID, "booking_cancelled_by_salon",
		func(b *models.Booking, now time.Time) error {
			return domain.Cancel(b, true, now)
		})
}

func (uc *SalonAction) apply(
	ctx context.Context,
	salonID uint,
	bookingID uint,
	actorID uint,
	action string,
	transition func(*models.Booking, time.Time) error,
) (*models.Booking, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	b, err := uc.repo.GetBookingForSalon(ctx, bookingID, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := transition(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &actorID,
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	switch domain.Status(b.Status) {
	case domain.StatusConfirmed:
		uc.publish(b, events.TypeBookingConfirmed)
	case domain.StatusCancelledBySalon, domain.StatusRejected:
		uc.publish(b, events.TypeBookingCancelled)
	}

	return b, nil
}

func (uc *SalonAction) publish(b *models.Booking, eventType string) {
	uc.events.Publish(events.BookingEvent{
		Type:         eventType,
		BookingToken: b.BookingToken,
		SalonID:      b.SalonID,
		UserID:       b.UserID,
		BookingDate:  b.BookingDate.Format("2006-01-02"),
		BookingTime:  b.BookingTime,
		Status:       b.Status,
	})
}
