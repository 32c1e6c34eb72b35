package booking

import (
	"context"

	"github.com/MikyMack/Blushley-full-sub000/internal/audit"
	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/events"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
	"github.com/MikyMack/Blushley-full-sub000/internal/timezone"
)

type CancelBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Publisher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *events.Publisher,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

// Execute cancels on behalf of the booking's customer. The two-hour
// window before the booked start applies; outside it the booking stays
// as it is.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	salon, err := uc.repo.GetSalonByID(ctx, b.SalonID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Cancel(b, false, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  b.SalonID,
		UserID:   &userID,
		Action:   "booking_cancelled_by_user",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.events.Publish(events.BookingEvent{
		Type:         events.TypeBookingCancelled,
		BookingToken: b.BookingToken,
		SalonID:      b.SalonID,
		UserID:       b.UserID,
		BookingDate:  b.BookingDate.Format("2006-01-02"),
		BookingTime:  b.BookingTime,
		Status:       b.Status,
	})

	return b, nil
}
