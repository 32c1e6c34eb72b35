package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikyMack/Blushley-full-sub000/internal/audit"
	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/events"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
	"github.com/MikyMack/Blushley-full-sub000/internal/timezone"
)

const (
	BookingTypeSalon = "salon"
	BookingTypeHome  = "home"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID  uint
	SalonID uint

	ServiceIDs []uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	BookingType string
	AddressID   *uint
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *events.Publisher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *events.Publisher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the admission pipeline in fixed order: identity, salon,
// availability, service aggregation, home-service address, interval
// validation, then the atomic conflict-check-plus-insert in the
// repository. Later steps depend on earlier validated state.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	loc := timezone.Location(salon.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	startMin, err := domain.TimeToMinutes(in.Time)
	if err != nil {
		return nil, err
	}

	// 1. The salon must be open on the requested date.
	day, err := resolveDay(ctx, uc.repo, in.SalonID, date)
	if err != nil {
		return nil, err
	}
	if !day.IsOpen {
		return nil, httperr.ErrBusiness("salon_closed")
	}

	// 2. Aggregate the requested services.
	homeService := in.BookingType == BookingTypeHome

	catalog, err := uc.repo.GetSalonServices(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	quote, err := domain.BuildQuote(
		catalog,
		in.ServiceIDs,
		homeService,
		salon.HomeServiceCharge,
	)
	if err != nil {
		return nil, err
	}

	// 3. Home bookings need a supported salon and an address owned by
	// the requesting user.
	var address *models.Address
	if homeService {
		if !salon.HomeServiceAvailable {
			return nil, httperr.ErrBusiness("home_service_unavailable")
		}
		if in.AddressID == nil {
			return nil, httperr.ErrBusiness("address_not_found")
		}
		address, err = uc.repo.GetAddressForUser(ctx, *in.AddressID, user.ID)
		if err != nil {
			return nil, httperr.ErrBusiness("address_not_found")
		}
	}

	// 4. The exact requested interval must sit inside the open window
	// and clear of breaks.
	endMin := startMin + quote.TotalDurationMin

	openMin, err := domain.TimeToMinutes(day.OpeningTime)
	if err != nil {
		return nil, err
	}
	closeMin, err := domain.TimeToMinutes(day.ClosingTime)
	if err != nil {
		return nil, err
	}

	if startMin < openMin || endMin > closeMin {
		return nil, httperr.ErrBusiness("slot_outside_hours")
	}
	for _, br := range day.Breaks {
		bs, err := domain.TimeToMinutes(br.Start)
		if err != nil {
			return nil, err
		}
		be, err := domain.TimeToMinutes(br.End)
		if err != nil {
			return nil, err
		}
		if startMin < be && endMin > bs {
			return nil, httperr.ErrBusiness("slot_during_break")
		}
	}

	startAt := date.Add(time.Duration(startMin) * time.Minute)
	if startAt.Before(timezone.NowIn(salon.Timezone)) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	// 5. Advisory conflict check against the current booking set. The
	// authoritative re-check happens inside CreateBooking's transaction;
	// this one just rejects obviously lost races before touching the
	// write path.
	existing, err := uc.repo.ListActiveBookingsForDay(ctx, in.SalonID, date)
	if err != nil {
		return nil, err
	}
	if domain.HasConflict(startMin, endMin, domain.BusyIntervals(existing)) {
		return nil, httperr.ErrBusiness("slot_already_booked")
	}

	// 6-7. Build the record with its payment snapshot and persist
	// atomically.
	b := &models.Booking{
		BookingToken: uuid.NewString(),
		UserID:       user.ID,
		SalonID:      salon.ID,

		BookingDate:      date,
		BookingTime:      in.Time,
		TotalDurationMin: quote.TotalDurationMin,
		StartAt:          startAt,
		EndAt:            date.Add(time.Duration(endMin) * time.Minute),

		Status:      string(domain.InitialStatus()),
		BookingType: in.BookingType,

		TotalServiceAmount: quote.TotalServiceAmount,
		SalonEarning:       quote.SalonEarning,
		HomeServiceCharge:  quote.HomeServiceCharge,

		Notes: in.Notes,
	}
	if b.BookingType == "" {
		b.BookingType = BookingTypeSalon
	}
	if address != nil {
		b.AddressID = &address.ID
	}
	for _, svc := range quote.Services {
		duration := svc.DurationMin
		if duration <= 0 {
			duration = domain.DefaultServiceDurationMin
		}
		b.Services = append(b.Services, models.BookingService{
			ServiceID:   svc.ID,
			Name:        svc.Name,
			Price:       svc.Price,
			AdminPrice:  svc.AdminPrice,
			DurationMin: duration,
		})
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &user.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.events.Publish(events.BookingEvent{
		Type:         events.TypeBookingCreated,
		BookingToken: b.BookingToken,
		SalonID:      b.SalonID,
		UserID:       b.UserID,
		BookingDate:  in.Date,
		BookingTime:  b.BookingTime,
		Status:       b.Status,
	})

	return b, nil
}
