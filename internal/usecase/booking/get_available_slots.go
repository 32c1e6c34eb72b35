package booking

import (
	"context"
	"time"

	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
)

type AvailableSlotsInput struct {
	SalonID     uint
	Date        time.Time // midnight in the salon's timezone
	ServiceIDs  []uint
	HomeService bool
}

type AvailableSlotsOutput struct {
	Slots            []domain.Slot `json:"slots"`
	TotalDurationMin int           `json:"total_duration"`
	Reason           string        `json:"reason,omitempty"`
}

type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in AvailableSlotsInput,
) (*AvailableSlotsOutput, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	catalog, err := uc.repo.GetSalonServices(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	quote, err := domain.BuildQuote(
		catalog,
		in.ServiceIDs,
		in.HomeService,
		salon.HomeServiceCharge,
	)
	if err != nil {
		return nil, err
	}

	day, err := resolveDay(ctx, uc.repo, in.SalonID, in.Date)
	if err != nil {
		return nil, err
	}

	slots, reason, err := domain.GenerateSlots(
		day,
		quote.TotalDurationMin,
		salon.SlotDurationMin,
	)
	if err != nil {
		return nil, err
	}

	out := &AvailableSlotsOutput{
		TotalDurationMin: quote.TotalDurationMin,
		Reason:           reason,
	}
	if len(slots) == 0 {
		out.Slots = []domain.Slot{}
		return out, nil
	}

	// Prune candidates against live bookings; the authoritative check
	// happens again at admission time.
	bookings, err := uc.repo.ListActiveBookingsForDay(ctx, in.SalonID, in.Date)
	if err != nil {
		return nil, err
	}

	out.Slots = domain.FilterBooked(slots, domain.BusyIntervals(bookings))
	if len(out.Slots) == 0 {
		out.Slots = []domain.Slot{}
		out.Reason = "fully_booked"
	}

	return out, nil
}
