package booking

import (
	"context"
	"time"

	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/dto"
)

type ListSalonBookings struct {
	repo domain.Repository
}

func NewListSalonBookings(repo domain.Repository) *ListSalonBookings {
	return &ListSalonBookings{repo: repo}
}

// Execute returns every booking for the salon on one date, terminated
// ones included, ascending by start time.
func (uc *ListSalonBookings) Execute(
	ctx context.Context,
	salonID uint,
	date time.Time,
) ([]dto.SalonBookingDTO, error) {

	bookings, err := uc.repo.ListBookingsForSalonDay(ctx, salonID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SalonBookingDTO, 0, len(bookings))
	for _, b := range bookings {
		item := dto.SalonBookingDTO{
			ID:               b.ID,
			BookingToken:     b.BookingToken,
			CustomerName:     b.User.Name,
			CustomerPhone:    b.User.Phone,
			BookingTime:      b.BookingTime,
			TotalDurationMin: b.TotalDurationMin,
			Status:           b.Status,
			BookingType:      b.BookingType,
			SalonEarning:     b.SalonEarning,
		}
		for _, svc := range b.Services {
			item.Services = append(item.Services, svc.Name)
		}
		out = append(out, item)
	}

	return out, nil
}
