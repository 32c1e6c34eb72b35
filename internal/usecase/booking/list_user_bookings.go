package booking

import (
	"context"

	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/dto"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
	status string,
	page int,
	pageSize int,
) ([]dto.BookingListDTO, int64, int, int, error) {

	if status != "" && !domain.IsValidStatus(status) {
		return nil, 0, 0, 0, httperr.ErrBusiness("invalid_status_filter")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	bookings, total, err := uc.repo.ListBookingsByUser(ctx, userID, status, page, pageSize)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		item := dto.BookingListDTO{
			ID:                 b.ID,
			BookingToken:       b.BookingToken,
			SalonID:            b.SalonID,
			SalonName:          b.Salon.Name,
			BookingDate:        b.BookingDate.Format("2006-01-02"),
			BookingTime:        b.BookingTime,
			TotalDurationMin:   b.TotalDurationMin,
			Status:             b.Status,
			BookingType:        b.BookingType,
			TotalServiceAmount: b.TotalServiceAmount,
		}
		for _, svc := range b.Services {
			item.Services = append(item.Services, svc.Name)
		}
		out = append(out, item)
	}

	return out, total, page, pageSize, nil
}
