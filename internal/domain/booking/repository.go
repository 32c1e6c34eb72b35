package booking

import (
	"context"
	"time"

	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

type Repository interface {
	// -------- Users / addresses --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetAddressForUser(
		ctx context.Context,
		addressID uint,
		userID uint,
	) (*models.Address, error)

	// -------- Salon configuration --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonServices(
		ctx context.Context,
		salonID uint,
	) ([]models.SalonService, error)

	GetDayTemplate(
		ctx context.Context,
		salonID uint,
		weekday int,
	) (*models.WeeklyAvailability, []models.BreakSlot, error)

	IsClosedDate(
		ctx context.Context,
		salonID uint,
		date time.Time,
	) (bool, error)

	// -------- Bookings (read) --------
	ListActiveBookingsForDay(
		ctx context.Context,
		salonID uint,
		date time.Time,
	) ([]models.Booking, error)

	GetBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	GetBookingForSalon(
		ctx context.Context,
		bookingID uint,
		salonID uint,
	) (*models.Booking, error)

	ListBookingsByUser(
		ctx context.Context,
		userID uint,
		status string,
		page int,
		pageSize int,
	) ([]models.Booking, int64, error)

	ListBookingsForSalonDay(
		ctx context.Context,
		salonID uint,
		date time.Time,
	) ([]models.Booking, error)

	// -------- Bookings (write) --------

	// CreateBooking re-checks the interval against the day's live
	// bookings and inserts atomically; a lost race surfaces as the
	// slot_already_booked business error.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
