package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

// fakeRepo is an in-memory Repository. CreateBooking re-checks the
// interval under a mutex, mirroring the transactional admission of the
// real implementation.
type fakeRepo struct {
	mu sync.Mutex

	users     map[uint]models.User
	addresses map[uint]models.Address
	salons    map[uint]models.Salon
	services  map[uint][]models.SalonService

	// One weekly template shared across weekdays keeps test dates
	// independent of the calendar.
	template *models.WeeklyAvailability
	breaks   []models.BreakSlot
	closed   map[string]bool

	bookings []models.Booking
	nextID   uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users: map[uint]models.User{
			1: {ID: 1, Name: "Asha", Email: "asha@example.com"},
		},
		addresses: map[uint]models.Address{
			7: {ID: 7, UserID: 1, Line1: "12 Rose St", City: "Mumbai", Pincode: "400001"},
		},
		salons: map[uint]models.Salon{
			1: {
				ID:                   1,
				Name:                 "Blush Studio",
				Slug:                 "blush-studio",
				SlotDurationMin:      30,
				HomeServiceAvailable: true,
				HomeServiceCharge:    100,
				Active:               true,
			},
		},
		services: map[uint][]models.SalonService{
			1: {
				{ID: 1, SalonID: 1, Name: "Haircut", Price: 500, AdminPrice: 50, DurationMin: 30, Active: true},
				{ID: 2, SalonID: 1, Name: "Facial", Price: 1200, AdminPrice: 120, DurationMin: 60, Active: true},
			},
		},
		template: &models.WeeklyAvailability{
			SalonID:     1,
			IsOpen:      true,
			OpeningTime: "09:00",
			ClosingTime: "18:00",
		},
		breaks: []models.BreakSlot{
			{SalonID: 1, StartTime: "13:00", EndTime: "14:00"},
		},
		closed: map[string]bool{},
		nextID: 1,
	}
}

func (r *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &u, nil
}

func (r *fakeRepo) GetAddressForUser(ctx context.Context, addressID, userID uint) (*models.Address, error) {
	a, ok := r.addresses[addressID]
	if !ok || a.UserID != userID {
		return nil, errors.New("record not found")
	}
	return &a, nil
}

func (r *fakeRepo) GetSalonByID(ctx context.Context, id uint) (*models.Salon, error) {
	s, ok := r.salons[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &s, nil
}

func (r *fakeRepo) GetSalonServices(ctx context.Context, salonID uint) ([]models.SalonService, error) {
	return r.services[salonID], nil
}

func (r *fakeRepo) GetDayTemplate(ctx context.Context, salonID uint, weekday int) (*models.WeeklyAvailability, []models.BreakSlot, error) {
	if r.template == nil {
		return nil, nil, errors.New("record not found")
	}
	tpl := *r.template
	return &tpl, r.breaks, nil
}

func (r *fakeRepo) IsClosedDate(ctx context.Context, salonID uint, date time.Time) (bool, error) {
	return r.closed[date.Format("2006-01-02")], nil
}

func (r *fakeRepo) ListActiveBookingsForDay(ctx context.Context, salonID uint, date time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeForDayLocked(salonID, date), nil
}

func (r *fakeRepo) activeForDayLocked(salonID uint, date time.Time) []models.Booking {
	terminated := map[string]bool{}
	for _, s := range domain.TerminatedStatuses() {
		terminated[s] = true
	}

	var out []models.Booking
	for _, b := range r.bookings {
		if b.SalonID != salonID || !b.BookingDate.Equal(date) || terminated[b.Status] {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (r *fakeRepo) GetBookingForUser(ctx context.Context, bookingID, userID uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == bookingID && b.UserID == userID {
			cp := b
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) GetBookingForSalon(ctx context.Context, bookingID, salonID uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == bookingID && b.SalonID == salonID {
			cp := b
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) ListBookingsByUser(ctx context.Context, userID uint, status string, page, pageSize int) ([]models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []models.Booking
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		all = append(all, b)
	}

	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeRepo) ListBookingsForSalonDay(ctx context.Context, salonID uint, date time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.SalonID == salonID && b.BookingDate.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	startMin, err := domain.TimeToMinutes(b.BookingTime)
	if err != nil {
		return err
	}
	endMin := startMin + b.TotalDurationMin

	busy := domain.BusyIntervals(r.activeForDayLocked(b.SalonID, b.BookingDate))
	if domain.HasConflict(startMin, endMin, busy) {
		return httperr.ErrBusiness("slot_already_booked")
	}

	b.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return errors.New("record not found")
}
