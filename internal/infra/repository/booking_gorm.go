package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MikyMack/Blushley-full-sub000/internal/cache"
	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

type BookingGormRepository struct {
	db        *gorm.DB
	schedules *cache.ScheduleCache
}

func NewBookingGormRepository(db *gorm.DB, schedules *cache.ScheduleCache) *BookingGormRepository {
	return &BookingGormRepository{db: db, schedules: schedules}
}

// --------------------------------------------------
// Users / addresses
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetAddressForUser(
	ctx context.Context,
	addressID uint,
	userID uint,
) (*models.Address, error) {

	var addr models.Address
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		First(&addr).Error; err != nil {
		return nil, err
	}
	return &addr, nil
}

// --------------------------------------------------
// Salon configuration
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) GetSalonServices(
	ctx context.Context,
	salonID uint,
) ([]models.SalonService, error) {

	var services []models.SalonService
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) GetDayTemplate(
	ctx context.Context,
	salonID uint,
	weekday int,
) (*models.WeeklyAvailability, []models.BreakSlot, error) {

	if day, ok := r.schedules.GetDay(ctx, salonID, weekday); ok {
		return &day.Template, day.Breaks, nil
	}

	var tpl models.WeeklyAvailability
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND weekday = ?", salonID, weekday).
		First(&tpl).Error; err != nil {
		return nil, nil, err
	}

	var breaks []models.BreakSlot
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND weekday = ?", salonID, weekday).
		Order("start_time ASC").
		Find(&breaks).Error; err != nil {
		return nil, nil, err
	}

	r.schedules.SetDay(ctx, salonID, weekday, &cache.DaySchedule{
		Template: tpl,
		Breaks:   breaks,
	})

	return &tpl, breaks, nil
}

func (r *BookingGormRepository) IsClosedDate(
	ctx context.Context,
	salonID uint,
	date time.Time,
) (bool, error) {

	dayStart, dayEnd := dayBounds(date)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClosedDate{}).
		Where("salon_id = ? AND date >= ? AND date < ?", salonID, dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Bookings (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookingsForDay(
	ctx context.Context,
	salonID uint,
	date time.Time,
) ([]models.Booking, error) {

	dayStart, dayEnd := dayBounds(date)

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "booking_time", "total_duration_min", "start_at", "end_at", "status").
		Where(
			"salon_id = ? AND booking_date >= ? AND booking_date < ? AND status NOT IN ?",
			salonID, dayStart, dayEnd, domain.TerminatedStatuses(),
		).
		Order("start_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForSalon(
	ctx context.Context,
	bookingID uint,
	salonID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ? AND salon_id = ?", bookingID, salonID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsByUser(
	ctx context.Context,
	userID uint,
	status string,
	page int,
	pageSize int,
) ([]models.Booking, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("user_id = ?", userID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	if err := q.
		Preload("Salon").
		Preload("Services").
		Order("start_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *BookingGormRepository) ListBookingsForSalonDay(
	ctx context.Context,
	salonID uint,
	date time.Time,
) ([]models.Booking, error) {

	dayStart, dayEnd := dayBounds(date)

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Services").
		Where(
			"salon_id = ? AND booking_date >= ? AND booking_date < ?",
			salonID, dayStart, dayEnd,
		).
		Order("start_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Bookings (write)
// --------------------------------------------------

// CreateBooking is the admission critical section. The conflict re-check
// and the insert run in one transaction with the day's active rows
// locked FOR UPDATE; the partial exclusion constraint on
// (salon_id, tstzrange(start_at, end_at)) catches anything that still
// slips through, and both failure shapes surface as slot_already_booked.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.createBooking(ctx, b)
	if err != nil && pgconn.SafeToRetry(err) {
		// One bounded retry for transient connection failures.
		err = r.createBooking(ctx, b)
	}

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness("slot_already_booked")
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) createBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where(
				"salon_id = ? AND status NOT IN ? AND start_at < ? AND end_at > ?",
				b.SalonID, domain.TerminatedStatuses(), b.EndAt, b.StartAt,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_already_booked")
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------

// dayBounds widens a calendar date into [midnight, midnight+24h) in the
// date's own location, so date-column comparisons ignore time-of-day.
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
