package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Externally shareable identity.
	BookingToken string `gorm:"size:36;uniqueIndex;not null" json:"booking_token"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	SalonID uint  `gorm:"index:idx_bookings_salon_date" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	// BookingDate is midnight in the salon's timezone; BookingTime is "HH:MM".
	BookingDate time.Time `gorm:"index:idx_bookings_salon_date" json:"booking_date"`
	BookingTime string    `gorm:"size:5" json:"booking_time"`

	TotalDurationMin int `json:"total_duration_min"`

	// Absolute interval backing the exclusion constraint and conflict queries.
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	BookingType string   `gorm:"size:10;default:'salon'" json:"booking_type"`
	AddressID   *uint    `json:"address_id"`
	Address     *Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"address,omitempty"`

	// Payment breakdown, snapshotted at creation and never recomputed.
	TotalServiceAmount float64 `json:"total_service_amount"`
	SalonEarning       float64 `json:"salon_earning"`
	HomeServiceCharge  float64 `json:"home_service_charge"`

	Services []BookingService `json:"services"`

	Notes string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingService is a per-booking snapshot of a selected catalog service.
type BookingService struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"index" json:"booking_id"`
	ServiceID uint `json:"service_id"`

	Name        string  `gorm:"size:100" json:"name"`
	Price       float64 `json:"price"`
	AdminPrice  float64 `json:"admin_price"`
	DurationMin int     `json:"duration_min"`
}
