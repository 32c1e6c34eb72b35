package models

import "time"

// WeeklyAvailability holds one weekday row of a salon's template.
// Times are wall-clock "HH:MM" strings in the salon's timezone.
type WeeklyAvailability struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_weekly_salon_weekday" json:"salon_id"`

	Weekday int `gorm:"index:idx_weekly_salon_weekday" json:"weekday"`

	IsOpen      bool   `json:"is_open"`
	OpeningTime string `gorm:"size:5" json:"opening_time"`
	ClosingTime string `gorm:"size:5" json:"closing_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BreakSlot is a non-bookable window inside a weekday's open hours.
type BreakSlot struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_breaks_salon_weekday" json:"salon_id"`
	Weekday int  `gorm:"index:idx_breaks_salon_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClosedDate blacks out a whole calendar date regardless of the weekly template.
type ClosedDate struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Date   time.Time `json:"date"`
	Reason string    `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
