package models

import "time"

type SalonService struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	// Price is what the customer pays; AdminPrice is the platform's cut.
	Price      float64 `json:"price"`
	AdminPrice float64 `json:"admin_price"`

	DurationMin int    `json:"duration_min"`
	Category    string `gorm:"size:50" json:"category"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
