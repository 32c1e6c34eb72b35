package models

import "time"

// Address belongs to a customer; home-service bookings must reference one.
type Address struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Label   string `gorm:"size:50" json:"label"`
	Line1   string `gorm:"size:255;not null" json:"line1"`
	Line2   string `gorm:"size:255" json:"line2"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	Pincode string `gorm:"size:10" json:"pincode"`
	Phone   string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
