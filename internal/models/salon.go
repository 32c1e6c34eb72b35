package models

import "time"

type Salon struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OwnerID uint   `gorm:"index" json:"owner_id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`

	Timezone string `gorm:"size:64" json:"timezone"`

	// Cadence used to step candidate slot starts.
	SlotDurationMin int `gorm:"default:30" json:"slot_duration_min"`

	HomeServiceAvailable bool    `gorm:"default:false" json:"home_service_available"`
	HomeServiceCharge    float64 `json:"home_service_charge"`

	ImageURL string `gorm:"size:500" json:"image_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
