package models

import "time"

// Product is a reseller catalog item. Plain CRUD, no scheduling involvement.
type Product struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ResellerID uint `gorm:"index" json:"reseller_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:500" json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `gorm:"size:50" json:"category"`

	ImageURL string `gorm:"size:500" json:"image_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
