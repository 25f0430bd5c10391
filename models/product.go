package models

import "time"

// Product is catalog data owned by the product service; orders only snapshot
// and reference it.
type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Image       string    `json:"image"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
