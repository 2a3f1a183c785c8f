package models

import "time"

// Product domain model
type Product struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:50;not null;index"`
	Price     float64 `gorm:"not null;default:0"`
	Quantity  float64 `gorm:"not null;default:0"` // stock, fractionnaire autorisé (kg, heures)
	CreatedAt time.Time
	UpdatedAt time.Time
}
