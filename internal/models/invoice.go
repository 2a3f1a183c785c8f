package models

import "time"

// Invoicing models
type Invoice struct {
	ID uint `gorm:"primaryKey"`
	// Date is assigned on insert and never written again.
	Date     time.Time   `gorm:"<-:create;autoCreateTime"`
	ClientID uint        `gorm:"not null;index"` // clé étrangère vers UserProfile
	Client   UserProfile `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

type InvoiceItem struct {
	ID        uint    `gorm:"primaryKey"`
	Quantity  float64 `gorm:"not null;default:0"`
	Price     float64 `gorm:"not null;default:0"`
	Total     float64 `gorm:"not null;default:0"` // quantity * price, figé à l'écriture
	ProductID uint    `gorm:"not null;index"`     // clé étrangère vers Product
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
