package models

import "time"

// Feed models
type ProfileFeedItem struct {
	ID         uint   `gorm:"primaryKey"`
	StatusText string `gorm:"size:255;not null"`
	// CreatedOn is assigned on insert and never written again.
	CreatedOn     time.Time   `gorm:"<-:create;autoCreateTime"`
	UserProfileID uint        `gorm:"not null;index"` // clé étrangère vers UserProfile
	UserProfile   UserProfile `gorm:"foreignKey:UserProfileID;constraint:OnDelete:CASCADE"`
}
