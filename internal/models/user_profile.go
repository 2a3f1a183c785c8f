package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserProfile is the account holder feed items and invoices hang off.
// Session handling lives outside this service; only the credential
// columns every other table needs to reference are stored here.
type UserProfile struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"unique;not null;index"`
	Name      string `gorm:"index"`
	Password  string `gorm:"not null"` // bcrypt hash
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetPassword hashes plain with bcrypt and stores the hash.
func (u *UserProfile) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *UserProfile) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
