package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/profiles-app/internal/models"
	"github.com/diewo77/profiles-app/internal/validation"
)

type UserProfileStore struct {
	db *gorm.DB
}

func NewUserProfileStore(db *gorm.DB) *UserProfileStore { return &UserProfileStore{db: db} }

func (s *UserProfileStore) Create(p *models.UserProfile) error {
	v := validation.Violations{}
	validation.Required("email", p.Email, v)
	if !v.Empty() {
		return fmt.Errorf("%w: %s", ErrValidation, v)
	}
	return translate(s.db.Create(p).Error)
}

func (s *UserProfileStore) Get(id uint) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *UserProfileStore) List(limit, offset int) ([]models.UserProfile, error) {
	limit, offset = clampPage(limit, offset)
	var out []models.UserProfile
	err := s.db.Order("id").Limit(limit).Offset(offset).Find(&out).Error
	return out, translate(err)
}

// Update rewrites the mutable columns. The password column moves through
// SetPassword on the model, not here.
func (s *UserProfileStore) Update(id uint, email, name string) error {
	v := validation.Violations{}
	validation.Required("email", email, v)
	if !v.Empty() {
		return fmt.Errorf("%w: %s", ErrValidation, v)
	}
	res := s.db.Model(&models.UserProfile{}).Where("id = ?", id).
		Updates(map[string]any{"email": email, "name": name})
	return finishWrite(res)
}

// Delete removes the profile; feed items and invoices referencing it go
// with it via the ON DELETE CASCADE constraints.
func (s *UserProfileStore) Delete(id uint) error {
	return finishWrite(s.db.Delete(&models.UserProfile{}, id))
}
