package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/profiles-app/internal/models"
	"github.com/diewo77/profiles-app/internal/validation"
)

// StatusTextMaxLen bounds ProfileFeedItem.StatusText; the column is
// declared varchar(255) but SQLite does not enforce it, so the store does.
const StatusTextMaxLen = 255

type FeedItemStore struct {
	db *gorm.DB
}

func NewFeedItemStore(db *gorm.DB) *FeedItemStore { return &FeedItemStore{db: db} }

func (s *FeedItemStore) Create(item *models.ProfileFeedItem) error {
	v := validation.Violations{}
	validation.Required("status_text", item.StatusText, v)
	validation.MaxLen("status_text", item.StatusText, StatusTextMaxLen, v)
	if !v.Empty() {
		return fmt.Errorf("%w: %s", ErrValidation, v)
	}
	return translate(s.db.Create(item).Error)
}

func (s *FeedItemStore) Get(id uint) (*models.ProfileFeedItem, error) {
	var item models.ProfileFeedItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *FeedItemStore) List(limit, offset int) ([]models.ProfileFeedItem, error) {
	limit, offset = clampPage(limit, offset)
	var out []models.ProfileFeedItem
	err := s.db.Order("id").Limit(limit).Offset(offset).Find(&out).Error
	return out, translate(err)
}

// ListForProfile returns the feed of one profile, newest first.
func (s *FeedItemStore) ListForProfile(profileID uint, limit, offset int) ([]models.ProfileFeedItem, error) {
	limit, offset = clampPage(limit, offset)
	var out []models.ProfileFeedItem
	err := s.db.Where("user_profile_id = ?", profileID).
		Order("id desc").Limit(limit).Offset(offset).Find(&out).Error
	return out, translate(err)
}

// Update rewrites the status text only; created_on stays as inserted.
func (s *FeedItemStore) Update(id uint, statusText string) error {
	v := validation.Violations{}
	validation.Required("status_text", statusText, v)
	validation.MaxLen("status_text", statusText, StatusTextMaxLen, v)
	if !v.Empty() {
		return fmt.Errorf("%w: %s", ErrValidation, v)
	}
	res := s.db.Model(&models.ProfileFeedItem{}).Where("id = ?", id).
		Update("status_text", statusText)
	return finishWrite(res)
}

func (s *FeedItemStore) Delete(id uint) error {
	return finishWrite(s.db.Delete(&models.ProfileFeedItem{}, id))
}
