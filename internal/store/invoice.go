package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/profiles-app/internal/models"
	"github.com/diewo77/profiles-app/internal/validation"
)

type InvoiceStore struct {
	db *gorm.DB
}

func NewInvoiceStore(db *gorm.DB) *InvoiceStore { return &InvoiceStore{db: db} }

func (s *InvoiceStore) Create(inv *models.Invoice) error {
	return translate(s.db.Create(inv).Error)
}

func (s *InvoiceStore) Get(id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.db.First(&inv, id).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (s *InvoiceStore) List(limit, offset int) ([]models.Invoice, error) {
	limit, offset = clampPage(limit, offset)
	var out []models.Invoice
	err := s.db.Order("id").Limit(limit).Offset(offset).Find(&out).Error
	return out, translate(err)
}

// ListForClient returns one profile's invoices, newest first.
func (s *InvoiceStore) ListForClient(clientID uint, limit, offset int) ([]models.Invoice, error) {
	limit, offset = clampPage(limit, offset)
	var out []models.Invoice
	err := s.db.Where("client_id = ?", clientID).
		Order("id desc").Limit(limit).Offset(offset).Find(&out).Error
	return out, translate(err)
}

// Update reassigns the client; date stays as inserted. The new client must
// exist, enforced by the foreign key.
func (s *InvoiceStore) Update(id, clientID uint) error {
	res := s.db.Model(&models.Invoice{}).Where("id = ?", id).
		Update("client_id", clientID)
	return finishWrite(res)
}

func (s *InvoiceStore) Delete(id uint) error {
	return finishWrite(s.db.Delete(&models.Invoice{}, id))
}

type InvoiceItemStore struct {
	db *gorm.DB
}

func NewInvoiceItemStore(db *gorm.DB) *InvoiceItemStore { return &InvoiceItemStore{db: db} }

func validateItem(quantity, price, total float64) error {
	v := validation.Violations{}
	validation.NonNegativeFloat("quantity", quantity, v)
	validation.NonNegativeFloat("price", price, v)
	validation.NonNegativeFloat("total", total, v)
	if !v.Empty() {
		return fmt.Errorf("%w: %s", ErrValidation, v)
	}
	return nil
}

func (s *InvoiceItemStore) Create(item *models.InvoiceItem) error {
	if err := validateItem(item.Quantity, item.Price, item.Total); err != nil {
		return err
	}
	return translate(s.db.Create(item).Error)
}

func (s *InvoiceItemStore) Get(id uint) (*models.InvoiceItem, error) {
	var item models.InvoiceItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *InvoiceItemStore) List(limit, offset int) ([]models.InvoiceItem, error) {
	limit, offset = clampPage(limit, offset)
	var out []models.InvoiceItem
	err := s.db.Order("id").Limit(limit).Offset(offset).Find(&out).Error
	return out, translate(err)
}

func (s *InvoiceItemStore) Update(id uint, quantity, price, total float64) error {
	if err := validateItem(quantity, price, total); err != nil {
		return err
	}
	res := s.db.Model(&models.InvoiceItem{}).Where("id = ?", id).
		Updates(map[string]any{"quantity": quantity, "price": price, "total": total})
	return finishWrite(res)
}

func (s *InvoiceItemStore) Delete(id uint) error {
	return finishWrite(s.db.Delete(&models.InvoiceItem{}, id))
}
