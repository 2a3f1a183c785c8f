package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/profiles-app/internal/models"
	"github.com/diewo77/profiles-app/internal/validation"
)

// ProductNameMaxLen bounds Product.Name, matching the varchar(50) column.
const ProductNameMaxLen = 50

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore { return &ProductStore{db: db} }

func validateProduct(name string, price, quantity float64) error {
	v := validation.Violations{}
	validation.Required("name", name, v)
	validation.MaxLen("name", name, ProductNameMaxLen, v)
	validation.NonNegativeFloat("price", price, v)
	validation.NonNegativeFloat("quantity", quantity, v)
	if !v.Empty() {
		return fmt.Errorf("%w: %s", ErrValidation, v)
	}
	return nil
}

func (s *ProductStore) Create(p *models.Product) error {
	if err := validateProduct(p.Name, p.Price, p.Quantity); err != nil {
		return err
	}
	return translate(s.db.Create(p).Error)
}

func (s *ProductStore) Get(id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *ProductStore) List(limit, offset int) ([]models.Product, error) {
	limit, offset = clampPage(limit, offset)
	var out []models.Product
	err := s.db.Order("id").Limit(limit).Offset(offset).Find(&out).Error
	return out, translate(err)
}

func (s *ProductStore) Update(id uint, name string, price, quantity float64) error {
	if err := validateProduct(name, price, quantity); err != nil {
		return err
	}
	res := s.db.Model(&models.Product{}).Where("id = ?", id).
		Updates(map[string]any{"name": name, "price": price, "quantity": quantity})
	return finishWrite(res)
}

// Delete removes the product; its invoice items go with it via cascade.
func (s *ProductStore) Delete(id uint) error {
	return finishWrite(s.db.Delete(&models.Product{}, id))
}
