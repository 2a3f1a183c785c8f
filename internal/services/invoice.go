package services

import (
	"github.com/shopspring/decimal"

	"github.com/diewo77/profiles-app/internal/models"
)

// InvoiceService computes derived amounts for invoice lines.
// DB access stays in the handlers; this only does arithmetic.
type InvoiceService struct{}

func NewInvoiceService() *InvoiceService { return &InvoiceService{} }

// LineTotal computes quantity * price in decimal space so 3 * 19.99 comes
// out as 59.97, not 59.970000000000006, then rounds to 2 places for the
// float total column.
func (s *InvoiceService) LineTotal(quantity, price float64) float64 {
	q := decimal.NewFromFloat(quantity)
	p := decimal.NewFromFloat(price)
	f, _ := q.Mul(p).Round(2).Float64()
	return f
}

// ItemsTotal sums the stored totals of a set of items, again in decimal
// space to keep the sum exact.
func (s *InvoiceService) ItemsTotal(items []models.InvoiceItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Total))
	}
	f, _ := sum.Round(2).Float64()
	return f
}
