// Package store holds one repository per record type. Each repository owns
// the full lifecycle of its table: inserts with auto-assigned ids, reads,
// column-level updates that never touch creation timestamps, and deletes
// whose cascade subtrees are resolved by the database itself.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Error kinds surfaced to callers. Handlers map these onto HTTP statuses;
// nothing in this package retries or recovers.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConstraint = errors.New("constraint violated")
	ErrValidation = errors.New("validation failed")
)

// Stores bundles the per-entity repositories sharing one gorm handle.
type Stores struct {
	Profiles  *UserProfileStore
	FeedItems *FeedItemStore
	Products  *ProductStore
	Invoices  *InvoiceStore
	Items     *InvoiceItemStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		Profiles:  NewUserProfileStore(db),
		FeedItems: NewFeedItemStore(db),
		Products:  NewProductStore(db),
		Invoices:  NewInvoiceStore(db),
		Items:     NewInvoiceItemStore(db),
	}
}

// translate maps gorm/driver errors onto the store error kinds.
// The string check covers SQLite builds where the driver does not
// implement gorm's error translation.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrConstraint
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return ErrConstraint
	}
	return err
}

// clampPage bounds pagination the same way for every List.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// finishWrite converts an update/delete result into the store error kinds:
// zero affected rows on a targeted write means the id was absent.
func finishWrite(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
