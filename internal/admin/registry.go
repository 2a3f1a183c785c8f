// Package admin exposes a read-only listing surface over the record types.
// What it shows is driven by an explicit registration list rather than any
// process-wide registry: an entity absent from Registrations simply does
// not exist as far as the admin surface is concerned.
package admin

import "github.com/diewo77/profiles-app/internal/models"

// Registration pairs a record type with the columns its listing projects.
type Registration struct {
	Name          string   // URL segment under /admin/
	Model         any      // pointer to the gorm model
	DisplayFields []string // column names included in the listing
}

// Registrations is the static catalog consumed by the listing handler.
// Password never appears in a display-field list.
func Registrations() []Registration {
	return []Registration{
		{Name: "user-profiles", Model: &models.UserProfile{}, DisplayFields: []string{"id", "email", "name"}},
		{Name: "feed-items", Model: &models.ProfileFeedItem{}, DisplayFields: []string{"id", "status_text", "created_on", "user_profile_id"}},
		{Name: "products", Model: &models.Product{}, DisplayFields: []string{"id", "name", "price", "quantity"}},
		{Name: "invoices", Model: &models.Invoice{}, DisplayFields: []string{"id", "date", "client_id"}},
		{Name: "invoice-items", Model: &models.InvoiceItem{}, DisplayFields: []string{"id", "quantity", "price", "total", "product_id"}},
	}
}
