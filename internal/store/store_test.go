package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/profiles-app/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test; _foreign_keys=on because SQLite
	// will not cascade without the pragma.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on"
	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	err = d.AutoMigrate(
		&models.UserProfile{},
		&models.ProfileFeedItem{},
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
	)
	require.NoError(t, err)
	return d
}

func createProfile(t *testing.T, s *Stores, email string) *models.UserProfile {
	t.Helper()
	p := &models.UserProfile{Email: email, Name: "Test"}
	require.NoError(t, p.SetPassword("secret123"))
	require.NoError(t, s.Profiles.Create(p))
	return p
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	s := New(setupTestDB(t))

	p1 := models.Product{Name: "First", Price: 10}
	p2 := models.Product{Name: "Second", Price: 20}
	require.NoError(t, s.Products.Create(&p1))
	require.NoError(t, s.Products.Create(&p2))
	require.NotZero(t, p1.ID)
	require.Greater(t, p2.ID, p1.ID)

	inv1 := models.Invoice{ClientID: createProfile(t, s, "a@test").ID}
	inv2 := models.Invoice{ClientID: inv1.ClientID}
	require.NoError(t, s.Invoices.Create(&inv1))
	require.NoError(t, s.Invoices.Create(&inv2))
	require.Greater(t, inv2.ID, inv1.ID)
}

func TestFeedCascadeOnProfileDelete(t *testing.T) {
	d := setupTestDB(t)
	s := New(d)
	p := createProfile(t, s, "feed@test")

	for _, txt := range []string{"first post", "second post"} {
		item := models.ProfileFeedItem{StatusText: txt, UserProfileID: p.ID}
		require.NoError(t, s.FeedItems.Create(&item))
	}
	var before int64
	d.Model(&models.ProfileFeedItem{}).Count(&before)
	require.EqualValues(t, 2, before)

	require.NoError(t, s.Profiles.Delete(p.ID))

	var after int64
	d.Model(&models.ProfileFeedItem{}).Count(&after)
	require.Zero(t, after, "feed items must follow their profile")
}

func TestInvoiceCascadeOnClientDelete(t *testing.T) {
	d := setupTestDB(t)
	s := New(d)
	client := createProfile(t, s, "client@test")
	other := createProfile(t, s, "other@test")

	require.NoError(t, s.Invoices.Create(&models.Invoice{ClientID: client.ID}))
	require.NoError(t, s.Invoices.Create(&models.Invoice{ClientID: other.ID}))

	require.NoError(t, s.Profiles.Delete(client.ID))

	var remaining []models.Invoice
	require.NoError(t, d.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	require.Equal(t, other.ID, remaining[0].ClientID)
}

func TestInvoiceItemCascadeOnProductDelete(t *testing.T) {
	d := setupTestDB(t)
	s := New(d)

	prod := models.Product{Name: "Widget", Price: 5}
	require.NoError(t, s.Products.Create(&prod))
	keep := models.Product{Name: "Other", Price: 1}
	require.NoError(t, s.Products.Create(&keep))

	require.NoError(t, s.Items.Create(&models.InvoiceItem{Quantity: 2, Price: 5, Total: 10, ProductID: prod.ID}))
	require.NoError(t, s.Items.Create(&models.InvoiceItem{Quantity: 1, Price: 1, Total: 1, ProductID: keep.ID}))

	require.NoError(t, s.Products.Delete(prod.ID))

	var remaining []models.InvoiceItem
	require.NoError(t, d.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	require.Equal(t, keep.ID, remaining[0].ProductID)
}

func TestStatusTextTooLong(t *testing.T) {
	s := New(setupTestDB(t))
	p := createProfile(t, s, "long@test")

	item := models.ProfileFeedItem{
		StatusText:    strings.Repeat("a", StatusTextMaxLen+1),
		UserProfileID: p.ID,
	}
	err := s.FeedItems.Create(&item)
	require.ErrorIs(t, err, ErrValidation)

	// Exactly at the limit passes.
	ok := models.ProfileFeedItem{
		StatusText:    strings.Repeat("a", StatusTextMaxLen),
		UserProfileID: p.ID,
	}
	require.NoError(t, s.FeedItems.Create(&ok))
}

func TestProductNameTooLong(t *testing.T) {
	s := New(setupTestDB(t))
	p := models.Product{Name: strings.Repeat("x", ProductNameMaxLen+1)}
	require.ErrorIs(t, s.Products.Create(&p), ErrValidation)
}

func TestDanglingForeignKeyRejected(t *testing.T) {
	s := New(setupTestDB(t))

	item := models.ProfileFeedItem{StatusText: "orphan", UserProfileID: 9999}
	require.ErrorIs(t, s.FeedItems.Create(&item), ErrConstraint)

	inv := models.Invoice{ClientID: 9999}
	require.ErrorIs(t, s.Invoices.Create(&inv), ErrConstraint)

	line := models.InvoiceItem{Quantity: 1, Price: 1, Total: 1, ProductID: 9999}
	require.ErrorIs(t, s.Items.Create(&line), ErrConstraint)
}

func TestCreatedOnImmutable(t *testing.T) {
	s := New(setupTestDB(t))
	p := createProfile(t, s, "immutable@test")

	created := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	item := models.ProfileFeedItem{StatusText: "original", UserProfileID: p.ID, CreatedOn: created}
	require.NoError(t, s.FeedItems.Create(&item))

	require.NoError(t, s.FeedItems.Update(item.ID, "edited"))

	got, err := s.FeedItems.Get(item.ID)
	require.NoError(t, err)
	require.Equal(t, "edited", got.StatusText)
	require.True(t, got.CreatedOn.Equal(created), "created_on changed: %v", got.CreatedOn)
}

func TestInvoiceDateImmutable(t *testing.T) {
	s := New(setupTestDB(t))
	client := createProfile(t, s, "inv-date@test")
	other := createProfile(t, s, "inv-date2@test")

	date := time.Date(2021, 3, 15, 9, 30, 0, 0, time.UTC)
	inv := models.Invoice{ClientID: client.ID, Date: date}
	require.NoError(t, s.Invoices.Create(&inv))

	require.NoError(t, s.Invoices.Update(inv.ID, other.ID))

	got, err := s.Invoices.Get(inv.ID)
	require.NoError(t, err)
	require.Equal(t, other.ID, got.ClientID)
	require.True(t, got.Date.Equal(date), "date changed: %v", got.Date)
}

func TestMissingIDsReturnNotFound(t *testing.T) {
	s := New(setupTestDB(t))

	_, err := s.Products.Get(42)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Products.Update(42, "Name", 1, 1), ErrNotFound)
	require.ErrorIs(t, s.Products.Delete(42), ErrNotFound)
	require.ErrorIs(t, s.FeedItems.Update(42, "text"), ErrNotFound)
	require.ErrorIs(t, s.Invoices.Delete(42), ErrNotFound)
}

func TestListPaginationBounds(t *testing.T) {
	s := New(setupTestDB(t))
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Products.Create(&models.Product{Name: "P" + strings.Repeat("x", i)}))
	}
	// Out-of-range values fall back to defaults instead of erroring.
	all, err := s.Products.List(-5, -1)
	require.NoError(t, err)
	require.Len(t, all, 3)

	page, err := s.Products.List(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
}
