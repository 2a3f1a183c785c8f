package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/profiles-app/internal/models"
)

func setupMux(t *testing.T) (*gorm.DB, *http.ServeMux) {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on"
	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, d.AutoMigrate(&models.UserProfile{}, &models.ProfileFeedItem{}, &models.Product{}, &models.Invoice{}, &models.InvoiceItem{}))
	mux := http.NewServeMux()
	NewHandler(d).Register(mux)
	return d, mux
}

func TestIndexListsRegisteredEntities(t *testing.T) {
	_, mux := setupMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Entities []struct {
			Name          string   `json:"name"`
			DisplayFields []string `json:"display_fields"`
		} `json:"entities"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Entities, 5)

	names := make([]string, 0, len(resp.Entities))
	for _, e := range resp.Entities {
		names = append(names, e.Name)
	}
	require.Contains(t, names, "user-profiles")
	require.Contains(t, names, "invoice-items")
}

func TestListingProjectsOnlyDisplayFields(t *testing.T) {
	d, mux := setupMux(t)

	p := models.UserProfile{Email: "admin@test", Name: "Admin", Password: "hash-never-shown"}
	require.NoError(t, d.Create(&p).Error)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/user-profiles", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]any `json:"items"`
		Total int64            `json:"total"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.EqualValues(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)

	row := resp.Items[0]
	require.Equal(t, "admin@test", row["email"])
	require.Contains(t, row, "id")
	require.Contains(t, row, "name")
	require.NotContains(t, row, "password")
	require.NotContains(t, row, "created_at")
}

func TestUnregisteredEntityIs404(t *testing.T) {
	_, mux := setupMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/audit-logs", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListingPaginates(t *testing.T) {
	d, mux := setupMux(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, d.Create(&models.Product{Name: "P", Price: float64(i)}).Error)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/products?limit=2&page=2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]any `json:"items"`
		Total int64            `json:"total"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.EqualValues(t, 5, resp.Total)
	require.Len(t, resp.Items, 2)
}
