package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/diewo77/profiles-app/internal/models"
	"github.com/diewo77/profiles-app/internal/store"
)

func seedProfile(t *testing.T, d *gorm.DB, email string) models.UserProfile {
	t.Helper()
	p := models.UserProfile{Email: email, Name: "Test"}
	if err := p.SetPassword("secret123"); err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := d.Create(&p).Error; err != nil {
		t.Fatalf("profile: %v", err)
	}
	return p
}

func TestFeedCreateAndListForProfile(t *testing.T) {
	d := setupTestDB(t)
	h := NewFeedHandler(store.NewFeedItemStore(d))
	p := seedProfile(t, d, "feed@test")
	other := seedProfile(t, d, "other@test")

	for _, txt := range []string{"hello", "world"} {
		body := `{"status_text":"` + txt + `","user_profile_id":` + strconv.Itoa(int(p.ID)) + `}`
		req := httptest.NewRequest(http.MethodPost, "/feed", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.Create(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
		}
	}
	body := `{"status_text":"not mine","user_profile_id":` + strconv.Itoa(int(other.ID)) + `}`
	req := httptest.NewRequest(http.MethodPost, "/feed", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", w.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/feed?profile="+strconv.Itoa(int(p.ID)), nil)
	w2 := httptest.NewRecorder()
	h.List(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w2.Code)
	}
	var resp struct {
		Items []models.ProfileFeedItem `json:"items"`
	}
	if err := json.NewDecoder(w2.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items for profile got %d", len(resp.Items))
	}
	// Newest first
	if resp.Items[0].StatusText != "world" {
		t.Fatalf("expected newest first, got %q", resp.Items[0].StatusText)
	}
}

func TestFeedStatusTooLongRejected(t *testing.T) {
	d := setupTestDB(t)
	h := NewFeedHandler(store.NewFeedItemStore(d))
	p := seedProfile(t, d, "long@test")

	body := `{"status_text":"` + strings.Repeat("a", 256) + `","user_profile_id":` + strconv.Itoa(int(p.ID)) + `}`
	req := httptest.NewRequest(http.MethodPost, "/feed", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestFeedCreateForMissingProfileConflicts(t *testing.T) {
	d := setupTestDB(t)
	h := NewFeedHandler(store.NewFeedItemStore(d))

	req := httptest.NewRequest(http.MethodPost, "/feed", strings.NewReader(`{"status_text":"orphan","user_profile_id":77}`))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d body=%s", w.Code, w.Body.String())
	}
}
