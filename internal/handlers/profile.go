package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/profiles-app/internal/httpx"
	"github.com/diewo77/profiles-app/internal/models"
	"github.com/diewo77/profiles-app/internal/store"
)

type ProfileHandler struct {
	Store *store.UserProfileStore
}

func NewProfileHandler(s *store.UserProfileStore) *ProfileHandler { return &ProfileHandler{Store: s} }

// profileView keeps the password hash out of every response.
type profileView struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func toProfileView(p models.UserProfile) profileView {
	return profileView{ID: p.ID, Email: p.Email, Name: p.Name}
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	profiles, err := h.Store.List(limit, offset)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	items := make([]profileView, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, toProfileView(p))
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "limit": limit, "offset": offset})
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_or_invalid_id", nil)
		return
	}
	p, err := h.Store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProfileView(*p))
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	p := models.UserProfile{Email: input.Email, Name: input.Name}
	if input.Password != "" {
		if err := p.SetPassword(input.Password); err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			return
		}
	}
	if err := h.Store.Create(&p); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.Created(w, toProfileView(p))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if err := h.Store.Update(input.ID, input.Email, input.Name); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"updated": input.ID})
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_or_invalid_id", nil)
		return
	}
	if err := h.Store.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
