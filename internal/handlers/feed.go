package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/profiles-app/internal/httpx"
	"github.com/diewo77/profiles-app/internal/models"
	"github.com/diewo77/profiles-app/internal/store"
)

type FeedHandler struct {
	Store *store.FeedItemStore
}

func NewFeedHandler(s *store.FeedItemStore) *FeedHandler { return &FeedHandler{Store: s} }

func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	// ?profile=N scopes the feed to one profile, newest first.
	if pid, ok := uintQuery(r, "profile"); ok {
		items, err := h.Store.ListForProfile(pid, limit, offset)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "limit": limit, "offset": offset})
		return
	}
	items, err := h.Store.List(limit, offset)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "limit": limit, "offset": offset})
}

func (h *FeedHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_or_invalid_id", nil)
		return
	}
	item, err := h.Store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *FeedHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		StatusText    string `json:"status_text"`
		UserProfileID uint   `json:"user_profile_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	item := models.ProfileFeedItem{StatusText: input.StatusText, UserProfileID: input.UserProfileID}
	if err := h.Store.Create(&item); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.Created(w, item)
}

func (h *FeedHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID         uint   `json:"id"`
		StatusText string `json:"status_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if err := h.Store.Update(input.ID, input.StatusText); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"updated": input.ID})
}

func (h *FeedHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
