package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/profiles-app/internal/httpx"
	"github.com/diewo77/profiles-app/internal/models"
	"github.com/diewo77/profiles-app/internal/store"
)

type ProductHandler struct {
	Store *store.ProductStore
}

func NewProductHandler(s *store.ProductStore) *ProductHandler { return &ProductHandler{Store: s} }

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	products, err := h.Store.List(limit, offset)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": products, "limit": limit, "offset": offset})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Quantity float64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	p := models.Product{Name: input.Name, Price: input.Price, Quantity: input.Quantity}
	if err := h.Store.Create(&p); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.Created(w, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID       uint    `json:"id"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Quantity float64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if err := h.Store.Update(input.ID, input.Name, input.Price, input.Quantity); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"updated": input.ID})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
