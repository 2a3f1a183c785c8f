package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/profiles-app/internal/httpx"
	"github.com/diewo77/profiles-app/internal/models"
	"github.com/diewo77/profiles-app/internal/services"
	"github.com/diewo77/profiles-app/internal/store"
)

type InvoiceHandler struct {
	Store *store.InvoiceStore
}

func NewInvoiceHandler(s *store.InvoiceStore) *InvoiceHandler { return &InvoiceHandler{Store: s} }

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	// ?client=N scopes to one profile's invoices, newest first.
	if cid, ok := uintQuery(r, "client"); ok {
		invoices, err := h.Store.ListForClient(cid, limit, offset)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"items": invoices, "limit": limit, "offset": offset})
		return
	}
	invoices, err := h.Store.List(limit, offset)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": invoices, "limit": limit, "offset": offset})
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "missing_or_invalid_id", nil)
		return
	}
	inv, err := h.Store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	inv := models.Invoice{ClientID: input.ClientID}
	if err := h.Store.Create(&inv); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.Created(w, inv)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID       uint `json:"id"`
		ClientID uint `json:"client_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if err := h.Store.Update(input.ID, input.ClientID); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"updated": input.ID})
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// InvoiceItemHandler manages line items. Totals are computed server side;
// a client-supplied total is ignored.
type InvoiceItemHandler struct {
	Store *store.InvoiceItemStore
	Svc   *services.InvoiceService
}

func NewInvoiceItemHandler(s *store.InvoiceItemStore, svc *services.InvoiceService) *InvoiceItemHandler {
	return &InvoiceItemHandler{Store: s, Svc: svc}
}

func (h *InvoiceItemHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	items, err := h.Store.List(limit, offset)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items":        items,
		"total_amount": h.Svc.ItemsTotal(items),
		"limit":        limit,
		"offset":       offset,
	})
}

func (h *InvoiceItemHandler) Get(w http.ResponseWriter, r *http.Request) {
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

func (h *InvoiceItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Quantity  float64 `json:"quantity"`
		Price     float64 `json:"price"`
		ProductID uint    `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	item := models.InvoiceItem{
		Quantity:  input.Quantity,
		Price:     input.Price,
		Total:     h.Svc.LineTotal(input.Quantity, input.Price),
		ProductID: input.ProductID,
	}
	if err := h.Store.Create(&item); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.Created(w, item)
}

func (h *InvoiceItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID       uint    `json:"id"`
		Quantity float64 `json:"quantity"`
		Price    float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	total := h.Svc.LineTotal(input.Quantity, input.Price)
	if err := h.Store.Update(input.ID, input.Quantity, input.Price, total); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"updated": input.ID, "total": total})
}

func (h *InvoiceItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
