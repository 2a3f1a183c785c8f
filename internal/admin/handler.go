package admin

import (
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/diewo77/profiles-app/internal/httpx"
)

type Handler struct {
	DB   *gorm.DB
	regs []Registration
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, regs: Registrations()}
}

// Register mounts /admin (the catalog) and /admin/<entity> (one listing
// each) on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/admin", h.index)
	for _, reg := range h.regs {
		reg := reg
		mux.HandleFunc("/admin/"+reg.Name, func(w http.ResponseWriter, r *http.Request) {
			h.list(w, r, reg)
		})
	}
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpx.MethodNotAllowed(w, "GET")
		return
	}
	type entry struct {
		Name          string   `json:"name"`
		DisplayFields []string `json:"display_fields"`
	}
	out := make([]entry, 0, len(h.regs))
	for _, reg := range h.regs {
		out = append(out, entry{Name: reg.Name, DisplayFields: reg.DisplayFields})
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"entities": out})
}

// list projects only the registered display fields; anything else on the
// row never leaves the database.
func (h *Handler) list(w http.ResponseWriter, r *http.Request, reg Registration) {
	if r.Method != http.MethodGet {
		httpx.MethodNotAllowed(w, "GET")
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			offset = (n - 1) * limit
		}
	}
	var total int64
	if err := h.DB.Model(reg.Model).Count(&total).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list", nil)
		return
	}
	rows := []map[string]any{}
	if err := h.DB.Model(reg.Model).
		Select(reg.DisplayFields).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": rows, "total": total, "limit": limit, "offset": offset})
}
