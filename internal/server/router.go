package server

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/profiles-app/internal/admin"
	"github.com/diewo77/profiles-app/internal/handlers"
	"github.com/diewo77/profiles-app/internal/httpx"
	"github.com/diewo77/profiles-app/internal/services"
	"github.com/diewo77/profiles-app/internal/store"
)

// crud is the method split every entity endpoint shares: GET lists,
// POST creates, with /get /update /delete companions mounted separately.
type crud interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func mount(mux *http.ServeMux, base string, h crud) {
	mux.HandleFunc(base, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.List(w, r)
		case http.MethodPost:
			h.Create(w, r)
		default:
			httpx.MethodNotAllowed(w, "GET,POST")
		}
	})
	mux.HandleFunc(base+"/get", h.Get)
	mux.HandleFunc(base+"/update", h.Update)
	mux.HandleFunc(base+"/delete", h.Delete)
}

// New constructs the root http.Handler with all routes applied.
func New(db *gorm.DB) http.Handler {
	mux := http.NewServeMux()
	stores := store.New(db)

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		// Lightweight DB check (SELECT 1) – detailed errors stay out of the body
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mount(mux, "/profiles", handlers.NewProfileHandler(stores.Profiles))
	mount(mux, "/feed", handlers.NewFeedHandler(stores.FeedItems))
	mount(mux, "/products", handlers.NewProductHandler(stores.Products))
	mount(mux, "/invoices", handlers.NewInvoiceHandler(stores.Invoices))

	invSvc := services.NewInvoiceService()
	mount(mux, "/invoice-items", handlers.NewInvoiceItemHandler(stores.Items, invSvc))

	admin.NewHandler(db).Register(mux)

	return mux
}
