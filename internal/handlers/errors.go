package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diewo77/profiles-app/internal/httpx"
	"github.com/diewo77/profiles-app/internal/store"
)

// writeStoreError maps the store error kinds to HTTP statuses. Anything
// unrecognized is a 500; the store already carries the interesting context
// so the body stays generic.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, store.ErrValidation):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, store.ErrConstraint):
		httpx.JSONError(w, http.StatusConflict, "constraint_violated", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

// idFromRequest reads the id from the query string (GET/DELETE style) or
// falls back to the "id" form value.
func idFromRequest(r *http.Request) (uint, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		raw = r.FormValue("id")
	}
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// uintQuery parses one named uint query parameter.
func uintQuery(r *http.Request, key string) (uint, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// pageParams reads limit/page query params with the same bounds the
// stores apply.
func pageParams(r *http.Request) (limit, offset int) {
	limit = 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			offset = (n - 1) * limit
		}
	}
	return limit, offset
}
