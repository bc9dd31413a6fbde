// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mviklund/inkyear/middleware"
	"github.com/mviklund/inkyear/models"
)

type InkHandler struct {
	store *Store
}

func NewInkHandler(store *Store) *InkHandler {
	return &InkHandler{store: store}
}

// ListInks handles GET /inks
func (h *InkHandler) ListInks(w http.ResponseWriter, r *http.Request) {
	inks := h.store.Inks()
	middleware.JSONResponse(w, http.StatusOK, models.InkListResponse{
		Total:     len(inks),
		Inks:      inks,
		CacheInfo: h.store.CacheInfo(),
	})
}

// RefreshInks handles POST /inks/refresh
func (h *InkHandler) RefreshInks(w http.ResponseWriter, r *http.Request) {
	fetched, err := h.store.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoCatalog) {
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Catalog API token not configured")
			return
		}
		slog.Error("failed to refresh inks", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch ink collection")
		return
	}

	slog.Info("ink collection refreshed", "count", fetched)

	middleware.JSONResponse(w, http.StatusOK, models.RefreshResponse{
		Fetched:   fetched,
		CacheInfo: h.store.CacheInfo(),
	})
}
