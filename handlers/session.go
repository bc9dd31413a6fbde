// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mviklund/inkyear/middleware"
	"github.com/mviklund/inkyear/models"
	"github.com/mviklund/inkyear/schedule"
	"github.com/mviklund/inkyear/swatch"
)

type SessionHandler struct {
	store *Store
}

func NewSessionHandler(store *Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	year := h.store.Config().Year

	session, err := h.store.SessionAssignments(year)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return
	}
	themes, err := h.store.Themes(year)
	if err != nil {
		slog.Error("failed to load themes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load themes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"year":        year,
		"assignments": session,
		"themes":      themes,
	})
}

// ClearSession handles POST /session/clear
func (h *SessionHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	year := h.store.Config().Year

	if err := h.store.ReplaceSession(year, schedule.Assignment{}); err != nil {
		slog.Error("failed to clear session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear session")
		return
	}

	slog.Info("session cleared", "year", year)

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"year":    year,
	})
}

// Commit handles POST /session/commit/{date}. The session assignment
// for the date is written into the ink's private comment on the
// catalog, which makes it a pin: from then on the date is protected.
func (h *SessionHandler) Commit(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if !schedule.ValidDate(date) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid date")
		return
	}
	year := h.store.Config().Year

	session, err := h.store.SessionAssignments(year)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return
	}
	idx, ok := session[date]
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No session assignment for that date")
		return
	}
	inks := h.store.Inks()
	if idx < 0 || idx >= len(inks) {
		middleware.ErrorResponse(w, http.StatusConflict, "Session assignment references an unknown ink; refresh the collection")
		return
	}
	ink := inks[idx]

	// The month's session theme rides along into the pin.
	var theme, description string
	themes, err := h.store.Themes(year)
	if err != nil {
		slog.Error("failed to load themes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load themes")
		return
	}
	if t, ok := themes[date[:7]]; ok {
		theme, description = t.Theme, t.Description
	}

	if conflict := swatch.CheckOverwrite(ink.PrivateComment, year); conflict != nil {
		slog.Warn("overwriting existing pin", "ink_id", ink.ID, "old_date", conflict.ExistingDate, "new_date", date)
	}

	comment, err := swatch.BuildComment(ink.PrivateComment, year, date, theme, description)
	if err != nil {
		slog.Error("failed to build comment", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build pin data")
		return
	}

	if err := h.store.CommitComment(r.Context(), idx, comment); err != nil {
		if errors.Is(err, ErrNoCatalog) {
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Catalog API token not configured")
			return
		}
		slog.Error("failed to commit pin", "error", err, "ink_id", ink.ID)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to update catalog")
		return
	}

	// Promoted to the protected tier; drop the session entry.
	delete(session, date)
	if err := h.store.ReplaceSession(year, session); err != nil {
		slog.Error("failed to persist session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	slog.Info("assignment committed", "date", date, "ink_id", ink.ID)

	middleware.JSONResponse(w, http.StatusOK, models.CommitResponse{
		Date:    date,
		InkID:   ink.ID,
		Message: fmt.Sprintf("Pinned '%s %s' to %s", ink.BrandName, ink.Name, date),
	})
}
