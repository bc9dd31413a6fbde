// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/mviklund/inkyear/middleware"
	"github.com/mviklund/inkyear/models"
	"github.com/mviklund/inkyear/schedule"
)

type AssignmentHandler struct {
	store *Store
}

func NewAssignmentHandler(store *Store) *AssignmentHandler {
	return &AssignmentHandler{store: store}
}

// year for assignment mutations comes from the configured planning
// year; dates in requests must belong to it.
func (h *AssignmentHandler) year() int {
	return h.store.Config().Year
}

// apply persists a successful mutation and writes the MoveResult out.
// Rejections are 200s with success=false: the frontend renders the
// message inline, same as the chat tools do.
func (h *AssignmentHandler) apply(w http.ResponseWriter, session schedule.Assignment, result schedule.MoveResult) {
	if result.Success {
		if err := h.store.ReplaceSession(h.year(), session); err != nil {
			slog.Error("failed to persist session", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save assignment")
			return
		}
	}
	middleware.JSONResponse(w, http.StatusOK, result.ToMap())
}

// Assign handles POST /assignments
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req models.AssignRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	board, _, err := h.store.Board(h.year())
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}

	session, result := schedule.Move(board, schedule.MoveOp{
		ToDate:   req.Date,
		InkIndex: req.InkIndex,
	}, h.store.Inks())

	slog.Info("assign", "date", req.Date, "ink_index", req.InkIndex, "success", result.Success)
	h.apply(w, session, result)
}

// Unassign handles DELETE /assignments/{date}
func (h *AssignmentHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")

	board, _, err := h.store.Board(h.year())
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}

	session, result := schedule.Move(board, schedule.MoveOp{
		FromDate: date,
		InkIndex: schedule.NoInk,
	}, h.store.Inks())

	slog.Info("unassign", "date", date, "success", result.Success)
	h.apply(w, session, result)
}

// Move handles POST /assignments/move
func (h *AssignmentHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req models.MoveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	board, _, err := h.store.Board(h.year())
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}

	session, result := schedule.Move(board, schedule.MoveOp{
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		InkIndex: schedule.NoInk,
	}, h.store.Inks())

	slog.Info("move", "from", req.FromDate, "to", req.ToDate, "success", result.Success)
	h.apply(w, session, result)
}

// Swap handles POST /assignments/swap
func (h *AssignmentHandler) Swap(w http.ResponseWriter, r *http.Request) {
	var req models.SwapRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	board, _, err := h.store.Board(h.year())
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}

	session, result := schedule.Swap(board, req.DateA, req.DateB, h.store.Inks())

	slog.Info("swap", "date_a", req.DateA, "date_b", req.DateB, "success", result.Success)
	h.apply(w, session, result)
}

// Randomize handles POST /assignments/randomize
func (h *AssignmentHandler) Randomize(w http.ResponseWriter, r *http.Request) {
	var req models.RandomizeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	year := req.Year
	if year == 0 {
		year = h.year()
	}

	seed := h.store.Config().FillSeed
	if req.Seed != nil {
		seed = *req.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>32)))

	inks := h.store.Inks()
	board, warnings, err := schedule.Fill(inks, year, rng)
	if err != nil {
		var capErr *schedule.CapacityError
		if errors.As(err, &capErr) {
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, capErr.Error())
			return
		}
		slog.Error("fill failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to randomize assignments")
		return
	}
	for _, warn := range warnings {
		slog.Warn("skipped malformed pin", "key", warn.Key, "reason", warn.Reason)
	}

	if err := h.store.ReplaceSession(year, board.Session); err != nil {
		slog.Error("failed to persist session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save assignments")
		return
	}

	slog.Info("randomized year", "year", year, "placed", len(board.Session), "pinned", len(board.API), "seed", seed)

	middleware.JSONResponse(w, http.StatusOK, models.RandomizeResponse{
		Year:    year,
		Placed:  len(board.Session),
		Pinned:  len(board.API),
		Seed:    seed,
		Message: fmt.Sprintf("Placed %d inks across %d", len(board.Session), year),
	})
}

// ClearMonth handles DELETE /assignments/month/{month}
func (h *AssignmentHandler) ClearMonth(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid month")
		return
	}
	year := h.year()

	session, err := h.store.SessionAssignments(year)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}

	prefix := fmt.Sprintf("%d-%02d-", year, month)
	removed := 0
	next := schedule.Assignment{}
	for date, idx := range session {
		if len(date) >= len(prefix) && date[:len(prefix)] == prefix {
			removed++
			continue
		}
		next[date] = idx
	}

	if err := h.store.ReplaceSession(year, next); err != nil {
		slog.Error("failed to persist session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save assignments")
		return
	}

	slog.Info("cleared month", "year", year, "month", month, "removed", removed)

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"month":   month,
		"year":    year,
		"removed": removed,
	})
}
