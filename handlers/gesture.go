// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/mviklund/inkyear/auth"
	"github.com/mviklund/inkyear/gesture"
	"github.com/mviklund/inkyear/middleware"
	"github.com/mviklund/inkyear/models"
	"github.com/mviklund/inkyear/schedule"
)

// gestureSession is one user's transient interaction state. Drag and
// picker are plain values owned here; access is serialized by the
// handler mutex.
type gestureSession struct {
	drag       gesture.Drag
	picker     gesture.Picker
	pickerDate string
	lastSeen   time.Time
}

// Gesture state is ephemeral: idle sessions expire and the map is
// capped, evicting the longest-idle entry. An evicted token stays
// valid; its next request just starts from a fresh session.
const (
	maxGestureSessions = 256
	gestureSessionTTL  = time.Hour
)

type GestureHandler struct {
	store *Store

	mu       sync.Mutex
	sessions map[string]*gestureSession
}

func NewGestureHandler(store *Store) *GestureHandler {
	return &GestureHandler{
		store:    store,
		sessions: make(map[string]*gestureSession),
	}
}

// NewToken handles POST /gesture/token
func (h *GestureHandler) NewToken(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.mu.Lock()
	h.prune()
	h.sessions[token] = &gestureSession{lastSeen: time.Now()}
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusCreated, map[string]string{"token": token})
}

// prune drops expired sessions and, if the map is still full, evicts
// the longest-idle ones. Callers hold h.mu.
func (h *GestureHandler) prune() {
	cutoff := time.Now().Add(-gestureSessionTTL)
	for token, gs := range h.sessions {
		if gs.lastSeen.Before(cutoff) {
			delete(h.sessions, token)
		}
	}
	for len(h.sessions) >= maxGestureSessions {
		oldest := ""
		var oldestSeen time.Time
		for token, gs := range h.sessions {
			if oldest == "" || gs.lastSeen.Before(oldestSeen) {
				oldest = token
				oldestSeen = gs.lastSeen
			}
		}
		delete(h.sessions, oldest)
	}
}

// session resolves the caller's gesture session from X-Session-Token,
// creating it on first use of a valid token.
func (h *GestureHandler) session(w http.ResponseWriter, r *http.Request) *gestureSession {
	token := r.Header.Get("X-Session-Token")
	if err := auth.ValidateSessionToken(token); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Missing or invalid X-Session-Token")
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	gs, ok := h.sessions[token]
	if !ok {
		h.prune()
		gs = &gestureSession{}
		h.sessions[token] = gs
	}
	gs.lastSeen = time.Now()
	return gs
}

func dragState(gs *gestureSession, highlight bool) models.DragStateResponse {
	return models.DragStateResponse{
		Dragging:   gs.drag.Active(),
		SourceDate: gs.drag.SourceDate(),
		Target:     gs.drag.Target(),
		Highlight:  highlight,
	}
}

// DragStart handles POST /gesture/drag/start
func (h *GestureHandler) DragStart(w http.ResponseWriter, r *http.Request) {
	gs := h.session(w, r)
	if gs == nil {
		return
	}
	var req models.DragStartRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !schedule.ValidDate(req.SourceDate) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid source_date")
		return
	}

	h.mu.Lock()
	gs.drag.Start(req.SourceDate, req.InkIndex)
	state := dragState(gs, false)
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, state)
}

// DragEnter handles POST /gesture/drag/enter
func (h *GestureHandler) DragEnter(w http.ResponseWriter, r *http.Request) {
	gs := h.session(w, r)
	if gs == nil {
		return
	}
	var req models.DragEnterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	board, _, err := h.store.Board(h.store.Config().Year)
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}

	h.mu.Lock()
	highlight := gs.drag.Enter(req.Date, board.Protected(req.Date))
	state := dragState(gs, highlight)
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, state)
}

// DragDrop handles POST /gesture/drag/drop. A drop that produces an
// event feeds the policy layer: swap when the target held an ink,
// move otherwise. The gesture state is cleared either way.
func (h *GestureHandler) DragDrop(w http.ResponseWriter, r *http.Request) {
	gs := h.session(w, r)
	if gs == nil {
		return
	}
	var req models.DragDropRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	year := h.store.Config().Year
	board, _, err := h.store.Board(year)
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}

	var targetInk *int
	if idx, ok := board.Merged()[req.Date]; ok {
		n := idx
		targetInk = &n
	}

	h.mu.Lock()
	event, ok := gs.drag.Drop(req.Date, targetInk, board.Protected(req.Date))
	h.mu.Unlock()

	if !ok {
		middleware.JSONResponse(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Drop ignored",
		})
		return
	}

	var session schedule.Assignment
	var result schedule.MoveResult
	if event.IsSwap {
		session, result = schedule.Swap(board, event.FromDate, event.ToDate, h.store.Inks())
	} else {
		session, result = schedule.Move(board, schedule.MoveOp{
			FromDate: event.FromDate,
			ToDate:   event.ToDate,
			InkIndex: schedule.NoInk,
		}, h.store.Inks())
	}

	if result.Success {
		if err := h.store.ReplaceSession(year, session); err != nil {
			slog.Error("failed to persist session", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save assignment")
			return
		}
	}

	slog.Info("drag drop", "from", event.FromDate, "to", event.ToDate, "swap", event.IsSwap, "success", result.Success)

	middleware.JSONResponse(w, http.StatusOK, result.ToMap())
}

// DragCancel handles POST /gesture/drag/cancel
func (h *GestureHandler) DragCancel(w http.ResponseWriter, r *http.Request) {
	gs := h.session(w, r)
	if gs == nil {
		return
	}

	h.mu.Lock()
	gs.drag.Cancel()
	state := dragState(gs, false)
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, state)
}

// PickerPopulate handles POST /gesture/picker/populate. The list is
// filled with the indices of unassigned inks matching the query, in
// collection order, and the selection resets to the top.
func (h *GestureHandler) PickerPopulate(w http.ResponseWriter, r *http.Request) {
	gs := h.session(w, r)
	if gs == nil {
		return
	}
	var req models.PickerPopulateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Date != "" && !schedule.ValidDate(req.Date) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid date")
		return
	}

	board, _, err := h.store.Board(h.store.Config().Year)
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}
	assigned := board.AssignedIndices()

	var items []int
	for _, m := range schedule.SearchInks(h.store.Inks(), req.Query, "", "") {
		if !assigned[m.Index] {
			items = append(items, m.Index)
		}
	}

	h.mu.Lock()
	gs.picker.Populate(items)
	gs.pickerDate = req.Date
	state := models.PickerStateResponse{
		Index:  gs.picker.Index(),
		Length: gs.picker.Len(),
		Offset: gs.picker.Offset(),
	}
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, state)
}

// PickerKey handles POST /gesture/picker/key with "up", "down", or
// "confirm". Confirm assigns the selected ink to the date the picker
// was populated for.
func (h *GestureHandler) PickerKey(w http.ResponseWriter, r *http.Request) {
	gs := h.session(w, r)
	if gs == nil {
		return
	}
	var req models.PickerKeyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.mu.Lock()
	var confirmed *gesture.SelectEvent
	switch req.Key {
	case "down":
		gs.picker.Down()
	case "up":
		gs.picker.Up()
	case "confirm":
		if event, ok := gs.picker.Confirm(); ok {
			confirmed = &event
		}
	default:
		h.mu.Unlock()
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown key %q", req.Key))
		return
	}
	state := models.PickerStateResponse{
		Index:  gs.picker.Index(),
		Length: gs.picker.Len(),
		Offset: gs.picker.Offset(),
	}
	date := gs.pickerDate
	h.mu.Unlock()

	if confirmed == nil {
		middleware.JSONResponse(w, http.StatusOK, state)
		return
	}
	if date == "" {
		state.Message = "Picker has no target date"
		middleware.JSONResponse(w, http.StatusOK, state)
		return
	}

	year := h.store.Config().Year
	board, _, err := h.store.Board(year)
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}

	session, result := schedule.Move(board, schedule.MoveOp{
		ToDate:   date,
		InkIndex: confirmed.InkIndex,
	}, h.store.Inks())
	if result.Success {
		if err := h.store.ReplaceSession(year, session); err != nil {
			slog.Error("failed to persist session", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save assignment")
			return
		}
	}

	slog.Info("picker confirm", "date", date, "ink_index", confirmed.InkIndex, "success", result.Success)

	state.Confirmed = &confirmed.InkIndex
	state.Message = result.Message
	middleware.JSONResponse(w, http.StatusOK, state)
}
