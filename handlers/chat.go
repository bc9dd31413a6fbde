// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mviklund/inkyear/chat"
	"github.com/mviklund/inkyear/middleware"
	"github.com/mviklund/inkyear/models"
)

// historyLimit bounds how much transcript is replayed to the model.
const historyLimit = 40

type ChatHandler struct {
	store  *Store
	client *chat.Client // nil when no API key is configured
}

func NewChatHandler(store *Store, client *chat.Client) *ChatHandler {
	return &ChatHandler{store: store, client: client}
}

// Chat handles POST /chat. One turn: snapshot the board and themes,
// run the model with tools against that snapshot, then persist the
// mutated session tier, themes, and both transcript messages.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Chat assistant not configured")
		return
	}

	var req models.ChatRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Message == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	year := h.store.Config().Year
	board, _, err := h.store.Board(year)
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}
	themes, err := h.store.Themes(year)
	if err != nil {
		slog.Error("failed to load themes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load themes")
		return
	}
	history, err := h.store.ChatHistory(historyLimit)
	if err != nil {
		slog.Error("failed to load chat history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load chat history")
		return
	}

	state := &chat.State{
		Inks:   h.store.Inks(),
		Year:   year,
		Board:  board,
		Themes: themes,
	}
	exec := chat.NewExecutor(state)

	reply, calls, err := h.client.Send(r.Context(), history, req.Message, exec)
	if err != nil {
		slog.Error("chat turn failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Chat assistant failed")
		return
	}

	// Tool mutations land in the snapshot; write them back.
	if err := h.store.ReplaceSession(year, state.Board.Session); err != nil {
		slog.Error("failed to persist session after chat", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save assignments")
		return
	}
	if err := h.store.ReplaceThemes(year, state.Themes); err != nil {
		slog.Error("failed to persist themes after chat", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save themes")
		return
	}

	now := time.Now()
	userMsg := models.ChatMessage{
		ID: uuid.NewString(), Role: "user", Content: req.Message, CreatedAt: now,
	}
	assistantMsg := models.ChatMessage{
		ID: uuid.NewString(), Role: "assistant", Content: reply, CreatedAt: now.Add(time.Millisecond),
	}
	if err := h.store.AppendChatMessage(userMsg); err != nil {
		slog.Error("failed to store chat message", "error", err)
	}
	if err := h.store.AppendChatMessage(assistantMsg); err != nil {
		slog.Error("failed to store chat message", "error", err)
	}

	slog.Info("chat turn", "tool_calls", len(calls))

	middleware.JSONResponse(w, http.StatusOK, models.ChatResponse{
		Reply:     reply,
		ToolCalls: calls,
	})
}

// History handles GET /chat/history
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.store.ChatHistory(historyLimit)
	if err != nil {
		slog.Error("failed to load chat history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load chat history")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"messages": history,
	})
}
