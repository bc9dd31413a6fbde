// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/mviklund/inkyear/chat"
	"github.com/mviklund/inkyear/handlers"
	"github.com/mviklund/inkyear/middleware"
)

func NewRouter(store *handlers.Store, chatClient *chat.Client) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	inkHandler := handlers.NewInkHandler(store)
	calendarHandler := handlers.NewCalendarHandler(store)
	assignmentHandler := handlers.NewAssignmentHandler(store)
	sessionHandler := handlers.NewSessionHandler(store)
	gestureHandler := handlers.NewGestureHandler(store)
	chatHandler := handlers.NewChatHandler(store, chatClient)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Ink collection
	mux.HandleFunc("GET /inks", middleware.WithLogging(inkHandler.ListInks))
	mux.HandleFunc("POST /inks/refresh", middleware.WithLogging(inkHandler.RefreshInks))

	// Calendar views and month themes
	mux.HandleFunc("GET /calendar/{year}", middleware.WithLogging(calendarHandler.GetYearSummary))
	mux.HandleFunc("GET /calendar/{year}/{month}", middleware.WithLogging(calendarHandler.GetMonth))
	mux.HandleFunc("POST /themes", middleware.WithLogging(calendarHandler.SetTheme))
	mux.HandleFunc("DELETE /themes/{month}", middleware.WithLogging(calendarHandler.ClearTheme))

	// Assignment mutations
	mux.HandleFunc("POST /assignments", middleware.WithLogging(assignmentHandler.Assign))
	mux.HandleFunc("DELETE /assignments/{date}", middleware.WithLogging(assignmentHandler.Unassign))
	mux.HandleFunc("POST /assignments/move", middleware.WithLogging(assignmentHandler.Move))
	mux.HandleFunc("POST /assignments/swap", middleware.WithLogging(assignmentHandler.Swap))
	mux.HandleFunc("POST /assignments/randomize", middleware.WithLogging(assignmentHandler.Randomize))
	mux.HandleFunc("DELETE /assignments/month/{month}", middleware.WithLogging(assignmentHandler.ClearMonth))

	// Session persistence
	mux.HandleFunc("GET /session", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("POST /session/clear", middleware.WithLogging(sessionHandler.ClearSession))
	mux.HandleFunc("POST /session/commit/{date}", middleware.WithLogging(sessionHandler.Commit))

	// Gesture surface (drag + keyboard picker), keyed by X-Session-Token
	mux.HandleFunc("POST /gesture/token", middleware.WithLogging(gestureHandler.NewToken))
	mux.HandleFunc("POST /gesture/drag/start", middleware.WithLogging(gestureHandler.DragStart))
	mux.HandleFunc("POST /gesture/drag/enter", middleware.WithLogging(gestureHandler.DragEnter))
	mux.HandleFunc("POST /gesture/drag/drop", middleware.WithLogging(gestureHandler.DragDrop))
	mux.HandleFunc("POST /gesture/drag/cancel", middleware.WithLogging(gestureHandler.DragCancel))
	mux.HandleFunc("POST /gesture/picker/populate", middleware.WithLogging(gestureHandler.PickerPopulate))
	mux.HandleFunc("POST /gesture/picker/key", middleware.WithLogging(gestureHandler.PickerKey))

	// Chat assistant
	mux.HandleFunc("POST /chat", middleware.WithLogging(chatHandler.Chat))
	mux.HandleFunc("GET /chat/history", middleware.WithLogging(chatHandler.History))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("inkyear API v1"))
	})

	return mux
}
