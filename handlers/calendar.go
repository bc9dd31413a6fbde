// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mviklund/inkyear/middleware"
	"github.com/mviklund/inkyear/models"
	"github.com/mviklund/inkyear/schedule"
	"github.com/mviklund/inkyear/swatch"
)

type CalendarHandler struct {
	store *Store
}

func NewCalendarHandler(store *Store) *CalendarHandler {
	return &CalendarHandler{store: store}
}

func parseYearMonth(r *http.Request) (year, month int, err error) {
	year, err = strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("invalid year")
	}
	if m := r.PathValue("month"); m != "" {
		month, err = strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			return 0, 0, fmt.Errorf("invalid month")
		}
	}
	return year, month, nil
}

// GetMonth handles GET /calendar/{year}/{month}
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	board, warnings, err := h.store.Board(year)
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}
	for _, warn := range warnings {
		slog.Warn("skipped malformed pin", "key", warn.Key, "reason", warn.Reason)
	}

	inks := h.store.Inks()
	merged := board.Merged()

	dates := schedule.MonthDates(year, month)
	cells := make([]models.CellData, 0, len(dates))
	for i, date := range dates {
		cell := models.CellData{Date: date, Day: i + 1, CanEdit: true}
		if idx, ok := merged[date]; ok && idx < len(inks) {
			ink := inks[idx]
			n := idx
			cell.HasInk = true
			cell.InkIndex = &n
			cell.InkName = ink.Name
			cell.InkBrand = ink.BrandName
			cell.InkColor = ink.Color
			if board.Protected(date) {
				cell.IsAPI = true
				cell.CanEdit = false
			}
		}
		cells = append(cells, cell)
	}

	theme, err := h.monthTheme(year, month, board, inks)
	if err != nil {
		slog.Error("failed to resolve month theme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load theme")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MonthResponse{
		Year:  year,
		Month: month,
		Theme: theme,
		Cells: cells,
	})
}

// monthTheme resolves the theme waterfall: stored session theme, then
// the pin theme of the ink pinned to the 1st, then none.
func (h *CalendarHandler) monthTheme(year, month int, board schedule.Board, inks []models.Ink) (models.ThemeInfo, error) {
	themes, err := h.store.Themes(year)
	if err != nil {
		return models.ThemeInfo{}, err
	}
	key := fmt.Sprintf("%d-%02d", year, month)
	if t, ok := themes[key]; ok {
		return models.ThemeInfo{
			Theme:       t.Theme,
			Description: t.Description,
			Source:      models.ThemeSourceSession,
		}, nil
	}

	first := fmt.Sprintf("%d-%02d-01", year, month)
	if idx, ok := board.API[first]; ok && idx < len(inks) {
		if theme, desc, ok := swatch.Theme(inks[idx].PrivateComment, year); ok {
			return models.ThemeInfo{
				Theme:       theme,
				Description: desc,
				Source:      models.ThemeSourceAPI,
			}, nil
		}
	}

	return models.ThemeInfo{Source: models.ThemeSourceNone}, nil
}

// GetYearSummary handles GET /calendar/{year}
func (h *CalendarHandler) GetYearSummary(w http.ResponseWriter, r *http.Request) {
	year, _, err := parseYearMonth(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	board, _, err := h.store.Board(year)
	if err != nil {
		slog.Error("failed to build board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}

	merged := board.Merged()
	byMonth := map[string]int{}
	assigned := 0
	for month := 1; month <= 12; month++ {
		count := 0
		for _, date := range schedule.MonthDates(year, month) {
			if _, ok := merged[date]; ok {
				count++
			}
		}
		byMonth[fmt.Sprintf("%02d", month)] = count
		assigned += count
	}

	total := schedule.DaysInYear(year)
	middleware.JSONResponse(w, http.StatusOK, models.YearSummaryResponse{
		Year:       year,
		TotalDays:  total,
		Assigned:   assigned,
		Protected:  len(board.API),
		Session:    len(board.Session) - overlap(board),
		Unassigned: total - assigned,
		ByMonth:    byMonth,
	})
}

// overlap counts session entries shadowed by the protected tier, so
// the summary's tiers add up to the assigned total.
func overlap(board schedule.Board) int {
	n := 0
	for date := range board.Session {
		if _, ok := board.API[date]; ok {
			n++
		}
	}
	return n
}

// SetTheme handles POST /themes
func (h *CalendarHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req models.SetThemeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Month < 1 || req.Month > 12 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid month")
		return
	}
	if req.Theme == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "theme is required")
		return
	}

	year := h.store.Config().Year
	if err := h.store.SetTheme(year, req.Month, req.Theme, req.Description); err != nil {
		slog.Error("failed to save theme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save theme")
		return
	}

	slog.Info("theme set", "year", year, "month", req.Month, "theme", req.Theme)

	middleware.JSONResponse(w, http.StatusOK, models.ThemeInfo{
		Theme:       req.Theme,
		Description: req.Description,
		Source:      models.ThemeSourceSession,
	})
}

// ClearTheme handles DELETE /themes/{month}
func (h *CalendarHandler) ClearTheme(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid month")
		return
	}

	year := h.store.Config().Year
	if err := h.store.ClearTheme(year, month); err != nil {
		slog.Error("failed to clear theme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear theme")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"month":   month,
		"year":    year,
	})
}
