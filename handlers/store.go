// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/mviklund/inkyear/catalog"
	"github.com/mviklund/inkyear/cliparse"
	"github.com/mviklund/inkyear/models"
	"github.com/mviklund/inkyear/schedule"
	"github.com/mviklund/inkyear/swatch"
)

// ErrNoCatalog is returned for operations that need the catalog API
// when no token is configured.
var ErrNoCatalog = errors.New("catalog API not configured")

// Store holds the shared application state every handler works
// against: the in-memory ink collection (protected tier lives in the
// ink comments), the database (session tier, themes, chat log), and
// the catalog client + disk cache.
//
// Client may be nil when no API token is configured; the app then
// runs read-only from cache.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	cfg    cliparse.Config
	inks   []models.Ink
	client *catalog.Client
	cache  *catalog.Cache
}

func NewStore(conn *sql.DB, cfg cliparse.Config, client *catalog.Client, cache *catalog.Cache) *Store {
	return &Store{db: conn, cfg: cfg, client: client, cache: cache}
}

// Config returns the immutable configuration.
func (s *Store) Config() cliparse.Config { return s.cfg }

// Inks returns the current collection snapshot. The returned slice is
// never mutated after publication; every mutation installs a fresh
// slice, so callers may keep reading it without holding the lock.
func (s *Store) Inks() []models.Ink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inks
}

// SetInks replaces the collection snapshot.
func (s *Store) SetInks(inks []models.Ink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inks = inks
}

// LoadCache fills the collection from the disk cache if present.
func (s *Store) LoadCache() bool {
	data := s.cache.Load()
	if data == nil {
		return false
	}
	s.SetInks(data.Inks)
	return true
}

// CacheInfo returns a human-readable cache description.
func (s *Store) CacheInfo() string {
	return s.cache.Info()
}

// Refresh fetches the full collection from the catalog API and writes
// it through to the disk cache.
func (s *Store) Refresh(ctx context.Context) (int, error) {
	if s.client == nil {
		return 0, ErrNoCatalog
	}
	inks, err := s.client.FetchAllInks(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch inks: %w", err)
	}
	if err := s.cache.Save(inks); err != nil {
		return 0, fmt.Errorf("save cache: %w", err)
	}
	s.SetInks(inks)
	return len(inks), nil
}

// CommitComment PATCHes an ink's private comment on the catalog and
// updates the in-memory copy, which promotes the pin into the
// protected tier on the next Board build.
func (s *Store) CommitComment(ctx context.Context, inkIndex int, comment string) error {
	if s.client == nil {
		return ErrNoCatalog
	}
	s.mu.RLock()
	if inkIndex < 0 || inkIndex >= len(s.inks) {
		s.mu.RUnlock()
		return fmt.Errorf("ink index %d out of range", inkIndex)
	}
	inkID := s.inks[inkIndex].ID
	s.mu.RUnlock()

	if _, err := s.client.UpdatePrivateComment(ctx, inkID, comment); err != nil {
		return fmt.Errorf("update private comment: %w", err)
	}

	// Copy-on-write: snapshots handed out by Inks share the old
	// backing array, so mutate a clone and swap it in.
	s.mu.Lock()
	inks := make([]models.Ink, len(s.inks))
	copy(inks, s.inks)
	if inkIndex < len(inks) {
		inks[inkIndex].PrivateComment = comment
	}
	s.inks = inks
	s.mu.Unlock()
	return nil
}

// Board assembles the two-tier board for a year: protected tier from
// the pins in ink comments, session tier from the database.
func (s *Store) Board(year int) (schedule.Board, []swatch.Warning, error) {
	inks := s.Inks()
	api, warnings := schedule.ExplicitAssignments(inks, year)

	session, err := s.SessionAssignments(year)
	if err != nil {
		return schedule.Board{}, warnings, err
	}
	return schedule.Board{API: api, Session: session}, warnings, nil
}

// SessionAssignments reads the session tier for a year.
func (s *Store) SessionAssignments(year int) (schedule.Assignment, error) {
	rows, err := s.db.Query(`
		SELECT date, ink_index FROM session_assignment WHERE year = $1
	`, year)
	if err != nil {
		return nil, fmt.Errorf("query session assignments: %w", err)
	}
	defer rows.Close()

	session := schedule.Assignment{}
	for rows.Next() {
		var date string
		var idx int
		if err := rows.Scan(&date, &idx); err != nil {
			return nil, fmt.Errorf("scan session assignment: %w", err)
		}
		session[date] = idx
	}
	return session, rows.Err()
}

// ReplaceSession swaps the stored session tier for a year in one
// transaction. Mutations go through schedule's pure functions and
// write the result back with this.
func (s *Store) ReplaceSession(year int, session schedule.Assignment) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM session_assignment WHERE year = $1`, year); err != nil {
		return fmt.Errorf("clear session assignments: %w", err)
	}
	for date, idx := range session {
		_, err := tx.Exec(`
			INSERT INTO session_assignment (year, date, ink_index)
			VALUES ($1, $2, $3)
		`, year, date, idx)
		if err != nil {
			return fmt.Errorf("insert session assignment: %w", err)
		}
	}
	return tx.Commit()
}

// Themes reads all stored month themes for a year, keyed "YYYY-MM".
func (s *Store) Themes(year int) (map[string]models.MonthTheme, error) {
	rows, err := s.db.Query(`
		SELECT month, theme, description FROM month_theme WHERE year = $1
	`, year)
	if err != nil {
		return nil, fmt.Errorf("query month themes: %w", err)
	}
	defer rows.Close()

	themes := map[string]models.MonthTheme{}
	for rows.Next() {
		var month int
		var t models.MonthTheme
		if err := rows.Scan(&month, &t.Theme, &t.Description); err != nil {
			return nil, fmt.Errorf("scan month theme: %w", err)
		}
		themes[fmt.Sprintf("%d-%02d", year, month)] = t
	}
	return themes, rows.Err()
}

// SetTheme upserts a month theme.
func (s *Store) SetTheme(year, month int, theme, description string) error {
	_, err := s.db.Exec(`DELETE FROM month_theme WHERE year = $1 AND month = $2`, year, month)
	if err != nil {
		return fmt.Errorf("clear month theme: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO month_theme (year, month, theme, description)
		VALUES ($1, $2, $3, $4)
	`, year, month, theme, description)
	if err != nil {
		return fmt.Errorf("insert month theme: %w", err)
	}
	return nil
}

// ClearTheme removes a month theme.
func (s *Store) ClearTheme(year, month int) error {
	_, err := s.db.Exec(`DELETE FROM month_theme WHERE year = $1 AND month = $2`, year, month)
	if err != nil {
		return fmt.Errorf("delete month theme: %w", err)
	}
	return nil
}

// ReplaceThemes swaps all stored themes for a year. Used after chat
// turns, whose tools edit the theme map in memory.
func (s *Store) ReplaceThemes(year int, themes map[string]models.MonthTheme) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM month_theme WHERE year = $1`, year); err != nil {
		return fmt.Errorf("clear month themes: %w", err)
	}
	for key, t := range themes {
		var y, m int
		if _, err := fmt.Sscanf(key, "%d-%d", &y, &m); err != nil || y != year {
			continue
		}
		_, err := tx.Exec(`
			INSERT INTO month_theme (year, month, theme, description)
			VALUES ($1, $2, $3, $4)
		`, year, m, t.Theme, t.Description)
		if err != nil {
			return fmt.Errorf("insert month theme: %w", err)
		}
	}
	return tx.Commit()
}

// ChatHistory returns the most recent chat messages, oldest first.
func (s *Store) ChatHistory(limit int) ([]models.ChatMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, role, content, created_at FROM chat_message
		ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}
	defer rows.Close()

	var history []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		history = append(history, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// reverse into chronological order
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}

// AppendChatMessage stores one chat message.
func (s *Store) AppendChatMessage(m models.ChatMessage) error {
	_, err := s.db.Exec(`
		INSERT INTO chat_message (id, role, content, created_at)
		VALUES ($1, $2, $3, $4)
	`, m.ID, m.Role, m.Content, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}
