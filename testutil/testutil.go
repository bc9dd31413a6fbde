// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/mviklund/inkyear/cliparse"
	"github.com/mviklund/inkyear/db"
	"github.com/mviklund/inkyear/models"
)

// SetupTestDB creates a fresh sqlite database with the full schema.
// A file in t.TempDir() rather than :memory: so every pooled
// connection sees the same database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inkyear_test.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: models.DBTypeSQLite,
		Year:         2026,
		CacheFile:    "ink_cache_test.json",
	}
}

// TestInks returns a small fixture collection. The first ink carries
// a pin for 2026-01-01 and the last one a pin with a theme, matching
// the date formats the catalog stores in private comments.
func TestInks() []models.Ink {
	return []models.Ink{
		{
			ID: "101", BrandName: "Diamine", Name: "Blue Velvet",
			Color: "#2B3A67", ClusterTags: []string{"blue"},
			PrivateComment: `{"swatch2026": "2026-01-01"}`,
		},
		{
			ID: "102", BrandName: "Pilot", Name: "Iroshizuku Kon-peki",
			Color: "#0F52BA", ClusterTags: []string{"blue"},
		},
		{
			ID: "103", BrandName: "Noodler's", Name: "Apache Sunset",
			Color: "#FF6600", ClusterTags: []string{"orange"},
		},
		{
			ID: "104", BrandName: "Sailor", Name: "Yama-dori",
			Color: "#1F6F7A", ClusterTags: []string{"teal"},
		},
		{
			ID: "105", BrandName: "Diamine", Name: "Oxblood",
			Color: "#800020", ClusterTags: []string{"red"},
			PrivateComment: `{"swatch2026": {"date": "2026-02-14", "theme": "Deep Reds", "theme_description": "Rich winter reds"}}`,
		},
	}
}

// SeedSessionAssignment inserts one session assignment row
func SeedSessionAssignment(t *testing.T, conn *sql.DB, year int, date string, inkIndex int) {
	t.Helper()
	_, err := conn.Exec(`
		INSERT INTO session_assignment (year, date, ink_index)
		VALUES ($1, $2, $3)
	`, year, date, inkIndex)
	if err != nil {
		t.Fatalf("Failed to seed session assignment: %v", err)
	}
}

// SeedMonthTheme inserts one month theme row
func SeedMonthTheme(t *testing.T, conn *sql.DB, year, month int, theme, description string) {
	t.Helper()
	_, err := conn.Exec(`
		INSERT INTO month_theme (year, month, theme, description)
		VALUES ($1, $2, $3, $4)
	`, year, month, theme, description)
	if err != nil {
		t.Fatalf("Failed to seed month theme: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
