// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/mviklund/inkyear/catalog"
	"github.com/mviklund/inkyear/handlers"
	"github.com/mviklund/inkyear/router"
	"github.com/mviklund/inkyear/testutil"
)

// testEnv wires a store with the fixture collection into the real
// router, so tests exercise the same mux patterns production uses.
type testEnv struct {
	db    *sql.DB
	store *handlers.Store
	mux   *http.ServeMux
}

func setupEnv(t *testing.T, client *catalog.Client) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cache := catalog.NewCache(filepath.Join(t.TempDir(), "cache.json"))
	store := handlers.NewStore(conn, testutil.GetTestConfig(), client, cache)
	store.SetInks(testutil.TestInks())

	return &testEnv{
		db:    conn,
		store: store,
		mux:   router.NewRouter(store, nil),
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	return w
}

func (e *testEnv) sessionRow(t *testing.T, date string) (int, bool) {
	t.Helper()
	var idx int
	err := e.db.QueryRow(`
		SELECT ink_index FROM session_assignment WHERE year = 2026 AND date = $1
	`, date).Scan(&idx)
	if err == sql.ErrNoRows {
		return 0, false
	}
	if err != nil {
		t.Fatalf("query session row: %v", err)
	}
	return idx, true
}
