// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/mviklund/inkyear/catalog"
	"github.com/mviklund/inkyear/handlers"
	"github.com/mviklund/inkyear/router"
	"github.com/mviklund/inkyear/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	cache := catalog.NewCache(filepath.Join(t.TempDir(), "cache.json"))
	store := handlers.NewStore(conn, testutil.GetTestConfig(), nil, cache)
	store.SetInks(testutil.TestInks())
	return router.NewRouter(store, nil)
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/health", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "inkyear API v1" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestMethodRouting(t *testing.T) {
	mux := newTestRouter(t)

	// Wrong method on a registered path.
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("DELETE", "/inks", nil, nil))
	testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)
}

func TestRegisteredRoutes(t *testing.T) {
	mux := newTestRouter(t)

	paths := []struct {
		method, path string
	}{
		{"GET", "/inks"},
		{"GET", "/calendar/2026"},
		{"GET", "/calendar/2026/1"},
		{"GET", "/session"},
		{"GET", "/chat/history"},
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(p.method, p.path, nil, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s %s = %d, want 200", p.method, p.path, w.Code)
		}
	}
}
