// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func inkJSON(id, name string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"type": "collected_ink",
		"attributes": {
			"brand_name": "Diamine",
			"ink_name": %q,
			"color": "#2B3A67",
			"cluster_tags": ["blue"],
			"private_comment": "{\"swatch2026\": \"2026-01-01\"}"
		}
	}`, id, name)
}

func TestFetchAllInksPagination(t *testing.T) {
	var authHeaders []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))

		if got := r.URL.Query().Get("page[size]"); got != "100" {
			t.Errorf("page[size] = %q", got)
		}
		if got := r.URL.Query().Get("include"); got != "macro_cluster" {
			t.Errorf("include = %q", got)
		}

		page := r.URL.Query().Get("page[number]")
		switch page {
		case "1":
			fmt.Fprintf(w, `{"data": [%s], "meta": {"pagination": {"total_pages": 2, "next_page": 2}}}`,
				inkJSON("1", "Blue Velvet"))
		case "2":
			fmt.Fprintf(w, `{"data": [%s], "meta": {"pagination": {"total_pages": 2, "next_page": null}}}`,
				inkJSON("2", "Oxblood"))
		default:
			t.Errorf("unexpected page %q", page)
		}
	}))
	defer srv.Close()

	client := NewClientWithURL("test-token", srv.URL)
	inks, err := client.FetchAllInks(context.Background())
	if err != nil {
		t.Fatalf("FetchAllInks: %v", err)
	}

	if len(inks) != 2 {
		t.Fatalf("len = %d, want 2", len(inks))
	}
	if inks[0].ID != "1" || inks[0].Name != "Blue Velvet" || inks[0].BrandName != "Diamine" {
		t.Errorf("ink[0] = %+v", inks[0])
	}
	if inks[0].PrivateComment != `{"swatch2026": "2026-01-01"}` {
		t.Errorf("private comment = %q", inks[0].PrivateComment)
	}
	if inks[1].ID != "2" {
		t.Errorf("ink[1] = %+v", inks[1])
	}
	for _, h := range authHeaders {
		if h != "Bearer test-token" {
			t.Errorf("Authorization = %q", h)
		}
	}
}

func TestFetchAllInksSinglePage(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprintf(w, `{"data": [%s], "meta": {"pagination": {"total_pages": 1, "next_page": null}}}`,
			inkJSON("1", "Blue Velvet"))
	}))
	defer srv.Close()

	client := NewClientWithURL("t", srv.URL)
	if _, err := client.FetchAllInks(context.Background()); err != nil {
		t.Fatalf("FetchAllInks: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestFetchAllInksHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClientWithURL("bad", srv.URL)
	if _, err := client.FetchAllInks(context.Background()); err == nil {
		t.Error("401 must surface as an error")
	}
}

func TestFetchInk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/77" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprintf(w, `{"data": %s}`, inkJSON("77", "Apache Sunset"))
	}))
	defer srv.Close()

	client := NewClientWithURL("t", srv.URL)
	ink, err := client.FetchInk(context.Background(), "77")
	if err != nil {
		t.Fatalf("FetchInk: %v", err)
	}
	if ink.ID != "77" || ink.Name != "Apache Sunset" {
		t.Errorf("ink = %+v", ink)
	}
}

func TestUpdatePrivateComment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %q", r.Method)
		}
		if r.URL.Path != "/42" {
			t.Errorf("path = %q", r.URL.Path)
		}

		var payload struct {
			Data struct {
				ID         string `json:"id"`
				Type       string `json:"type"`
				Attributes struct {
					PrivateComment string `json:"private_comment"`
				} `json:"attributes"`
			} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if payload.Data.ID != "42" || payload.Data.Type != "collected_ink" {
			t.Errorf("envelope = %+v", payload.Data)
		}
		if payload.Data.Attributes.PrivateComment != `{"swatch2026":{"date":"2026-03-01"}}` {
			t.Errorf("private_comment = %q", payload.Data.Attributes.PrivateComment)
		}

		fmt.Fprintf(w, `{"data": %s}`, inkJSON("42", "Blue Velvet"))
	}))
	defer srv.Close()

	client := NewClientWithURL("t", srv.URL)
	ink, err := client.UpdatePrivateComment(context.Background(), "42", `{"swatch2026":{"date":"2026-03-01"}}`)
	if err != nil {
		t.Fatalf("UpdatePrivateComment: %v", err)
	}
	if ink.ID != "42" {
		t.Errorf("ink = %+v", ink)
	}
}
