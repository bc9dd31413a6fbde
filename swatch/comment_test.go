// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package swatch

import (
	"encoding/json"
	"testing"
)

func TestBuildCommentFromEmpty(t *testing.T) {
	out, err := BuildComment("", 2026, "2026-04-01", "", "")
	if err != nil {
		t.Fatalf("BuildComment: %v", err)
	}
	if out != `{"swatch2026":{"date":"2026-04-01"}}` {
		t.Errorf("comment = %s", out)
	}
}

func TestBuildCommentOmitsEmptyThemeFields(t *testing.T) {
	out, err := BuildComment("", 2026, "2026-04-01", "Blues", "")
	if err != nil {
		t.Fatalf("BuildComment: %v", err)
	}
	var data map[string]map[string]string
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	e := data["swatch2026"]
	if e["theme"] != "Blues" {
		t.Errorf("theme = %q", e["theme"])
	}
	if _, ok := e["theme_description"]; ok {
		t.Error("empty theme_description must be omitted")
	}
}

func TestBuildCommentPreservesOtherKeys(t *testing.T) {
	existing := `{"swatch2025": "2025-06-01", "note": "gift from Anna"}`
	out, err := BuildComment(existing, 2026, "2026-04-01", "", "")
	if err != nil {
		t.Fatalf("BuildComment: %v", err)
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if string(data["swatch2025"]) != `"2025-06-01"` {
		t.Errorf("swatch2025 = %s", data["swatch2025"])
	}
	if string(data["note"]) != `"gift from Anna"` {
		t.Errorf("note = %s", data["note"])
	}
	if _, ok := data["swatch2026"]; !ok {
		t.Error("new entry missing")
	}
}

func TestBuildCommentReplacesSameYear(t *testing.T) {
	existing := `{"swatch2026": "2026-01-01"}`
	out, err := BuildComment(existing, 2026, "2026-12-31", "", "")
	if err != nil {
		t.Fatalf("BuildComment: %v", err)
	}
	if got := PinnedDate(out, 2026); got != "2026-12-31" {
		t.Errorf("PinnedDate = %q, want the replacement", got)
	}
}

func TestBuildCommentInvalidDate(t *testing.T) {
	if _, err := BuildComment("", 2026, "April 1st", "", ""); err == nil {
		t.Error("malformed date must fail")
	}
}

func TestBuildCommentNonJSONExistingStartsFresh(t *testing.T) {
	out, err := BuildComment("just some notes", 2026, "2026-04-01", "", "")
	if err != nil {
		t.Fatalf("BuildComment: %v", err)
	}
	if got := PinnedDate(out, 2026); got != "2026-04-01" {
		t.Errorf("PinnedDate = %q", got)
	}
}

func TestCheckOverwrite(t *testing.T) {
	if c := CheckOverwrite(`{"swatch2026": "2026-01-01"}`, 2026); c == nil || c.ExistingDate != "2026-01-01" {
		t.Errorf("conflict = %+v", c)
	}
	if c := CheckOverwrite(`{"swatch2025": "2025-01-01"}`, 2026); c != nil {
		t.Errorf("no conflict expected for other years, got %+v", c)
	}
	if c := CheckOverwrite("", 2026); c != nil {
		t.Errorf("no conflict expected for empty comment, got %+v", c)
	}
}

func TestRemoveYear(t *testing.T) {
	existing := `{"swatch2025": "2025-06-01", "swatch2026": "2026-01-01"}`
	out := RemoveYear(existing, 2026)
	if HasPin(out, 2026) {
		t.Error("2026 pin should be gone")
	}
	if !HasPin(out, 2025) {
		t.Error("2025 pin must survive")
	}

	if got := RemoveYear(`{"swatch2026": "2026-01-01"}`, 2026); got != "{}" {
		t.Errorf("RemoveYear = %q, want empty object", got)
	}
}

func TestBuildCommentRoundTrip(t *testing.T) {
	out, err := BuildComment("", 2026, "2026-09-09", "Autumn", "Rusty oranges")
	if err != nil {
		t.Fatalf("BuildComment: %v", err)
	}
	theme, desc, ok := Theme(out, 2026)
	if !ok || theme != "Autumn" || desc != "Rusty oranges" {
		t.Errorf("Theme round trip = %q, %q, %v", theme, desc, ok)
	}
}
