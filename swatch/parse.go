// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package swatch

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the wire format for all swatch dates.
const DateLayout = "2006-01-02"

var keyPattern = regexp.MustCompile(`^swatch(\d{4})$`)

// Pin is an explicit ink-to-date assignment declared in an ink's
// private comment. A pin is immutable once established: assignments
// derived from pins are protected from later mutation.
type Pin struct {
	Date             string `json:"date"`
	Theme            string `json:"theme,omitempty"`
	ThemeDescription string `json:"theme_description,omitempty"`
}

// Warning records a swatch entry that was skipped during parsing.
// Warnings are non-fatal: sibling keys continue to parse.
type Warning struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// entry mirrors the object form of a swatch value on the wire.
type entry struct {
	Date             string `json:"date"`
	Theme            string `json:"theme,omitempty"`
	ThemeDescription string `json:"theme_description,omitempty"`
}

// parseComment decodes a comment as a JSON object, returning an empty
// map for absent or non-JSON comments. Never fails.
func parseComment(comment string) map[string]json.RawMessage {
	if comment == "" {
		return map[string]json.RawMessage{}
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal([]byte(comment), &data); err != nil || data == nil {
		return map[string]json.RawMessage{}
	}
	return data
}

// ParsePins extracts the pins declared for year from a free-text comment.
//
// The comment is expected to hold a JSON object with keys of the form
// "swatch<YYYY>". Two value shapes are accepted: a plain "YYYY-MM-DD"
// string (legacy form, no theme) and an object with a required "date"
// and optional "theme"/"theme_description". Keys for other years are
// ignored. Malformed values yield a Warning and are skipped; a comment
// that is not JSON at all yields no pins and no warnings.
func ParsePins(comment string, year int) ([]Pin, []Warning) {
	data := parseComment(comment)

	var pins []Pin
	var warnings []Warning

	for key, raw := range data {
		m := keyPattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		keyYear := 0
		fmt.Sscanf(m[1], "%d", &keyYear)
		if keyYear != year {
			continue
		}

		pin, warn := decodeValue(key, raw, year)
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		pins = append(pins, *pin)
	}

	return pins, warnings
}

// decodeValue accepts both wire shapes for a swatch value.
func decodeValue(key string, raw json.RawMessage, year int) (*Pin, *Warning) {
	// Legacy form: bare date string.
	var legacy string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		if w := checkDate(key, legacy, year); w != nil {
			return nil, w
		}
		return &Pin{Date: legacy}, nil
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, &Warning{Key: key, Reason: "value is neither a date string nor an object"}
	}
	if e.Date == "" {
		return nil, &Warning{Key: key, Reason: "object form is missing the date field"}
	}
	if w := checkDate(key, e.Date, year); w != nil {
		return nil, w
	}
	return &Pin{Date: e.Date, Theme: e.Theme, ThemeDescription: e.ThemeDescription}, nil
}

func checkDate(key, dateStr string, year int) *Warning {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return &Warning{Key: key, Reason: fmt.Sprintf("malformed date %q", dateStr)}
	}
	if t.Year() != year {
		return &Warning{Key: key, Reason: fmt.Sprintf("date %q is outside year %d", dateStr, year)}
	}
	return nil
}

// PinnedDate returns the pinned date for year, or "" when the comment
// declares no valid pin for that year.
func PinnedDate(comment string, year int) string {
	pins, _ := ParsePins(comment, year)
	if len(pins) == 0 {
		return ""
	}
	return pins[0].Date
}

// HasPin reports whether the comment declares a valid pin for year.
func HasPin(comment string, year int) bool {
	return PinnedDate(comment, year) != ""
}

// Theme returns the theme attached to the year's pin, if any.
func Theme(comment string, year int) (theme, description string, ok bool) {
	pins, _ := ParsePins(comment, year)
	if len(pins) == 0 {
		return "", "", false
	}
	p := pins[0]
	if p.Theme == "" && p.ThemeDescription == "" {
		return "", "", false
	}
	return p.Theme, p.ThemeDescription, true
}
