// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package swatch

import (
	"encoding/json"
	"fmt"
	"time"
)

// Conflict describes existing swatch data that a save would overwrite.
type Conflict struct {
	ExistingDate             string `json:"existing_date"`
	ExistingTheme            string `json:"existing_theme,omitempty"`
	ExistingThemeDescription string `json:"existing_theme_description,omitempty"`
}

// CheckOverwrite returns the existing swatch data for year if saving
// would overwrite it, or nil when the comment has no pin for that year.
func CheckOverwrite(comment string, year int) *Conflict {
	pins, _ := ParsePins(comment, year)
	if len(pins) == 0 {
		return nil
	}
	p := pins[0]
	return &Conflict{
		ExistingDate:             p.Date,
		ExistingTheme:            p.Theme,
		ExistingThemeDescription: p.ThemeDescription,
	}
}

// BuildComment merges swatch data for one year into an existing comment,
// preserving every other key (other years, unrelated fields). Empty theme
// fields are omitted from the stored object. The existing comment may be
// empty or invalid JSON; it then starts from an empty object.
func BuildComment(existing string, year int, date, theme, themeDescription string) (string, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", fmt.Errorf("invalid swatch date %q: %w", date, err)
	}

	data := parseComment(existing)

	e := entry{Date: date, Theme: theme, ThemeDescription: themeDescription}
	raw, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to encode swatch entry: %w", err)
	}
	data[fmt.Sprintf("swatch%d", year)] = raw

	out, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode comment: %w", err)
	}
	return string(out), nil
}

// RemoveYear strips the swatch entry for year from a comment, keeping
// all other data. Returns "{}" when nothing remains.
func RemoveYear(existing string, year int) string {
	data := parseComment(existing)
	delete(data, fmt.Sprintf("swatch%d", year))

	if len(data) == 0 {
		return "{}"
	}
	out, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(out)
}
