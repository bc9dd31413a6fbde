// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"strings"

	"github.com/mviklund/inkyear/models"
)

// Match pairs an ink with its index in the collection slice.
type Match struct {
	Index int
	Ink   models.Ink
}

// FindInkByName resolves a free-form identifier to a collection index.
// Exact matches on name or "brand name" win; otherwise the shortest
// substring match is taken so "Sailor Yama-dori" beats longer variants.
func FindInkByName(name string, inks []models.Ink) (int, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return 0, false
	}

	best := -1
	bestLen := 0
	for i, ink := range inks {
		inkName := strings.ToLower(ink.Name)
		full := strings.ToLower(strings.TrimSpace(ink.BrandName + " " + ink.Name))
		if needle == inkName || needle == full {
			return i, true
		}
		if strings.Contains(inkName, needle) || strings.Contains(full, needle) {
			if best == -1 || len(full) < bestLen {
				best = i
				bestLen = len(full)
			}
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// SearchInks filters the collection by free-text query, color and brand.
// Empty filters match everything.
func SearchInks(inks []models.Ink, query, color, brand string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	color = strings.ToLower(strings.TrimSpace(color))
	brand = strings.ToLower(strings.TrimSpace(brand))

	var out []Match
	for i, ink := range inks {
		if query != "" {
			hay := strings.ToLower(ink.Name + " " + ink.BrandName + " " + ink.Comment + " " + strings.Join(ink.ClusterTags, " "))
			if !strings.Contains(hay, query) {
				continue
			}
		}
		if color != "" && !strings.Contains(strings.ToLower(ink.Color+" "+strings.Join(ink.ClusterTags, " ")), color) {
			continue
		}
		if brand != "" && !strings.Contains(strings.ToLower(ink.BrandName), brand) {
			continue
		}
		out = append(out, Match{Index: i, Ink: ink})
	}
	return out
}
