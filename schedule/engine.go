// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"fmt"
	"math/rand/v2"

	"github.com/mviklund/inkyear/models"
	"github.com/mviklund/inkyear/swatch"
)

// CapacityError is returned when a collection holds more inks than the
// target year has days. The engine never silently drops inks.
type CapacityError struct {
	Inks int
	Days int
	Year int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d inks for %d days in %d", e.Inks, e.Days, e.Year)
}

// Fill assigns every ink to exactly one day of year and returns the
// resulting two-tier board.
//
// Phase 1 claims pinned dates in input order; when two inks pin the
// same date the first one processed wins and the later ink falls
// through to the fill phase unpinned. Phase 2 shuffles the unclaimed
// dates with rng and places the remaining inks one-to-one, so each
// free ink is equally likely to land on any unclaimed date.
//
// The result is total and injective: every ink is placed, no date is
// double-booked, and every surviving pin keeps its original date.
func Fill(inks []models.Ink, year int, rng *rand.Rand) (Board, []swatch.Warning, error) {
	dates := YearDates(year)

	pinned := make(Assignment)
	isPinned := make([]bool, len(inks))
	var warnings []swatch.Warning

	for idx, ink := range inks {
		pins, warns := swatch.ParsePins(ink.PrivateComment, year)
		warnings = append(warnings, warns...)
		if len(pins) == 0 {
			continue
		}
		date := pins[0].Date
		if _, taken := pinned[date]; taken {
			// First-processed-wins: the later pin is discarded and the
			// ink is placed by the fill phase instead.
			continue
		}
		pinned[date] = idx
		isPinned[idx] = true
	}

	if len(inks) > len(dates) {
		return Board{}, warnings, &CapacityError{Inks: len(inks), Days: len(dates), Year: year}
	}

	unclaimed := make([]string, 0, len(dates)-len(pinned))
	for _, date := range dates {
		if _, taken := pinned[date]; !taken {
			unclaimed = append(unclaimed, date)
		}
	}
	rng.Shuffle(len(unclaimed), func(i, j int) {
		unclaimed[i], unclaimed[j] = unclaimed[j], unclaimed[i]
	})

	filled := make(Assignment)
	next := 0
	for idx := range inks {
		if isPinned[idx] {
			continue
		}
		filled[unclaimed[next]] = idx
		next++
	}

	return Board{API: pinned, Session: filled}, warnings, nil
}
