// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/mviklund/inkyear/models"
)

func seededRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func makeInks(n int) []models.Ink {
	inks := make([]models.Ink, n)
	for i := range inks {
		inks[i] = models.Ink{ID: fmt.Sprintf("%d", i), Name: fmt.Sprintf("Ink %d", i)}
	}
	return inks
}

func TestFillTotalAndInjective(t *testing.T) {
	inks := makeInks(50)
	board, _, err := Fill(inks, 2026, seededRNG(1))
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	merged := board.Merged()
	if len(merged) != 50 {
		t.Fatalf("placed %d inks, want 50", len(merged))
	}
	seen := map[int]string{}
	for date, idx := range merged {
		if prev, dup := seen[idx]; dup {
			t.Errorf("ink %d on both %s and %s", idx, prev, date)
		}
		seen[idx] = date
	}
	for idx := range inks {
		if _, ok := seen[idx]; !ok {
			t.Errorf("ink %d unplaced", idx)
		}
	}
}

func TestFillKeepsPins(t *testing.T) {
	inks := makeInks(10)
	inks[3].PrivateComment = `{"swatch2026": "2026-07-04"}`
	inks[7].PrivateComment = `{"swatch2026": {"date": "2026-12-25", "theme": "Holidays"}}`

	board, _, err := Fill(inks, 2026, seededRNG(2))
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	if board.API["2026-07-04"] != 3 {
		t.Errorf("pin for ink 3 lost: %v", board.API)
	}
	if board.API["2026-12-25"] != 7 {
		t.Errorf("pin for ink 7 lost: %v", board.API)
	}
	if len(board.API) != 2 {
		t.Errorf("API tier = %v, want exactly the two pins", board.API)
	}
	if _, ok := board.Session["2026-07-04"]; ok {
		t.Error("fill must not reuse a pinned date")
	}
}

func TestFillPinConflictFirstProcessedWins(t *testing.T) {
	inks := makeInks(3)
	inks[0].PrivateComment = `{"swatch2026": "2026-05-01"}`
	inks[1].PrivateComment = `{"swatch2026": "2026-05-01"}`

	board, _, err := Fill(inks, 2026, seededRNG(3))
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if board.API["2026-05-01"] != 0 {
		t.Errorf("ink 0 processed first must keep the date, got %d", board.API["2026-05-01"])
	}

	// The losing ink still gets placed somewhere.
	merged := board.Merged()
	found := false
	for _, idx := range merged {
		if idx == 1 {
			found = true
		}
	}
	if !found {
		t.Error("losing ink must fall through to the fill phase")
	}
}

func TestFillCapacityError(t *testing.T) {
	inks := makeInks(366) // 2026 has 365 days
	_, _, err := Fill(inks, 2026, seededRNG(4))

	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("err = %v, want CapacityError", err)
	}
	if capErr.Inks != 366 || capErr.Days != 365 || capErr.Year != 2026 {
		t.Errorf("capacity error = %+v", capErr)
	}
}

func TestFillCapacityCheckedBeforePlacement(t *testing.T) {
	// Leap year fits exactly 366.
	inks := makeInks(366)
	board, _, err := Fill(inks, 2024, seededRNG(5))
	if err != nil {
		t.Fatalf("366 inks must fit 2024: %v", err)
	}
	if len(board.Merged()) != 366 {
		t.Errorf("placed %d, want 366", len(board.Merged()))
	}
}

func TestFillSeedDeterminism(t *testing.T) {
	inks := makeInks(40)

	a, _, err := Fill(inks, 2026, seededRNG(42))
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	b, _, err := Fill(inks, 2026, seededRNG(42))
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	am, bm := a.Merged(), b.Merged()
	if len(am) != len(bm) {
		t.Fatalf("sizes differ: %d vs %d", len(am), len(bm))
	}
	for date, idx := range am {
		if bm[date] != idx {
			t.Fatalf("same seed must reproduce the layout; %s: %d vs %d", date, idx, bm[date])
		}
	}

	c, _, _ := Fill(inks, 2026, seededRNG(43))
	same := true
	for date, idx := range c.Merged() {
		if am[date] != idx {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should produce different layouts")
	}
}

func TestFillUniformCoverage(t *testing.T) {
	inks := makeInks(5)
	inks[4].PrivateComment = `{"swatch2026": "2026-06-15"}`

	// Where ink 0 lands across many independently seeded fills. With
	// every unclaimed date equally likely, 400 draws over 364 dates
	// scatter widely: no hot spots, every month reached.
	const runs = 400
	counts := map[string]int{}
	for seed := uint64(0); seed < runs; seed++ {
		board, _, err := Fill(inks, 2026, seededRNG(seed))
		if err != nil {
			t.Fatalf("Fill: %v", err)
		}
		var date string
		for d, idx := range board.Session {
			if idx == 0 {
				date = d
			}
		}
		if date == "" {
			t.Fatal("ink 0 unplaced")
		}
		counts[date]++
	}

	if counts["2026-06-15"] != 0 {
		t.Error("free ink landed on a pinned date")
	}
	if len(counts) < 150 {
		t.Errorf("ink 0 hit only %d distinct dates across %d runs", len(counts), runs)
	}
	peak := 0
	for _, n := range counts {
		if n > peak {
			peak = n
		}
	}
	if peak > 10 {
		t.Errorf("hot spot: one date drew %d of %d placements", peak, runs)
	}
	months := map[string]bool{}
	for date := range counts {
		months[date[:7]] = true
	}
	if len(months) != 12 {
		t.Errorf("placements reached %d months, want 12", len(months))
	}
}

func TestFillEmptyCollection(t *testing.T) {
	board, warnings, err := Fill(nil, 2026, seededRNG(6))
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if len(board.Merged()) != 0 || len(warnings) != 0 {
		t.Errorf("empty collection should produce an empty board")
	}
}

func TestFillReportsMalformedPinWarnings(t *testing.T) {
	inks := makeInks(2)
	inks[0].PrivateComment = `{"swatch2026": "never"}`

	board, warnings, err := Fill(inks, 2026, seededRNG(7))
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v", warnings)
	}
	// The ink with the bad pin is still placed.
	if len(board.Merged()) != 2 {
		t.Errorf("placed %d, want 2", len(board.Merged()))
	}
}
