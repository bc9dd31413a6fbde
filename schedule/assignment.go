// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"fmt"
	"time"

	"github.com/mviklund/inkyear/models"
	"github.com/mviklund/inkyear/swatch"
)

// Assignment maps date strings (YYYY-MM-DD) to ink indices. Each date
// holds at most one ink and each ink appears on at most one date.
type Assignment map[string]int

// Board is the two-tier assignment state for one year. API holds
// pin-derived assignments loaded from ink comments; they are protected
// and read-only to every mutation. Session holds experimental
// assignments that can be freely changed until committed.
type Board struct {
	API     Assignment
	Session Assignment
}

// Merged returns the combined view with API taking precedence.
func (b Board) Merged() Assignment {
	merged := make(Assignment, len(b.API)+len(b.Session))
	for date, idx := range b.Session {
		merged[date] = idx
	}
	for date, idx := range b.API {
		merged[date] = idx
	}
	return merged
}

// Protected reports whether the date carries an API assignment.
func (b Board) Protected(date string) bool {
	_, ok := b.API[date]
	return ok
}

// AssignedIndices returns the set of ink indices present in the merged view.
func (b Board) AssignedIndices() map[int]bool {
	assigned := make(map[int]bool)
	for _, idx := range b.Merged() {
		assigned[idx] = true
	}
	return assigned
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(swatch.DateLayout, s)
	return err == nil
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a month.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDates returns every date string of a month in day order.
func MonthDates(year, month int) []string {
	n := DaysInMonth(year, month)
	dates := make([]string, 0, n)
	for day := 1; day <= n; day++ {
		dates = append(dates, fmt.Sprintf("%d-%02d-%02d", year, month, day))
	}
	return dates
}

// YearDates returns every date string of a year in calendar order.
func YearDates(year int) []string {
	dates := make([]string, 0, DaysInYear(year))
	for month := 1; month <= 12; month++ {
		dates = append(dates, MonthDates(year, month)...)
	}
	return dates
}

// MonthSummary returns the ink indices assigned to days of one month.
func MonthSummary(a Assignment, year, month int) []int {
	var indices []int
	for _, date := range MonthDates(year, month) {
		if idx, ok := a[date]; ok {
			indices = append(indices, idx)
		}
	}
	return indices
}

// ExplicitAssignments builds the protected tier from ink comments.
// Inks are processed in input order; when two inks pin the same date
// the first one processed keeps it and the later pin is dropped.
func ExplicitAssignments(inks []models.Ink, year int) (Assignment, []swatch.Warning) {
	assignments := make(Assignment)
	var warnings []swatch.Warning

	for idx, ink := range inks {
		pins, warns := swatch.ParsePins(ink.PrivateComment, year)
		warnings = append(warnings, warns...)
		if len(pins) == 0 {
			continue
		}
		date := pins[0].Date
		if _, taken := assignments[date]; taken {
			continue
		}
		assignments[date] = idx
	}

	return assignments, warnings
}
