// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"encoding/json"
	"fmt"

	"github.com/mviklund/inkyear/models"
)

// NoInk marks an unspecified ink index in a MoveOp; the index is then
// derived from the session assignment at FromDate.
const NoInk = -1

// MoveOp describes one assignment mutation. The combination of dates
// selects the operation: assign (ToDate only), unassign (FromDate
// only), or move (both).
type MoveOp struct {
	FromDate string
	ToDate   string
	InkIndex int
}

// MoveResult is the typed outcome of a mutation. Rejections are
// expected, recoverable results, not errors: Success is false and
// Message says why, with Protected set when a protected assignment
// blocked the operation.
type MoveResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	Operation       string `json:"operation,omitempty"`
	Protected       bool   `json:"protected,omitempty"`
	AlreadyAssigned bool   `json:"already_assigned,omitempty"`
	AssignedDate    string `json:"assigned_date,omitempty"`
	FromDate        string `json:"from_date,omitempty"`
	ToDate          string `json:"to_date,omitempty"`
	InkIndex        *int   `json:"ink_index,omitempty"`
	InkBrand        string `json:"ink_brand,omitempty"`
	InkName         string `json:"ink_name,omitempty"`
	SwapInkIndex    *int   `json:"swap_ink_index,omitempty"`
	DisplacedInk    *int   `json:"displaced_ink_index,omitempty"`
}

// ToMap renders the result as a generic map, the shape tool calls and
// JSON responses both want.
func (r MoveResult) ToMap() map[string]any {
	raw, err := json.Marshal(r)
	if err != nil {
		return map[string]any{"success": r.Success, "message": r.Message}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{"success": r.Success, "message": r.Message}
	}
	return m
}

func intPtr(v int) *int { return &v }

// Move applies an assign, unassign, or move operation against the
// board and returns the new session tier plus a MoveResult. The board
// itself is never modified; on rejection the original session is
// returned unchanged.
//
// Any operation touching a date with an API assignment is rejected:
// protection originates from pins and can never be cleared downstream.
func Move(b Board, op MoveOp, inks []models.Ink) (Assignment, MoveResult) {
	if op.FromDate == "" && op.ToDate == "" {
		return b.Session, MoveResult{Success: false, Message: "must specify from_date or to_date"}
	}

	for _, d := range []struct{ label, date string }{
		{"from_date", op.FromDate},
		{"to_date", op.ToDate},
	} {
		if d.date != "" && !ValidDate(d.date) {
			return b.Session, MoveResult{
				Success: false,
				Message: fmt.Sprintf("invalid %s format: %s, use YYYY-MM-DD", d.label, d.date),
			}
		}
	}

	inkIdx := op.InkIndex

	if op.FromDate != "" {
		if b.Protected(op.FromDate) {
			return b.Session, MoveResult{
				Success:   false,
				Message:   fmt.Sprintf("date %s has a protected assignment and cannot be modified", op.FromDate),
				Protected: true,
				FromDate:  op.FromDate,
			}
		}
		sessionIdx, ok := b.Session[op.FromDate]
		if !ok {
			return b.Session, MoveResult{
				Success:  false,
				Message:  fmt.Sprintf("no session assignment found for %s", op.FromDate),
				FromDate: op.FromDate,
			}
		}
		if inkIdx == NoInk {
			inkIdx = sessionIdx
		} else if inkIdx != sessionIdx {
			return b.Session, MoveResult{
				Success:  false,
				Message:  fmt.Sprintf("ink index mismatch: expected %d, got %d", sessionIdx, inkIdx),
				FromDate: op.FromDate,
			}
		}
	}

	if op.FromDate == "" && inkIdx == NoInk {
		return b.Session, MoveResult{Success: false, Message: "ink_index is required for assign operations"}
	}

	var brand, name string
	if inkIdx >= 0 && inkIdx < len(inks) {
		brand = inks[inkIdx].BrandName
		name = inks[inkIdx].Name
	}

	merged := b.Merged()

	// Unassign: from_date only.
	if op.ToDate == "" {
		session := cloneWithout(b.Session, op.FromDate)
		return session, MoveResult{
			Success:   true,
			Message:   fmt.Sprintf("removed assignment from %s", op.FromDate),
			Operation: "unassign",
			FromDate:  op.FromDate,
			InkIndex:  intPtr(inkIdx),
			InkBrand:  brand,
			InkName:   name,
		}
	}

	// Assign: to_date only.
	if op.FromDate == "" {
		if b.Protected(op.ToDate) {
			return b.Session, MoveResult{
				Success:   false,
				Message:   fmt.Sprintf("date %s has a protected assignment and cannot be modified", op.ToDate),
				Protected: true,
				ToDate:    op.ToDate,
				InkIndex:  intPtr(inkIdx),
			}
		}
		for date, idx := range merged {
			if idx == inkIdx {
				return b.Session, MoveResult{
					Success:         false,
					Message:         fmt.Sprintf("ink is already assigned to %s", date),
					AlreadyAssigned: true,
					AssignedDate:    date,
					InkIndex:        intPtr(inkIdx),
					InkBrand:        brand,
					InkName:         name,
				}
			}
		}

		result := MoveResult{
			Success:   true,
			Message:   fmt.Sprintf("assigned ink to %s", op.ToDate),
			Operation: "assign",
			ToDate:    op.ToDate,
			InkIndex:  intPtr(inkIdx),
			InkBrand:  brand,
			InkName:   name,
		}
		if displaced, ok := b.Session[op.ToDate]; ok {
			result.DisplacedInk = intPtr(displaced)
		}
		session := clone(b.Session)
		session[op.ToDate] = inkIdx
		return session, result
	}

	// Move: both dates set; from_date checks already passed.
	if b.Protected(op.ToDate) {
		return b.Session, MoveResult{
			Success:   false,
			Message:   fmt.Sprintf("date %s has a protected assignment and cannot be used as destination", op.ToDate),
			Protected: true,
			ToDate:    op.ToDate,
			InkIndex:  intPtr(inkIdx),
		}
	}

	result := MoveResult{
		Success:   true,
		Message:   fmt.Sprintf("moved ink from %s to %s", op.FromDate, op.ToDate),
		Operation: "move",
		FromDate:  op.FromDate,
		ToDate:    op.ToDate,
		InkIndex:  intPtr(inkIdx),
		InkBrand:  brand,
		InkName:   name,
	}
	if displaced, ok := b.Session[op.ToDate]; ok {
		result.DisplacedInk = intPtr(displaced)
	}
	session := cloneWithout(b.Session, op.FromDate)
	session[op.ToDate] = inkIdx
	return session, result
}

// Swap exchanges the assignments of two dates. Both sides must carry a
// session assignment; a protected date on either side rejects the swap.
func Swap(b Board, dateA, dateB string, inks []models.Ink) (Assignment, MoveResult) {
	for _, d := range []struct{ label, date string }{
		{"date_a", dateA},
		{"date_b", dateB},
	} {
		if !ValidDate(d.date) {
			return b.Session, MoveResult{
				Success: false,
				Message: fmt.Sprintf("invalid %s format: %s, use YYYY-MM-DD", d.label, d.date),
			}
		}
	}

	for _, date := range []string{dateA, dateB} {
		if b.Protected(date) {
			return b.Session, MoveResult{
				Success:   false,
				Message:   fmt.Sprintf("date %s has a protected assignment and cannot be modified", date),
				Protected: true,
				FromDate:  date,
			}
		}
	}

	merged := b.Merged()
	idxA, okA := merged[dateA]
	if !okA {
		return b.Session, MoveResult{Success: false, Message: fmt.Sprintf("no assignment found for %s", dateA)}
	}
	idxB, okB := merged[dateB]
	if !okB {
		return b.Session, MoveResult{Success: false, Message: fmt.Sprintf("no assignment found for %s", dateB)}
	}

	result := MoveResult{
		Success:      true,
		Message:      fmt.Sprintf("swapped inks between %s and %s", dateA, dateB),
		Operation:    "swap",
		FromDate:     dateA,
		ToDate:       dateB,
		InkIndex:     intPtr(idxA),
		SwapInkIndex: intPtr(idxB),
	}
	if idxA >= 0 && idxA < len(inks) {
		result.InkBrand = inks[idxA].BrandName
		result.InkName = inks[idxA].Name
	}

	session := clone(b.Session)
	session[dateA] = idxB
	session[dateB] = idxA
	return session, result
}

func clone(a Assignment) Assignment {
	out := make(Assignment, len(a))
	for date, idx := range a {
		out[date] = idx
	}
	return out
}

func cloneWithout(a Assignment, date string) Assignment {
	out := clone(a)
	delete(out, date)
	return out
}
