// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gesture

// DragEvent is the mutation request a completed drag emits toward the
// assignment layer. The interaction layer never mutates assignments
// itself; the protection policy stays authoritative at commit time.
type DragEvent struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	FromInk  int    `json:"from_ink_index"`
	ToInk    *int   `json:"to_ink_index,omitempty"`
	IsSwap   bool   `json:"is_swap"`
}

// Drag is the state machine for one pointer drag gesture:
// Idle -> Dragging -> Idle. A drop or a cancel both return to Idle and
// clear every piece of transient state, whether or not the eventual
// policy check accepts the resulting mutation.
//
// A protected cell may still be picked up as a source — the policy
// rejects at commit — but protected cells are never valid drop
// targets: entering one shows no affordance and dropping is a no-op.
type Drag struct {
	dragging   bool
	sourceDate string
	sourceInk  int
	target     string
}

// Start begins a drag from a source cell. Starting while already
// dragging restarts from the new source.
func (d *Drag) Start(sourceDate string, inkIndex int) {
	d.dragging = true
	d.sourceDate = sourceDate
	d.sourceInk = inkIndex
	d.target = ""
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.dragging }

// SourceDate returns the date the drag started from, or "" when idle.
func (d *Drag) SourceDate() string { return d.sourceDate }

// Enter updates the highlighted drop target and reports whether the
// entered cell should show a drop affordance. Highlighting is
// suppressed for the source cell itself and for protected cells.
func (d *Drag) Enter(date string, protected bool) bool {
	if !d.dragging {
		return false
	}
	if date == d.sourceDate || protected {
		d.target = ""
		return false
	}
	d.target = date
	return true
}

// Target returns the currently highlighted drop target, or "".
func (d *Drag) Target() string { return d.target }

// Drop ends the gesture on a target cell. It emits a DragEvent unless
// the target is the source cell or protected (both silent no-ops).
// All transient state is cleared regardless of the outcome.
func (d *Drag) Drop(date string, targetInk *int, protected bool) (DragEvent, bool) {
	if !d.dragging {
		return DragEvent{}, false
	}
	source := d.sourceDate
	ink := d.sourceInk
	d.reset()

	if date == source || protected {
		return DragEvent{}, false
	}
	return DragEvent{
		FromDate: source,
		ToDate:   date,
		FromInk:  ink,
		ToInk:    targetInk,
		IsSwap:   targetInk != nil,
	}, true
}

// Cancel abandons the gesture without emitting a mutation. This is the
// only cancellation path; it is driven by the gesture's own
// end-of-life event, never a timer.
func (d *Drag) Cancel() {
	d.reset()
}

func (d *Drag) reset() {
	d.dragging = false
	d.sourceDate = ""
	d.sourceInk = 0
	d.target = ""
}
