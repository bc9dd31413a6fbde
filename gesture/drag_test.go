// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gesture

import "testing"

func TestDragStartAndState(t *testing.T) {
	var d Drag
	if d.Active() {
		t.Fatal("new drag must be idle")
	}
	d.Start("2026-01-05", 3)
	if !d.Active() || d.SourceDate() != "2026-01-05" {
		t.Errorf("active = %v, source = %q", d.Active(), d.SourceDate())
	}
}

func TestDragRestartReplacesSource(t *testing.T) {
	var d Drag
	d.Start("2026-01-05", 3)
	d.Enter("2026-01-06", false)
	d.Start("2026-02-01", 7)
	if d.SourceDate() != "2026-02-01" {
		t.Errorf("source = %q", d.SourceDate())
	}
	if d.Target() != "" {
		t.Error("restart must clear the highlight target")
	}
}

func TestDragEnterHighlights(t *testing.T) {
	var d Drag
	d.Start("2026-01-05", 3)
	if !d.Enter("2026-01-06", false) {
		t.Error("free cell should highlight")
	}
	if d.Target() != "2026-01-06" {
		t.Errorf("target = %q", d.Target())
	}
}

func TestDragEnterSuppressedForSourceAndProtected(t *testing.T) {
	var d Drag
	d.Start("2026-01-05", 3)

	if d.Enter("2026-01-05", false) {
		t.Error("source cell must not highlight")
	}
	if d.Target() != "" {
		t.Error("target must be cleared")
	}

	d.Enter("2026-01-06", false)
	if d.Enter("2026-01-07", true) {
		t.Error("protected cell must not highlight")
	}
	if d.Target() != "" {
		t.Error("entering a protected cell clears the previous target")
	}
}

func TestDragEnterWhileIdle(t *testing.T) {
	var d Drag
	if d.Enter("2026-01-06", false) {
		t.Error("idle drag must ignore enter")
	}
}

func TestDragDropEmitsMoveEvent(t *testing.T) {
	var d Drag
	d.Start("2026-01-05", 3)
	event, ok := d.Drop("2026-01-08", nil, false)
	if !ok {
		t.Fatal("drop on a free cell must emit an event")
	}
	if event.FromDate != "2026-01-05" || event.ToDate != "2026-01-08" || event.FromInk != 3 {
		t.Errorf("event = %+v", event)
	}
	if event.IsSwap || event.ToInk != nil {
		t.Error("empty target means a move, not a swap")
	}
}

func TestDragDropEmitsSwapEvent(t *testing.T) {
	var d Drag
	d.Start("2026-01-05", 3)
	target := 9
	event, ok := d.Drop("2026-01-08", &target, false)
	if !ok {
		t.Fatal("drop must emit an event")
	}
	if !event.IsSwap || event.ToInk == nil || *event.ToInk != 9 {
		t.Errorf("event = %+v, want swap with target ink 9", event)
	}
}

func TestDragDropNoOps(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		protected bool
	}{
		{"drop on source", "2026-01-05", false},
		{"drop on protected", "2026-01-08", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Drag
			d.Start("2026-01-05", 3)
			d.Enter("2026-01-06", false)
			if _, ok := d.Drop(tt.date, nil, tt.protected); ok {
				t.Error("drop must be a silent no-op")
			}
			// State is fully cleared even for no-op drops.
			if d.Active() || d.SourceDate() != "" || d.Target() != "" {
				t.Error("all transient state must be cleared")
			}
		})
	}
}

func TestDragDropWhileIdle(t *testing.T) {
	var d Drag
	if _, ok := d.Drop("2026-01-08", nil, false); ok {
		t.Error("idle drag must not emit events")
	}
}

func TestDragCancelClearsEverything(t *testing.T) {
	var d Drag
	d.Start("2026-01-05", 3)
	d.Enter("2026-01-06", false)
	d.Cancel()
	if d.Active() || d.SourceDate() != "" || d.Target() != "" {
		t.Error("cancel must clear all state")
	}
	// A new gesture works normally afterwards.
	d.Start("2026-03-01", 1)
	if !d.Active() || d.SourceDate() != "2026-03-01" {
		t.Error("drag must be reusable after cancel")
	}
}
