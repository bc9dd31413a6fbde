// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gesture

// SelectEvent is emitted when the picker selection is confirmed.
type SelectEvent struct {
	InkIndex int `json:"selected_ink_index"`
}

// Picker is a keyboard-navigable selection over a fixed-order list of
// ink indices. The selected index is clamped to [0, len-1] with no
// wraparound, and repopulating the list (for example after filtering
// by search text) resets it to 0 so confirming immediately is always
// well-defined.
type Picker struct {
	items  []int
	index  int
	offset int
	height int
}

// DefaultViewportHeight is the number of visible rows when none is set.
const DefaultViewportHeight = 8

// Populate replaces the list contents and resets the selection to the
// first entry.
func (p *Picker) Populate(items []int) {
	p.items = items
	p.index = 0
	p.offset = 0
}

// Len returns the number of entries.
func (p *Picker) Len() int { return len(p.items) }

// Index returns the current selection index.
func (p *Picker) Index() int { return p.index }

// Down moves the selection one entry down, clamped at the last entry.
func (p *Picker) Down() {
	if p.index < len(p.items)-1 {
		p.index++
	}
	p.sync()
}

// Up moves the selection one entry up, clamped at the first entry.
func (p *Picker) Up() {
	if p.index > 0 {
		p.index--
	}
	p.sync()
}

// Confirm emits a selection event for the current entry, leaving the
// index unchanged. Confirming an empty list reports no event.
func (p *Picker) Confirm() (SelectEvent, bool) {
	if len(p.items) == 0 {
		return SelectEvent{}, false
	}
	return SelectEvent{InkIndex: p.items[p.index]}, true
}

// SetViewportHeight sets the number of visible rows used to keep the
// selection scrolled into view.
func (p *Picker) SetViewportHeight(h int) {
	if h > 0 {
		p.height = h
	}
	p.sync()
}

// Offset returns the scroll offset of the first visible row.
func (p *Picker) Offset() int { return p.offset }

// sync scrolls so the selected entry stays visible.
func (p *Picker) sync() {
	h := p.height
	if h <= 0 {
		h = DefaultViewportHeight
	}
	if p.index < p.offset {
		p.offset = p.index
	}
	if p.index >= p.offset+h {
		p.offset = p.index - h + 1
	}
}
