// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gesture holds the interaction state machines that translate
direct-manipulation events into assignment mutation requests.

Both machines are plain values with no global state, so handlers can
own one per user session and tests can drive them without a pointing
device. They never touch assignment state directly: a completed drag
emits a DragEvent and a confirmed picker selection emits a
SelectEvent, both consumed by the assignment layer behind the
protection policy.

# Drag

Idle -> Dragging -> Idle. Start records the source cell; Enter tracks
the highlighted drop target (suppressed for the source cell and for
protected cells); Drop emits the mutation request and clears all
transient state regardless of whether the policy later accepts it;
Cancel clears without emitting. A gesture abandoned without a drop
leaves no residual highlight.

# Picker

A single selected index over a fixed-order list. Down/Up clamp to the
list bounds with no wraparound, Confirm emits the entry at the current
index, and Populate resets the index to 0. The viewport offset is
recomputed after every transition so the selection stays visible.
*/
package gesture
