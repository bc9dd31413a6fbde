// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schedule holds the assignment engine: placing a collection of
inks onto the days of one year and mutating that placement safely.

# Two-Tier Board

Assignments live on a Board with two tiers:

  - API: derived from swatch pins in ink comments. Protected — no
    mutation may touch these dates.
  - Session: experimental assignments, freely mutable until committed.

Merged() combines both with API precedence. Both tiers map date
strings to ink indices and are injective in both directions.

# Filling a Year

Fill places every ink in two phases:

 1. Pinning: inks claim their pinned dates in input order. On a
    conflict the first ink processed keeps the date and the later one
    falls through to phase 2 (a policy choice, not an error).
 2. Fill: the unclaimed dates are shuffled with the injected random
    source and the remaining inks are placed one-to-one.

More inks than days yields a CapacityError before any fill happens.
The random source is injected so tests can fix a seed.

# Mutations

Move covers assign, unassign, and move depending on which dates are
set; Swap exchanges two dates. Both are pure: they return a new
session map and a MoveResult, never modifying the board. Touching a
protected date is rejected with Protected set in the result.
*/
package schedule
