// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package chat implements the planning assistant: a Gemini-backed
// conversation loop whose tools read and mutate the session tier of
// the assignment board.
//
// A turn runs against a State snapshot. Tools never touch the API
// tier; protection is enforced by the schedule package underneath, so
// a confused model cannot overwrite saved assignments. The HTTP layer
// persists the mutated session after each turn.
package chat
