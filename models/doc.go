// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AssignRequest: ink_index, date
  - MoveRequest: from_date, to_date
  - SwapRequest: date_a, date_b
  - RandomizeRequest: year, optional seed
  - SetThemeRequest: month, theme, description
  - DragStartRequest / DragEnterRequest / DragDropRequest: gesture events
  - PickerPopulateRequest / PickerKeyRequest: picker events
  - ChatRequest: message

# Response Types

Types for JSON responses:

  - InkListResponse: total, inks, cache_info
  - MonthResponse: year, month, theme, cells
  - YearSummaryResponse: coverage counts per tier
  - RandomizeResponse: placed, pinned, seed
  - DragStateResponse / PickerStateResponse: gesture state after an event
  - CommitResponse: date, ink_id
  - ChatResponse: reply, tool_calls
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Ink: one collected ink, flattened from the catalog API
  - CellData: everything needed to render one calendar cell
  - ThemeInfo: month theme with source tier (session, api, none)
  - ChatMessage: persisted chat transcript entry

# Constants

Database types:

	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"

Theme sources:

	ThemeSourceSession = "session"
	ThemeSourceAPI     = "api"
	ThemeSourceNone    = "none"
*/
package models
