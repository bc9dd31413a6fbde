// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the inkyear API server.

Inkyear plans a fountain pen ink collection across a calendar year:
one ink per day, organized into monthly themes. Assignments come in
two tiers — pins saved into the catalog's private comments (protected)
and experimental session assignments (mutable, stored locally) — and
an AI assistant can rearrange the session tier through tool calls.

# Starting the Server

The server runs with no required configuration (sqlite file database,
cached collection):

	go run .

Or with flags:

	go run . -p 8191 -y 2027 -t postgres -d "postgres://..."

# Configuration

Optional settings (flags or environment, .env supported):

  - PORT (-p): Server port (default: 8191)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): File path or connection string
  - PLAN_YEAR (-y): Year to plan (default: next year)
  - CACHE_FILE (-cache): Ink cache location
  - FPC_API_TOKEN (-catalog-token): Fountain Pen Companion API token;
    without it the app runs from cache and cannot refresh or pin
  - GEMINI_API_KEY (-gemini-key): Enables the chat assistant
  - GEMINI_MODEL (-gemini-model): Model override
  - FILL_SEED (-seed): Fixed seed for reproducible randomize

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers and the shared Store
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - swatch: Pin parsing and comment round-tripping
  - schedule: Two-tier board, fill engine, protection policy
  - gesture: Server-side drag and picker state machines
  - catalog: Fountain Pen Companion client and disk cache
  - chat: Gemini assistant with assignment tools
  - auth: Token generation and validation
*/
package main
