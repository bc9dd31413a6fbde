// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package handlers implements the HTTP endpoints. Handlers are thin:
// they parse requests, call the pure schedule/gesture/swatch logic
// through the shared Store, persist the resulting session tier, and
// render JSON with the middleware helpers.
//
// The Store is the single synchronization point for the in-memory ink
// collection; assignment state itself lives in the database and in
// the catalog's private comments, so handlers rebuild the board per
// request rather than caching it.
package handlers
