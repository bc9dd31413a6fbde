// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates and validates the random identifiers used by
the API.

# Tokens

  - GenerateID: random hex IDs (chat message ids, misc keys)
  - GenerateSessionToken: URL-safe browser session tokens; gesture and
    picker state is scoped to one of these via the X-Session-Token
    header
  - ValidateSessionToken: shape check for client-supplied tokens

All randomness comes from crypto/rand.
*/
package auth
