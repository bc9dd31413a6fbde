// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog fetches the ink collection from the Fountain Pen
Companion API and caches it on disk.

# Client

The client follows the JSON:API pagination until the last page and
flattens each resource's nested attributes into a models.Ink:

	client := catalog.NewClient(token)
	inks, err := client.FetchAllInks(ctx)

UpdatePrivateComment patches the private_comment field of one ink —
the field where swatch pins are stored — and is what commits a
session assignment back to the catalog.

# Cache

Cache stores the fetched collection as a JSON file with a timestamp,
so restarts do not re-fetch the whole collection:

	cache := catalog.NewCache("")
	if data := cache.Load(); data != nil {
		inks = data.Inks
	}

Info() renders a human-readable age ("Cached: 342 inks from 3 hours
ago") for surfacing in the UI.
*/
package catalog
