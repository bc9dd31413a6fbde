// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package swatch parses and builds the swatch pin format stored in an
ink's private comment.

# Wire Format

A comment is a JSON object whose keys match "swatch<YYYY>". Two value
shapes are accepted:

	{"swatch2026": "2026-01-15"}

	{"swatch2026": {"date": "2026-01-15", "theme": "Blues", "theme_description": "Cool winter tones"}}

The legacy string form carries no theme. Other keys in the object are
preserved untouched by BuildComment and RemoveYear, so multiple years
and unrelated data can coexist in one comment.

# Parsing

ParsePins extracts the pins declared for one year:

	pins, warnings := swatch.ParsePins(ink.PrivateComment, 2026)

Malformed entries (bad date, wrong value shape, missing date field)
are reported as warnings and skipped; they never abort parsing of
sibling keys. A comment that is not JSON at all is treated as having
no pins.
*/
package swatch
