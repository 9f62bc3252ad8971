// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ids generates and validates record identifiers.

Habits, days and completions are keyed by random (version 4) UUIDs in
their canonical 36-character form:

	id := ids.New()

Identifiers arriving from clients are checked before they reach the
database:

	id, err := ids.Parse(r.PathValue("id"))
	if err != nil {
		// 400 Bad Request
	}

Parse lowercases the id so both spellings hit the same row.
*/
package ids
