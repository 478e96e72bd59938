// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the in-memory SQLite database backing the sqlite claim store.

# Opening

	conn, err := db.OpenMemory()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

The database lives only as long as the process. Nothing is written to disk.

# Schema Creation

CreateSchema is safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - claim: one row per claim; seq records insertion order

CHECK constraints mirror the registry's validation rules (non-empty policy
number, known type and status, positive amount), so a row that slipped past
validation is still refused.
*/
package db
