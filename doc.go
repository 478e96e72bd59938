// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Claim Desk server.

Claim Desk records insurance claims: a list of claims kept for the life of
the process, a draft that a form binds to, and a submit operation that
validates the draft and puts the new claim at the top of the list.

# Starting the Server

No settings are required:

	go run .

Or with flags:

	go run . -p 3318 -s sqlite -ids sequence

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - STORE_TYPE (-s): memory or sqlite (default: memory)
  - ID_STRATEGY (-ids): ulid, uuid or sequence (default: ulid)
  - PAYOUT_DEDUCTIBLE (-deductible): Deductible for estimates (default: 500)

Values can also come from a .env file (-env).

Both stores live in memory. Claims are gone when the process exits.

# Architecture

  - registry: Claim list, draft, validation and submission
  - store: Claim storage (slice or in-memory SQLite)
  - db: SQLite schema
  - idgen: Claim id generators
  - payout: Payout estimates
  - metrics: Prometheus submission counters
  - handlers: JSON API and HTML form handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request logging, CORS, JSON helpers
  - models: Domain, request and response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
