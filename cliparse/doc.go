// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - StoreType: memory or sqlite, both in-process only (default: memory)
  - IDStrategy: ulid, uuid or sequence (default: ulid)
  - Deductible: Deductible for payout estimates (default: 500)

# CLI Flags

	-p            Server port
	-s            Claim store
	-ids          Claim id strategy
	-deductible   Payout deductible
	-env          Env file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	STORE_TYPE        → -s
	ID_STRATEGY       → -ids
	PAYOUT_DEDUCTIBLE → -deductible

Precedence, highest first: CLI flags, the process environment, the env file,
defaults. A missing env file is ignored.

# Validation

ParseFlags returns an error for an out-of-range port, an unknown store type
or id strategy, or a negative deductible.
*/
package cliparse
