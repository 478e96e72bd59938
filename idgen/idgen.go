// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package idgen generates claim identifiers.
package idgen

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Strategy names accepted by ByName
const (
	StrategyULID     = "ulid"
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

// Generator produces unique string identifiers.
type Generator func() string

// ULID returns a Generator of monotonic ULIDs. IDs made within the same
// millisecond still sort in creation order and never repeat.
func ULID() Generator {
	var mu sync.Mutex
	entropy := ulid.Monotonic(rand.Reader, 0)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	}
}

// UUIDv7 returns a Generator of RFC 9562 UUID v7 strings.
func UUIDv7() Generator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

// Sequence returns a Generator that counts up from start.
func Sequence(start uint64) Generator {
	var n atomic.Uint64
	n.Store(start)
	return func() string {
		return strconv.FormatUint(n.Add(1)-1, 10)
	}
}

// ByName returns the generator for a configured strategy.
func ByName(name string) (Generator, error) {
	switch name {
	case "", StrategyULID:
		return ULID(), nil
	case StrategyUUID:
		return UUIDv7(), nil
	case StrategySequence:
		return Sequence(1), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", name)
	}
}
