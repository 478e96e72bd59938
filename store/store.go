// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store keeps claims for the lifetime of the process.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/claim-desk/models"
)

// Store type names accepted by Open
const (
	TypeMemory = "memory"
	TypeSQLite = "sqlite"
)

var (
	ErrNotFound    = errors.New("claim not found")
	ErrDuplicateID = errors.New("duplicate claim id")
)

// Store holds claims newest first.
type Store interface {
	// Insert places c ahead of every claim already stored.
	Insert(ctx context.Context, c models.Claim) error
	List(ctx context.Context) ([]models.Claim, error)
	Get(ctx context.Context, id string) (models.Claim, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// Open returns the store for a configured type.
func Open(storeType string) (Store, error) {
	switch storeType {
	case "", TypeMemory:
		return NewMemory(), nil
	case TypeSQLite:
		return NewSQLite()
	default:
		return nil, fmt.Errorf("unknown store type %q", storeType)
	}
}
