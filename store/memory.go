// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/danielhkuo/claim-desk/models"
)

// Memory is a slice-backed Store. Claims are appended oldest first and read
// back in reverse.
type Memory struct {
	mu     sync.RWMutex
	claims []models.Claim
	byID   map[string]int
}

func NewMemory() *Memory {
	return &Memory{byID: make(map[string]int)}
}

func (m *Memory) Insert(_ context.Context, c models.Claim) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byID[c.ID]; exists {
		return ErrDuplicateID
	}
	m.byID[c.ID] = len(m.claims)
	m.claims = append(m.claims, c)
	return nil
}

func (m *Memory) List(_ context.Context) ([]models.Claim, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Claim, 0, len(m.claims))
	for i := len(m.claims) - 1; i >= 0; i-- {
		out = append(out, m.claims[i])
	}
	return out, nil
}

func (m *Memory) Get(_ context.Context, id string) (models.Claim, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byID[id]
	if !ok {
		return models.Claim{}, ErrNotFound
	}
	return m.claims[i], nil
}

func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.claims), nil
}

func (m *Memory) Close() error { return nil }
