// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/danielhkuo/claim-desk/idgen"
	"github.com/danielhkuo/claim-desk/models"
	"github.com/danielhkuo/claim-desk/store"
)

// Observer is told about every submission outcome.
type Observer interface {
	ClaimAccepted(claimType string)
	ClaimRejected(field string)
}

type nopObserver struct{}

func (nopObserver) ClaimAccepted(string) {}
func (nopObserver) ClaimRejected(string) {}

// SeedClaim returns the example claim a new registry starts with.
func SeedClaim(id string, createdAt time.Time) models.Claim {
	return models.Claim{
		ID:           id,
		PolicyNumber: "POL-10021",
		Type:         models.TypeVehicle,
		Amount:       1800,
		Description:  "Rear bumper damage from parking lot accident.",
		Status:       models.StatusUnderReview,
		CreatedAt:    createdAt,
	}
}

// Registry owns the claim sequence and the current draft. All mutations
// happen under mu, so two submissions never read the same draft.
type Registry struct {
	mu       sync.Mutex
	store    store.Store
	draft    models.Draft
	newID    idgen.Generator
	now      func() time.Time
	observer Observer
}

type Option func(*Registry)

// WithIDGenerator replaces the default ULID generator.
func WithIDGenerator(gen idgen.Generator) Option {
	return func(r *Registry) { r.newID = gen }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

func WithObserver(o Observer) Option {
	return func(r *Registry) { r.observer = o }
}

// New returns a registry over s with an empty draft. An empty store is
// seeded with the example claim.
func New(ctx context.Context, s store.Store, opts ...Option) (*Registry, error) {
	r := &Registry{
		store:    s,
		newID:    idgen.ULID(),
		now:      time.Now,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}

	n, err := s.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count claims: %w", err)
	}
	if n == 0 {
		seed := SeedClaim(r.newID(), r.now())
		if err := s.Insert(ctx, seed); err != nil {
			return nil, fmt.Errorf("seed claim: %w", err)
		}
		slog.Info("registry seeded", "claim_id", seed.ID, "policy_number", seed.PolicyNumber)
	}

	return r, nil
}

// ClaimTypes returns the selectable claim type labels.
func (r *Registry) ClaimTypes() []string {
	return slices.Clone(models.ClaimTypes)
}

// Claims returns every claim, most recently submitted first.
func (r *Registry) Claims(ctx context.Context) ([]models.Claim, error) {
	return r.store.List(ctx)
}

// Claim returns the claim with the given id or store.ErrNotFound.
func (r *Registry) Claim(ctx context.Context, id string) (models.Claim, error) {
	return r.store.Get(ctx, id)
}

func (r *Registry) Len(ctx context.Context) (int, error) {
	return r.store.Count(ctx)
}

// Draft returns a copy of the current draft.
func (r *Registry) Draft() models.Draft {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draft
}

// UpdateDraft applies the non-nil fields of u and returns the new draft.
func (r *Registry) UpdateDraft(u models.DraftUpdate) models.Draft {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.applyLocked(u)
	return r.draft
}

// applyLocked requires r.mu.
func (r *Registry) applyLocked(u models.DraftUpdate) {
	if u.PolicyNumber != nil {
		r.draft.PolicyNumber = *u.PolicyNumber
	}
	if u.Type != nil {
		r.draft.Type = *u.Type
	}
	if u.Amount != nil {
		r.draft.Amount = *u.Amount
	}
	if u.Description != nil {
		r.draft.Description = *u.Description
	}
}

func (r *Registry) ResetDraft() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draft = models.Draft{}
}

// SubmitDraft turns the current draft into a claim at the front of the
// sequence and clears the draft. A *ValidationError leaves both untouched.
func (r *Registry) SubmitDraft(ctx context.Context) (models.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.insert(ctx, r.draft)
	if err != nil {
		return models.Claim{}, err
	}
	r.draft = models.Draft{}
	return c, nil
}

// UpdateAndSubmitDraft applies u to the draft and submits it in one step,
// the way a form post binds its fields and then submits. On a validation
// failure the update stays applied.
func (r *Registry) UpdateAndSubmitDraft(ctx context.Context, u models.DraftUpdate) (models.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.applyLocked(u)
	c, err := r.insert(ctx, r.draft)
	if err != nil {
		return models.Claim{}, err
	}
	r.draft = models.Draft{}
	return c, nil
}

// Submit is SubmitDraft for a draft the caller holds. The registry's own
// draft is not touched.
func (r *Registry) Submit(ctx context.Context, d models.Draft) (models.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(ctx, d)
}

// insert requires r.mu.
func (r *Registry) insert(ctx context.Context, d models.Draft) (models.Claim, error) {
	v, err := validateDraft(d)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			r.observer.ClaimRejected(ve.Field)
		}
		return models.Claim{}, err
	}

	c := models.Claim{
		ID:           r.newID(),
		PolicyNumber: v.policyNumber,
		Type:         v.claimType,
		Amount:       v.amount,
		Description:  v.description,
		Status:       models.StatusSubmitted,
		CreatedAt:    r.now(),
	}
	if err := r.store.Insert(ctx, c); err != nil {
		return models.Claim{}, fmt.Errorf("insert claim: %w", err)
	}

	r.observer.ClaimAccepted(c.Type)
	slog.Info("claim submitted",
		"claim_id", c.ID,
		"policy_number", c.PolicyNumber,
		"type", c.Type,
		"amount", c.Amount,
	)
	return c, nil
}
