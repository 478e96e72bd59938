// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/claim-desk/cliparse"
	"github.com/danielhkuo/claim-desk/idgen"
	"github.com/danielhkuo/claim-desk/models"
	"github.com/danielhkuo/claim-desk/registry"
	"github.com/danielhkuo/claim-desk/store"
)

// SeedID is the id of the seeded claim in registries from SetupTestRegistry
const SeedID = "1"

// FixedNow is the clock used by SetupTestRegistry
var FixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

// SetupTestRegistry creates a registry over a fresh memory store with
// sequential ids, so the seed claim is always SeedID.
func SetupTestRegistry(t *testing.T, opts ...registry.Option) *registry.Registry {
	t.Helper()

	opts = append([]registry.Option{
		registry.WithIDGenerator(idgen.Sequence(1)),
		registry.WithClock(func() time.Time { return FixedNow }),
	}, opts...)

	reg, err := registry.New(context.Background(), store.NewMemory(), opts...)
	if err != nil {
		t.Fatalf("Failed to create registry: %v", err)
	}
	return reg
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:       3318,
		StoreType:  store.TypeMemory,
		IDStrategy: idgen.StrategySequence,
		Deductible: 500,
	}
}

// ValidDraft returns a draft that passes validation
func ValidDraft() models.Draft {
	return models.Draft{
		PolicyNumber: "POL-99",
		Type:         models.TypeHealth,
		Amount:       models.NewAmount("250"),
		Description:  "x",
	}
}

// SubmitTestClaim adds a claim through the registry and returns it
func SubmitTestClaim(t *testing.T, reg *registry.Registry, d models.Draft) models.Claim {
	t.Helper()

	c, err := reg.Submit(context.Background(), d)
	if err != nil {
		t.Fatalf("Failed to submit test claim: %v", err)
	}
	return c
}

// ClaimCount returns the number of claims in the registry
func ClaimCount(t *testing.T, reg *registry.Registry) int {
	t.Helper()

	n, err := reg.Len(context.Background())
	if err != nil {
		t.Fatalf("Failed to count claims: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
