// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/claim-desk/models"
	"github.com/danielhkuo/claim-desk/testutil"
)

// TestConcurrentClaimSubmissions verifies that simultaneous submissions
// each get a distinct id and none are lost
func TestConcurrentClaimSubmissions(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	handler := NewClaimHandler(reg, testutil.GetTestConfig())

	numClients := 20
	var successCount atomic.Int32
	var wg sync.WaitGroup
	ids := make(chan string, numClients)

	for i := 0; i < numClients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/claims", testutil.ValidDraft(), nil)
			w := httptest.NewRecorder()
			handler.CreateClaim(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
				var claim models.Claim
				if err := json.NewDecoder(w.Body).Decode(&claim); err != nil {
					t.Errorf("Failed to decode claim: %v", err)
					return
				}
				ids <- claim.ID
			} else {
				t.Errorf("Submission failed: %d - %s", w.Code, w.Body.String())
			}
		}()
	}

	wg.Wait()
	close(ids)

	if int(successCount.Load()) != numClients {
		t.Errorf("Expected %d successful submissions, got %d", numClients, successCount.Load())
	}

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("Duplicate claim id %s", id)
		}
		seen[id] = true
	}

	if got := testutil.ClaimCount(t, reg); got != numClients+1 {
		t.Errorf("Expected %d claims, got %d", numClients+1, got)
	}
}

// TestConcurrentDraftSubmit verifies a held draft becomes at most one claim
func TestConcurrentDraftSubmit(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	handler := NewClaimHandler(reg, testutil.GetTestConfig())

	req := testutil.MakeRequest("PATCH", "/draft", testutil.ValidDraft(), nil)
	w := httptest.NewRecorder()
	handler.UpdateDraft(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	numClients := 10
	var created, rejected atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numClients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/draft/submit", nil, nil)
			w := httptest.NewRecorder()
			handler.SubmitDraft(w, req)

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusUnprocessableEntity:
				rejected.Add(1)
			default:
				t.Errorf("Unexpected status %d - %s", w.Code, w.Body.String())
			}
		}()
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly 1 created claim, got %d", created.Load())
	}
	if rejected.Load() != int32(numClients-1) {
		t.Errorf("Expected %d rejections, got %d", numClients-1, rejected.Load())
	}
	if got := testutil.ClaimCount(t, reg); got != 2 {
		t.Errorf("Expected 2 claims, got %d", got)
	}
}
