// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/claim-desk/metrics"
	"github.com/danielhkuo/claim-desk/middleware"
	"github.com/danielhkuo/claim-desk/registry"
	"github.com/danielhkuo/claim-desk/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	mux := NewRouter(reg, testutil.GetTestConfig(), nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	mux := NewRouter(reg, testutil.GetTestConfig(), nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<form") {
		t.Error("Expected the claim form on the root page")
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected a request id header on logged routes")
	}
}

func TestUnknownPathNotFound(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	mux := NewRouter(reg, testutil.GetTestConfig(), nil)

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	mux := NewRouter(reg, testutil.GetTestConfig(), nil)

	// 400, 404 and 422 are all valid responses depending on handler logic
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/form"},

		{"GET", "/claim-types"},
		{"GET", "/claims"},
		{"POST", "/claims"},
		{"GET", "/claims/test-id"},
		{"GET", "/claims/test-id/payout"},

		{"GET", "/draft"},
		{"PATCH", "/draft"},
		{"POST", "/draft/submit"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	mux := NewRouter(reg, testutil.GetTestConfig(), nil)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},          // Only GET is defined
		{"DELETE", "/claims/test-id"}, // Only GET is defined
		{"PUT", "/draft"},             // GET and PATCH are defined
		{"GET", "/draft/submit"},      // Only POST is defined
		{"POST", "/claim-types"},      // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	reg := testutil.SetupTestRegistry(t)
	mux := NewRouter(reg, testutil.GetTestConfig(), nil)

	t.Run("claim ID extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/claims/"+testutil.SeedID, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for the seed claim, got %d. Body: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "POL-10021") {
			t.Errorf("Expected seed claim body, got %s", w.Body.String())
		}
	})

	t.Run("payout ID extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/claims/"+testutil.SeedID+"/payout", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
		}
	})
}

func TestMetricsEndpoint(t *testing.T) {
	rec := metrics.NewRecorder()
	reg := testutil.SetupTestRegistry(t, registry.WithObserver(rec))

	t.Run("registered with a recorder", func(t *testing.T) {
		mux := NewRouter(reg, testutil.GetTestConfig(), rec)

		body := `{"policy_number":"POL-1","type":"Life","amount":"10"}`
		req := testutil.MakeRequest("POST", "/claims", body, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)

		req = httptest.NewRequest("GET", "/metrics", nil)
		w = httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if !strings.Contains(w.Body.String(), `claimdesk_claims_submitted_total{type="Life"} 1`) {
			t.Errorf("Expected submitted counter in metrics output")
		}
	})

	t.Run("absent without a recorder", func(t *testing.T) {
		mux := NewRouter(reg, testutil.GetTestConfig(), nil)

		req := httptest.NewRequest("GET", "/metrics", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
