// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/claim-desk/cliparse"
	"github.com/danielhkuo/claim-desk/handlers"
	"github.com/danielhkuo/claim-desk/metrics"
	"github.com/danielhkuo/claim-desk/middleware"
	"github.com/danielhkuo/claim-desk/registry"
)

func NewRouter(reg *registry.Registry, cfg cliparse.Config, rec *metrics.Recorder) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	claimHandler := handlers.NewClaimHandler(reg, cfg)
	formHandler := handlers.NewFormHandler(reg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if rec != nil {
		mux.Handle("GET /metrics", rec.Handler())
	}

	// Claims
	mux.HandleFunc("GET /claim-types", middleware.WithLogging(claimHandler.ClaimTypes))
	mux.HandleFunc("GET /claims", middleware.WithLogging(claimHandler.ListClaims))
	mux.HandleFunc("POST /claims", middleware.WithLogging(claimHandler.CreateClaim))
	mux.HandleFunc("GET /claims/{id}", middleware.WithLogging(claimHandler.GetClaim))
	mux.HandleFunc("GET /claims/{id}/payout", middleware.WithLogging(claimHandler.GetPayoutEstimate))

	// Draft binding
	mux.HandleFunc("GET /draft", middleware.WithLogging(claimHandler.GetDraft))
	mux.HandleFunc("PATCH /draft", middleware.WithLogging(claimHandler.UpdateDraft))
	mux.HandleFunc("POST /draft/submit", middleware.WithLogging(claimHandler.SubmitDraft))

	// HTML form
	mux.HandleFunc("GET /{$}", middleware.WithLogging(formHandler.ShowForm))
	mux.HandleFunc("POST /form", middleware.WithLogging(formHandler.SubmitForm))

	return mux
}
