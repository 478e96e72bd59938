// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/claim-desk/cliparse"
	"github.com/danielhkuo/claim-desk/middleware"
	"github.com/danielhkuo/claim-desk/models"
	"github.com/danielhkuo/claim-desk/payout"
	"github.com/danielhkuo/claim-desk/registry"
	"github.com/danielhkuo/claim-desk/store"
)

type ClaimHandler struct {
	reg *registry.Registry
	cfg cliparse.Config
}

func NewClaimHandler(reg *registry.Registry, cfg cliparse.Config) *ClaimHandler {
	return &ClaimHandler{reg: reg, cfg: cfg}
}

// ListClaims handles GET /claims
func (h *ClaimHandler) ListClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.reg.Claims(r.Context())
	if err != nil {
		slog.Error("failed to list claims", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list claims")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ClaimListResponse{
		Claims: claims,
		Count:  len(claims),
	})
}

// GetClaim handles GET /claims/{id}
func (h *ClaimHandler) GetClaim(w http.ResponseWriter, r *http.Request) {
	claim, ok := h.lookup(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, claim)
}

// GetPayoutEstimate handles GET /claims/{id}/payout
func (h *ClaimHandler) GetPayoutEstimate(w http.ResponseWriter, r *http.Request) {
	claim, ok := h.lookup(w, r)
	if !ok {
		return
	}

	est := payout.For(claim, h.cfg.Deductible)
	middleware.JSONResponse(w, http.StatusOK, models.PayoutEstimateResponse{
		ClaimID:        claim.ID,
		GrossAmount:    est.Gross,
		Deductible:     est.Deductible,
		NetAmount:      est.Net,
		RulesetVersion: est.RulesetVersion,
	})
}

// CreateClaim handles POST /claims
// The body is a complete draft; the held draft is not touched.
func (h *ClaimHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	var draft models.Draft
	if err := middleware.ParseJSONBody(w, r, &draft); err != nil {
		writeBodyError(w, err)
		return
	}

	claim, err := h.reg.Submit(r.Context(), draft)
	if err != nil {
		writeSubmitError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, claim)
}

// ClaimTypes handles GET /claim-types
func (h *ClaimHandler) ClaimTypes(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ClaimTypesResponse{
		Types: h.reg.ClaimTypes(),
	})
}

// GetDraft handles GET /draft
func (h *ClaimHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.reg.Draft())
}

// UpdateDraft handles PATCH /draft
func (h *ClaimHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var update models.DraftUpdate
	if err := middleware.ParseJSONBody(w, r, &update); err != nil {
		writeBodyError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.reg.UpdateDraft(update))
}

// SubmitDraft handles POST /draft/submit
func (h *ClaimHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	claim, err := h.reg.SubmitDraft(r.Context())
	if err != nil {
		writeSubmitError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, claim)
}

func (h *ClaimHandler) lookup(w http.ResponseWriter, r *http.Request) (models.Claim, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "claim id is required")
		return models.Claim{}, false
	}

	claim, err := h.reg.Claim(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Claim not found")
		return models.Claim{}, false
	}
	if err != nil {
		slog.Error("failed to get claim", "claim_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get claim")
		return models.Claim{}, false
	}
	return claim, true
}

func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
}

// writeSubmitError maps a submission failure to a response.
func writeSubmitError(w http.ResponseWriter, err error) {
	var ve *registry.ValidationError
	if errors.As(err, &ve) {
		middleware.FieldErrorResponse(w, http.StatusUnprocessableEntity, ve.Field, ve.Err.Error())
		return
	}

	slog.Error("failed to submit claim", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit claim")
}
