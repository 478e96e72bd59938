// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the claim desk.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(reg, cfg, recorder)

A nil recorder leaves /metrics unregistered.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Claims (JSON):

	GET  /claim-types        - Claim type labels for a selector
	GET  /claims             - All claims, newest first
	POST /claims             - Submit a complete draft in the body
	GET  /claims/{id}        - One claim
	GET  /claims/{id}/payout - Payout estimate

Draft binding (JSON):

	GET   /draft         - Current draft
	PATCH /draft         - Update some draft fields
	POST  /draft/submit  - Submit the current draft

HTML form:

	GET  /      - Claim list and form
	POST /form  - Form submission
*/
package router
