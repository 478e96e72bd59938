// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the claim desk.

# Handler Types

  - ClaimHandler: JSON API over the registry (claims, draft, payout)
  - FormHandler: Server-rendered claim list and form

	claimHandler := handlers.NewClaimHandler(reg, cfg)
	formHandler := handlers.NewFormHandler(reg)

# Submission Responses

	201 Created               - the new claim
	422 Unprocessable Entity  - validation failed; body names the field
	400 Bad Request           - body is not JSON
	413 Request Too Large     - body over middleware.MaxBodyBytes
	500 Internal Server Error - store failure

A 422 body looks like:

	{"error":"Unprocessable Entity","message":"amount is required","field":"amount"}

# Draft Binding

PATCH /draft changes only the fields present in the body. POST /draft/submit
submits the result and clears the draft on success. POST /claims submits a
complete draft from the body without touching the held one.

# HTML Form

GET / renders the list and the form. POST /form binds the posted fields to
the draft and submits it: success redirects to / with 303, failure renders
the form again with 422, the entered values, and the reason.
*/
package handlers
