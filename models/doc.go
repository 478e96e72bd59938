// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Domain Types

  - Claim: a submitted insurance claim (id, policy_number, type, amount,
    description, status, created_at)
  - Draft: the editable staging record for a claim not yet submitted
  - AmountInput: the amount exactly as entered, parsed only on submission

AmountInput accepts a JSON number, a JSON string, or null:

	{"amount": 250}
	{"amount": "250"}
	{"amount": null}

Blank input counts as no amount.

# Request Types

  - DraftUpdate: field-level draft changes; nil fields are left alone

# Response Types

  - ClaimListResponse: claims (newest first), count
  - ClaimTypesResponse: types
  - PayoutEstimateResponse: claim_id, gross_amount, deductible, net_amount,
    ruleset_version
  - ErrorResponse: error, message, field

# Constants

Claim types, in selector order:

	TypeVehicle  = "Vehicle"
	TypeHealth   = "Health"
	TypeProperty = "Property"
	TypeTravel   = "Travel"
	TypeLife     = "Life"

Status values:

	StatusSubmitted   = "Submitted"
	StatusUnderReview = "Under Review"
	StatusApproved    = "Approved"
	StatusDenied      = "Denied"
*/
package models
