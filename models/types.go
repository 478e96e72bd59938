// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Claim type labels
const (
	TypeVehicle  = "Vehicle"
	TypeHealth   = "Health"
	TypeProperty = "Property"
	TypeTravel   = "Travel"
	TypeLife     = "Life"
)

// ClaimTypes lists the selectable claim types in display order.
var ClaimTypes = []string{TypeVehicle, TypeHealth, TypeProperty, TypeTravel, TypeLife}

// ClaimStatus represents where a claim is in review.
type ClaimStatus string

// Claim status constants
const (
	StatusSubmitted   ClaimStatus = "Submitted"
	StatusUnderReview ClaimStatus = "Under Review"
	StatusApproved    ClaimStatus = "Approved"
	StatusDenied      ClaimStatus = "Denied"
)

// Domain types

type Claim struct {
	ID           string      `json:"id"`
	PolicyNumber string      `json:"policy_number"`
	Type         string      `json:"type"`
	Amount       float64     `json:"amount"`
	Description  string      `json:"description"`
	Status       ClaimStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Draft is the editable staging record for a claim that has not been submitted.
type Draft struct {
	PolicyNumber string      `json:"policy_number"`
	Type         string      `json:"type"`
	Amount       AmountInput `json:"amount"`
	Description  string      `json:"description"`
}

// IsZero reports whether every draft field is empty.
func (d Draft) IsZero() bool {
	return d.PolicyNumber == "" && d.Type == "" && !d.Amount.Present() && d.Description == ""
}

var errAmountJSON = errors.New("amount must be a number, a string, or null")

// AmountInput holds the amount exactly as entered. Blank input means no
// amount was given; parsing happens at submission.
type AmountInput struct {
	raw string
}

// NewAmount returns an AmountInput holding raw.
func NewAmount(raw string) AmountInput {
	return AmountInput{raw: raw}
}

// AmountOf returns an AmountInput holding the decimal form of v.
func AmountOf(v float64) AmountInput {
	return NewAmount(strconv.FormatFloat(v, 'f', -1, 64))
}

// Present reports whether an amount was entered.
func (a AmountInput) Present() bool { return strings.TrimSpace(a.raw) != "" }

// Raw returns the entered text, empty when absent.
func (a AmountInput) Raw() string { return a.raw }

func (a AmountInput) MarshalJSON() ([]byte, error) {
	if !a.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(a.raw)
}

func (a *AmountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = AmountInput{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = NewAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errAmountJSON
	}
	*a = NewAmount(n.String())
	return nil
}

// Request types

// DraftUpdate changes only the fields that are non-nil. In JSON an absent
// key leaves the field alone and null clears it.
type DraftUpdate struct {
	PolicyNumber *string      `json:"policy_number,omitempty"`
	Type         *string      `json:"type,omitempty"`
	Amount       *AmountInput `json:"amount,omitempty"`
	Description  *string      `json:"description,omitempty"`
}

func (u *DraftUpdate) UnmarshalJSON(data []byte) error {
	type plain DraftUpdate
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	// encoding/json leaves a pointer nil for null, which would read as absent
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	isNull := func(key string) bool {
		raw, ok := keys[key]
		return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
	}
	if isNull("policy_number") {
		p.PolicyNumber = new(string)
	}
	if isNull("type") {
		p.Type = new(string)
	}
	if isNull("amount") {
		p.Amount = &AmountInput{}
	}
	if isNull("description") {
		p.Description = new(string)
	}

	*u = DraftUpdate(p)
	return nil
}

// Response types

type ClaimTypesResponse struct {
	Types []string `json:"types"`
}

type ClaimListResponse struct {
	Claims []Claim `json:"claims"`
	Count  int     `json:"count"`
}

type PayoutEstimateResponse struct {
	ClaimID        string  `json:"claim_id"`
	GrossAmount    float64 `json:"gross_amount"`
	Deductible     float64 `json:"deductible"`
	NetAmount      float64 `json:"net_amount"`
	RulesetVersion string  `json:"ruleset_version"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}
