// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/claim-desk/models"
)

// Draft fields named in validation errors
const (
	FieldPolicyNumber = "policy_number"
	FieldType         = "type"
	FieldAmount       = "amount"
)

var (
	ErrMissingPolicyNumber = errors.New("policy number is required")
	ErrMissingType         = errors.New("claim type is required")
	ErrUnknownType         = errors.New("claim type is not one of the known types")
	ErrMissingAmount       = errors.New("amount is required")
	ErrInvalidAmount       = errors.New("amount must be a number")
	ErrNonPositiveAmount   = errors.New("amount must be greater than zero")
)

// ValidationError reports the first draft field that failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// validated is a draft that passed every rule, normalized for storage.
type validated struct {
	policyNumber string
	claimType    string
	amount       float64
	description  string
}

func validateDraft(d models.Draft) (validated, error) {
	policy := strings.TrimSpace(d.PolicyNumber)
	if policy == "" {
		return validated{}, &ValidationError{Field: FieldPolicyNumber, Err: ErrMissingPolicyNumber}
	}

	claimType, err := canonicalType(d.Type)
	if err != nil {
		return validated{}, &ValidationError{Field: FieldType, Err: err}
	}

	amount, err := parseAmount(d.Amount)
	if err != nil {
		return validated{}, &ValidationError{Field: FieldAmount, Err: err}
	}

	return validated{
		policyNumber: policy,
		claimType:    claimType,
		amount:       amount,
		description:  d.Description,
	}, nil
}

// canonicalType matches s against the claim types ignoring case.
func canonicalType(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingType
	}
	for _, t := range models.ClaimTypes {
		if strings.EqualFold(s, t) {
			return t, nil
		}
	}
	return "", ErrUnknownType
}

// parseAmount fails closed: anything that is not a finite number above zero
// is refused.
func parseAmount(a models.AmountInput) (float64, error) {
	if !a.Present() {
		return 0, ErrMissingAmount
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(a.Raw()), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	if v <= 0 {
		return 0, ErrNonPositiveAmount
	}
	return v, nil
}
