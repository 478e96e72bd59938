// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package payout estimates what a claim would pay out. Estimates are read-only.
package payout

import (
	"math"

	"github.com/danielhkuo/claim-desk/models"
)

const (
	DefaultDeductible = 500.0
	RulesetVersion    = "claims-rules-v1"
)

type Estimate struct {
	Gross          float64
	Deductible     float64
	Net            float64
	RulesetVersion string
}

// For computes the estimate for c. A negative deductible counts as zero.
func For(c models.Claim, deductible float64) Estimate {
	deductible = math.Max(deductible, 0)
	return Estimate{
		Gross:          c.Amount,
		Deductible:     deductible,
		Net:            math.Max(c.Amount-deductible, 0),
		RulesetVersion: RulesetVersion,
	}
}
