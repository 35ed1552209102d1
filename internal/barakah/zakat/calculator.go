package zakat

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Rate is the Zakat rate applied to qualifying wealth.
	Rate = 0.025

	// GoldNisabGrams is the gold weight the cash nisab is pegged to.
	GoldNisabGrams = 85.0
)

// AssetDeclaration maps an asset category (cash, gold, silver, investments,
// ...) to a declared amount in MYR. Values must already be non-negative;
// SanitizeAmount enforces that at the input boundary.
type AssetDeclaration map[string]float64

// Result is the outcome of one Zakat calculation. Recomputed on every input
// change, never cached.
type Result struct {
	Total   float64 `json:"total"`
	Nisab   float64 `json:"nisab"`
	Payable float64 `json:"payable"`
}

// Calculate computes whether Zakat is due on the declared assets and how
// much. The applicable nisab is the lower of the gold- and silver-based
// thresholds; the cash threshold is display-only. Pure function: identical
// inputs yield identical results, and no rounding is applied here --
// presentation layers round for display only.
func Calculate(assets AssetDeclaration, th Threshold) Result {
	var total float64
	for _, amount := range assets {
		total += amount
	}

	nisab := math.Min(th.Gold, th.Silver)

	var payable float64
	if total >= nisab {
		payable = total * Rate
	}

	return Result{Total: total, Nisab: nisab, Payable: payable}
}

// SanitizeAmount parses one raw asset value from user input. Non-numeric,
// negative, NaN and infinite values all coerce to 0 so the non-negativity
// invariant holds before summation.
func SanitizeAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
