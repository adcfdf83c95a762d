package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/nmehta6/wastelink/internal/mathx"
)

// PriceScore rates a listed price against a buyer budget range.
//
// Piecewise:
//   - listedPrice == 0 (free material) is a perfect 100 regardless of budget.
//   - listedPrice <= budgetMax earns min(100, 100 × (1 + (budgetMax −
//     listed)/budgetMax)): cheaper than the ceiling is rewarded, capped at 100.
//   - listedPrice > budgetMax is penalized by its distance from the budget
//     midpoint: 100 × (1 − |listed − mid|/mid), floored at 0.
func PriceScore(listedPrice, budgetMin, budgetMax float64) (float64, error) {
	if listedPrice < 0 {
		return 0, fmt.Errorf("%w: listed_price=%s", ErrNegativePrice, mathx.Num(listedPrice))
	}
	if budgetMax <= 0 {
		return 0, fmt.Errorf("%w: budget_max=%s", ErrInvalidBudget, mathx.Num(budgetMax))
	}
	if budgetMin < 0 || budgetMin > budgetMax {
		return 0, fmt.Errorf("%w: budget_min=%s budget_max=%s",
			ErrInvalidBudget, mathx.Num(budgetMin), mathx.Num(budgetMax))
	}

	if listedPrice == 0 {
		return 100, nil
	}

	if listedPrice <= budgetMax {
		bonus := 100 * (1 + (budgetMax-listedPrice)/budgetMax)
		return mathx.Round2(math.Min(100, bonus)), nil
	}

	mid := (budgetMin + budgetMax) / 2
	penalty := 100 * (1 - math.Abs(listedPrice-mid)/mid)
	return mathx.Round2(math.Max(0, penalty)), nil
}

// distanceScore zone boundaries as fractions of the acceptable maximum.
const (
	distanceFlatZone = 0.5 // within half the max: full score
	distanceTailCap  = 1.2 // score reaches 0 at 1.2 × max, not at max
)

// DistanceScore rates a haul distance against the buyer's acceptable
// maximum.
//
// Three zones:
//   - d <= 50% of max: flat 100.
//   - 50%–100% of max: linear decay from 100 down to 50.
//   - beyond max: steep tail max(0, 100 × (1.2 − d/max)), reaching 0 at
//     1.2 × max. The graceful tail past the stated maximum is deliberate;
//     listings just over the line still rank above far-away ones.
func DistanceScore(distanceKm, maxAcceptableKm float64) (float64, error) {
	if maxAcceptableKm <= 0 {
		return 0, fmt.Errorf("%w: max_acceptable_km=%s", ErrInvalidDistance, mathx.Num(maxAcceptableKm))
	}
	if distanceKm < 0 {
		return 0, fmt.Errorf("%w: distance_km=%s", ErrInvalidDistance, mathx.Num(distanceKm))
	}

	ratio := distanceKm / maxAcceptableKm
	switch {
	case ratio <= distanceFlatZone:
		return 100, nil
	case ratio <= 1:
		return mathx.Round2(150 - 100*ratio), nil
	default:
		return mathx.Round2(math.Max(0, 100*(distanceTailCap-ratio))), nil
	}
}

// quantityFit constants.
const (
	quantityOverBase  = 80.0 // base score for oversupply above the range
	quantityOverBonus = 20.0 // bonus cap for oversupply, total capped at 100
)

// QuantityFit rates a listed quantity against the buyer's required range.
//
// Inside [requiredMin, requiredMax] the fit is perfect (100). Below the
// minimum the score decreases proportionally (listed/requiredMin × 100).
// Above the maximum, oversupply earns a capped bonus: base 80 plus up to
// 20 points scaled by how far the listing sits above the range midpoint,
// never exceeding 100.
func QuantityFit(listed, requiredMin, requiredMax float64) (float64, error) {
	if listed < 0 {
		return 0, fmt.Errorf("%w: listed=%s", ErrInvalidQuantity, mathx.Num(listed))
	}
	if requiredMax <= 0 {
		return 0, fmt.Errorf("%w: required_max=%s", ErrInvalidQuantity, mathx.Num(requiredMax))
	}
	if requiredMin < 0 || requiredMin > requiredMax {
		return 0, fmt.Errorf("%w: required_min=%s required_max=%s",
			ErrInvalidQuantity, mathx.Num(requiredMin), mathx.Num(requiredMax))
	}

	if listed >= requiredMin && listed <= requiredMax {
		return 100, nil
	}

	if listed < requiredMin {
		return mathx.Round2(listed / requiredMin * 100), nil
	}

	mid := (requiredMin + requiredMax) / 2
	bonus := math.Min(quantityOverBonus, quantityOverBonus*(listed-mid)/mid)
	return mathx.Round2(math.Min(100, quantityOverBase+bonus)), nil
}

// Material compatibility tier values. Exact tiers are contractual.
const (
	materialMismatch      = 0.0
	materialSubtypeOther  = 70.0
	materialSubtypeAbsent = 80.0
	materialNoPreference  = 90.0
	materialPreferred     = 100.0
)

// MaterialSpec describes the buyer's material requirement.
type MaterialSpec struct {
	// NeededCategory is the required top-level category (e.g. "plastic").
	NeededCategory string `json:"neededCategory"`

	// NeededSubTypes are the preferred subtypes, if any (e.g. "HDPE").
	NeededSubTypes []string `json:"neededSubTypes,omitempty"`

	// ExcludedTypes are subtypes the buyer cannot process.
	ExcludedTypes []string `json:"excludedTypes,omitempty"`
}

// MaterialCompatibility rates a listing's material against the buyer's
// requirement. Never fails; incompatibility is a score of 0.
//
// Tiers: category mismatch or excluded subtype → 0; no subtype preference
// declared → 90; preferred subtype match → 100; subtype present but not
// preferred → 70; listing declares no subtype against a stated preference
// → base 80.
func MaterialCompatibility(listedCategory, listedSubType string, spec MaterialSpec) float64 {
	if !strings.EqualFold(listedCategory, spec.NeededCategory) {
		return materialMismatch
	}

	for _, excluded := range spec.ExcludedTypes {
		if strings.EqualFold(listedSubType, excluded) && listedSubType != "" {
			return materialMismatch
		}
	}

	if len(spec.NeededSubTypes) == 0 {
		return materialNoPreference
	}

	if listedSubType == "" {
		return materialSubtypeAbsent
	}

	for _, preferred := range spec.NeededSubTypes {
		if strings.EqualFold(listedSubType, preferred) {
			return materialPreferred
		}
	}

	return materialSubtypeOther
}
