package matching

import (
	"fmt"
	"strings"

	"github.com/nmehta6/wastelink/internal/mathx"
)

// Factors are the five sub-scores feeding the weighted match score.
// Each must be within [0,100].
type Factors struct {
	MaterialCompatibility float64 `json:"materialCompatibility"`
	QuantityFit           float64 `json:"quantityFit"`
	PriceCompatibility    float64 `json:"priceCompatibility"`
	DistanceScore         float64 `json:"distanceScore"`
	ReliabilityScore      float64 `json:"reliabilityScore"`
}

// ScoreResult is the weighted match score plus its audit trail.
type ScoreResult struct {
	// Score is the final weighted score in [0,100], rounded to 1 decimal.
	Score float64 `json:"score"`

	// WeightedFactors holds each factor's weighted contribution.
	WeightedFactors map[string]float64 `json:"weightedFactors"`

	// Formula is the audit string quoted verbatim by ESG reports, with the
	// literal factor and weight values substituted in.
	Formula string `json:"formula"`
}

// factorOrder fixes the formula rendering order.
//
//nolint:gochecknoglobals // Compile-time constant ordering table.
var factorOrder = []string{"material", "quantity", "price", "distance", "reliability"}

// WeightedMatchScore combines the five factors into a single score:
// score = Σ factor_i × weight_i, clamped to [0,100], rounded to 1 decimal.
// Weights must sum to 1.0 within tolerance; every factor must be in [0,100],
// and a violation names the offending factor.
func WeightedMatchScore(f Factors, w Weights) (ScoreResult, error) {
	if err := w.Validate(); err != nil {
		return ScoreResult{}, err
	}

	values := map[string]float64{
		"material":    f.MaterialCompatibility,
		"quantity":    f.QuantityFit,
		"price":       f.PriceCompatibility,
		"distance":    f.DistanceScore,
		"reliability": f.ReliabilityScore,
	}
	weights := map[string]float64{
		"material":    w.Material,
		"quantity":    w.Quantity,
		"price":       w.Price,
		"distance":    w.Distance,
		"reliability": w.Reliability,
	}

	for _, key := range factorOrder {
		if values[key] < 0 || values[key] > 100 {
			return ScoreResult{}, fmt.Errorf("%w: %s=%s", ErrFactorOutOfRange, key, mathx.Num(values[key]))
		}
	}

	weighted := make(map[string]float64, len(values))
	terms := make([]string, 0, len(factorOrder))
	var sum float64
	for _, key := range factorOrder {
		contribution := values[key] * weights[key]
		weighted[key] = mathx.Round2(contribution)
		sum += contribution
		terms = append(terms, fmt.Sprintf("%s×%s", mathx.Num(values[key]), mathx.Num(weights[key])))
	}

	score := mathx.Round1(mathx.Clamp(sum, 0, 100))

	return ScoreResult{
		Score:           score,
		WeightedFactors: weighted,
		Formula:         mathx.Formula("Score", strings.Join(terms, " + "), score),
	}, nil
}
