// Package matching implements the multi-factor compatibility scoring between
// supply and demand listings: five sub-scores in [0,100] combined by a
// weighted sum. Match ranking drives marketplace behavior, so every tier
// value and piecewise branch here is contractual.
package matching

import (
	"fmt"
	"math"

	"github.com/nmehta6/wastelink/internal/mathx"
)

// WeightTolerance is how far the weight sum may drift from 1.0.
const WeightTolerance = 0.01

// Weights defines the relative importance of the five match factors.
// All weights must sum to 1.0 within WeightTolerance.
type Weights struct {
	Material    float64 `json:"material" yaml:"material"`
	Quantity    float64 `json:"quantity" yaml:"quantity"`
	Price       float64 `json:"price" yaml:"price"`
	Distance    float64 `json:"distance" yaml:"distance"`
	Reliability float64 `json:"reliability" yaml:"reliability"`
}

// DefaultWeights returns the marketplace's standard weight distribution.
func DefaultWeights() Weights {
	return Weights{
		Material:    0.30,
		Quantity:    0.20,
		Price:       0.20,
		Distance:    0.20,
		Reliability: 0.10,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Material + w.Quantity + w.Price + w.Distance + w.Reliability
}

// Validate checks that weights sum to 1.0 within tolerance and that none
// are negative.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > WeightTolerance {
		return fmt.Errorf("%w: sum=%s", ErrWeightsSum, mathx.Num(w.Sum()))
	}
	for name, v := range map[string]float64{
		"material":    w.Material,
		"quantity":    w.Quantity,
		"price":       w.Price,
		"distance":    w.Distance,
		"reliability": w.Reliability,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s=%s", ErrNegativeWeight, name, mathx.Num(v))
		}
	}
	return nil
}
