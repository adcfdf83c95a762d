// Package economics implements the financial analysis functions: carbon
// abatement cost, internal rate of return via Newton-Raphson, and the
// eco-efficiency ratio with its qualitative bands.
package economics

import (
	"fmt"
	"math"

	"github.com/nmehta6/wastelink/internal/mathx"
)

// Newton-Raphson configuration for the IRR root-find.
const (
	// IRRInitialGuess is the starting discount rate.
	IRRInitialGuess = 0.1

	// IRRMaxIterations caps the Newton-Raphson loop.
	IRRMaxIterations = 100

	// IRRTolerance is the NPV magnitude at which the rate is accepted.
	IRRTolerance = 0.0001

	// irrMinDerivative guards against division by a vanishing NPV slope.
	irrMinDerivative = 1e-10
)

// Eco-efficiency band thresholds (INR of product value per kg CO2e).
// Exact thresholds are contractual.
const (
	EcoEfficiencyExcellent = 1000.0
	EcoEfficiencyGood      = 500.0
	EcoEfficiencyModerate  = 100.0
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation sentinels. Compare with errors.Is().
var (
	// ErrNoEmissionsReduction indicates an intervention that does not reduce
	// emissions; abatement cost is undefined for it.
	ErrNoEmissionsReduction = constError("intervention does not reduce emissions")

	// ErrTooFewCashFlows indicates fewer than two cash flows.
	ErrTooFewCashFlows = constError("at least two cash flows required")

	// ErrNoSignChange indicates a cash-flow series with no sign change, for
	// which no real IRR root exists.
	ErrNoSignChange = constError("cash flows must contain a sign change")

	// ErrNonPositiveInput indicates a non-positive value or impact input.
	ErrNonPositiveInput = constError("inputs must be positive")
)

// AbatementResult is the carbon abatement cost of an intervention.
type AbatementResult struct {
	// CostPerKgCO2e is Δcost / Δemissions in INR per kg CO2e avoided.
	CostPerKgCO2e float64 `json:"costPerKgCO2e"`

	// DeltaCostINR is the intervention's cost increase (may be negative when
	// the intervention also saves money).
	DeltaCostINR float64 `json:"deltaCostINR"`

	// DeltaEmissionsKg is the emissions avoided, always positive.
	DeltaEmissionsKg float64 `json:"deltaEmissionsKg"`

	// Formula is the audit string with substituted values.
	Formula string `json:"formula"`
}

// AbatementCost computes CAC = (costIntervention − costBaseline) /
// (emissionsBaseline − emissionsIntervention). It fails when the
// intervention does not reduce emissions, since the ratio is meaningless
// for a worsening intervention.
func AbatementCost(costBaseline, costIntervention, emissionsBaseline, emissionsIntervention float64) (AbatementResult, error) {
	deltaEmissions := emissionsBaseline - emissionsIntervention
	if deltaEmissions <= 0 {
		return AbatementResult{}, fmt.Errorf("%w: emissions_baseline=%s emissions_intervention=%s",
			ErrNoEmissionsReduction, mathx.Num(emissionsBaseline), mathx.Num(emissionsIntervention))
	}

	deltaCost := costIntervention - costBaseline
	cac := mathx.Round2(deltaCost / deltaEmissions)

	return AbatementResult{
		CostPerKgCO2e:    cac,
		DeltaCostINR:     mathx.Round2(deltaCost),
		DeltaEmissionsKg: mathx.Round2(deltaEmissions),
		Formula: mathx.Formula("CAC",
			fmt.Sprintf("(%s - %s) / (%s - %s)",
				mathx.Num(costIntervention), mathx.Num(costBaseline),
				mathx.Num(emissionsBaseline), mathx.Num(emissionsIntervention)),
			cac),
	}, nil
}

// IRRResult is the outcome of the internal rate of return root-find.
// Converged false is not an error: the caller may still want the best
// estimate reached when the iteration budget ran out.
type IRRResult struct {
	// Rate is the discount rate at which NPV nets to zero (0.1 = 10%).
	Rate float64 `json:"rate"`

	// Percent is Rate expressed in percent, rounded to 2 decimals.
	Percent float64 `json:"percent"`

	// Converged reports whether the root-find met the tolerance.
	Converged bool `json:"converged"`

	// Iterations is how many Newton-Raphson steps ran.
	Iterations int `json:"iterations"`
}

// InternalRateOfReturn finds the discount rate at which the cash-flow
// series nets to zero, by Newton-Raphson starting from IRRInitialGuess.
// Period 0 is the initial flow (typically a negative investment).
//
// The series must have at least two flows and at least one sign change
// relative to the first flow; without a sign change no real root exists.
// Non-convergence (iteration cap, or a vanishing NPV derivative) is
// reported through Converged, not as an error.
func InternalRateOfReturn(cashFlows []float64) (IRRResult, error) {
	if len(cashFlows) < 2 {
		return IRRResult{}, fmt.Errorf("%w: got %d", ErrTooFewCashFlows, len(cashFlows))
	}
	if !hasSignChange(cashFlows) {
		return IRRResult{}, ErrNoSignChange
	}

	rate := IRRInitialGuess
	for i := 1; i <= IRRMaxIterations; i++ {
		npv, derivative := npvAndDerivative(cashFlows, rate)

		if math.Abs(npv) < IRRTolerance {
			return IRRResult{
				Rate:       rate,
				Percent:    mathx.Round2(rate * 100),
				Converged:  true,
				Iterations: i,
			}, nil
		}

		if math.Abs(derivative) < irrMinDerivative {
			return IRRResult{
				Rate:       rate,
				Percent:    mathx.Round2(rate * 100),
				Converged:  false,
				Iterations: i,
			}, nil
		}

		rate -= npv / derivative
	}

	return IRRResult{
		Rate:       rate,
		Percent:    mathx.Round2(rate * 100),
		Converged:  false,
		Iterations: IRRMaxIterations,
	}, nil
}

// EcoEfficiencyResult is the value-per-impact ratio with its band.
type EcoEfficiencyResult struct {
	// Ratio is product value divided by environmental impact, INR per kg CO2e.
	Ratio float64 `json:"ratio"`

	// Band is the qualitative interpretation: excellent, good, moderate, poor.
	Band string `json:"band"`

	// Formula is the audit string with substituted values.
	Formula string `json:"formula"`
}

// EcoEfficiency computes productValueINR / environmentalImpactKgCO2e and
// assigns the qualitative band. Both inputs must be positive.
func EcoEfficiency(productValueINR, environmentalImpactKgCO2e float64) (EcoEfficiencyResult, error) {
	if productValueINR <= 0 {
		return EcoEfficiencyResult{}, fmt.Errorf("%w: product_value_inr=%s",
			ErrNonPositiveInput, mathx.Num(productValueINR))
	}
	if environmentalImpactKgCO2e <= 0 {
		return EcoEfficiencyResult{}, fmt.Errorf("%w: environmental_impact_kg=%s",
			ErrNonPositiveInput, mathx.Num(environmentalImpactKgCO2e))
	}

	ratio := mathx.Round2(productValueINR / environmentalImpactKgCO2e)

	var band string
	switch {
	case ratio > EcoEfficiencyExcellent:
		band = "excellent"
	case ratio > EcoEfficiencyGood:
		band = "good"
	case ratio > EcoEfficiencyModerate:
		band = "moderate"
	default:
		band = "poor"
	}

	return EcoEfficiencyResult{
		Ratio: ratio,
		Band:  band,
		Formula: mathx.Formula("EcoEfficiency",
			fmt.Sprintf("%s / %s", mathx.Num(productValueINR), mathx.Num(environmentalImpactKgCO2e)),
			ratio),
	}, nil
}

// hasSignChange reports whether any flow has the opposite sign of the
// first nonzero flow.
func hasSignChange(cashFlows []float64) bool {
	var first float64
	for _, cf := range cashFlows {
		if cf != 0 {
			first = cf
			break
		}
	}
	if first == 0 {
		return false
	}
	for _, cf := range cashFlows {
		if cf*first < 0 {
			return true
		}
	}
	return false
}

// npvAndDerivative evaluates NPV(rate) = Σ cf_t / (1+rate)^t and its
// derivative in one pass.
func npvAndDerivative(cashFlows []float64, rate float64) (npv, derivative float64) {
	for t, cf := range cashFlows {
		denom := math.Pow(1+rate, float64(t))
		npv += cf / denom
		if t > 0 {
			derivative -= float64(t) * cf / math.Pow(1+rate, float64(t+1))
		}
	}
	return npv, derivative
}
