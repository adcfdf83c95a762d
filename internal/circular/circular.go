// Package circular implements circular-economy indicators: the Material
// Circularity Indicator, recycling substitution credits, industrial symbiosis
// efficiency, and the facility circularity rate.
package circular

import (
	"fmt"

	"github.com/nmehta6/wastelink/internal/factors"
	"github.com/nmehta6/wastelink/internal/mathx"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation sentinels. Compare with errors.Is().
var (
	// ErrNegativeQuantity indicates a negative material quantity.
	ErrNegativeQuantity = constError("negative quantity")

	// ErrNonPositiveTotal indicates a zero or negative denominator quantity.
	ErrNonPositiveTotal = constError("total must be positive")

	// ErrNonPositiveDistance indicates a zero or negative exchange distance.
	ErrNonPositiveDistance = constError("distance must be positive")
)

// MCI interpretation band boundaries. The bands are part of the public
// contract: reports key recommendations off these exact labels.
const (
	mciHighlyCircular     = 0.8
	mciModeratelyCircular = 0.5
	mciLowCircularity     = 0.3
)

// DefaultOptimalExchangeKm is the reference distance for industrial symbiosis
// efficiency: exchanges within this radius score full proximity credit.
const DefaultOptimalExchangeKm = 50.0

// MCIInput is one facility-period of material flow data.
type MCIInput struct {
	VirginMaterialKg     float64 `json:"virginMaterialKg"`
	TotalMaterialKg      float64 `json:"totalMaterialKg"`
	WasteGeneratedKg     float64 `json:"wasteGeneratedKg"`
	TotalMaterialInputKg float64 `json:"totalMaterialInputKg"`
}

// MCIResult is the Material Circularity Indicator with its qualitative band.
type MCIResult struct {
	Value          float64 `json:"value"`
	Interpretation string  `json:"interpretation"`
	Formula        string  `json:"formula"`
}

// MaterialCircularityIndicator computes MCI = 1 − (virgin/total) ×
// (waste/totalInput), clamped to [0,1]. Denominators must be positive and
// numerators non-negative.
func MaterialCircularityIndicator(in MCIInput) (MCIResult, error) {
	if in.TotalMaterialKg <= 0 {
		return MCIResult{}, fmt.Errorf("%w: total_material_kg=%s", ErrNonPositiveTotal, mathx.Num(in.TotalMaterialKg))
	}
	if in.TotalMaterialInputKg <= 0 {
		return MCIResult{}, fmt.Errorf("%w: total_material_input_kg=%s",
			ErrNonPositiveTotal, mathx.Num(in.TotalMaterialInputKg))
	}
	if in.VirginMaterialKg < 0 {
		return MCIResult{}, fmt.Errorf("%w: virgin_material_kg=%s", ErrNegativeQuantity, mathx.Num(in.VirginMaterialKg))
	}
	if in.WasteGeneratedKg < 0 {
		return MCIResult{}, fmt.Errorf("%w: waste_generated_kg=%s", ErrNegativeQuantity, mathx.Num(in.WasteGeneratedKg))
	}

	virginRatio := in.VirginMaterialKg / in.TotalMaterialKg
	wasteRatio := in.WasteGeneratedKg / in.TotalMaterialInputKg
	mci := mathx.Clamp(1-virginRatio*wasteRatio, 0, 1)
	mci = mathx.Round2(mci)

	formula := mathx.Formula("MCI",
		fmt.Sprintf("1 − (%s/%s) × (%s/%s)",
			mathx.Num(in.VirginMaterialKg), mathx.Num(in.TotalMaterialKg),
			mathx.Num(in.WasteGeneratedKg), mathx.Num(in.TotalMaterialInputKg)),
		mci)

	return MCIResult{
		Value:          mci,
		Interpretation: interpretMCI(mci),
		Formula:        formula,
	}, nil
}

// interpretMCI maps an MCI value to its contractual qualitative band.
func interpretMCI(mci float64) string {
	switch {
	case mci >= mciHighlyCircular:
		return "highly circular"
	case mci >= mciModeratelyCircular:
		return "moderately circular"
	case mci >= mciLowCircularity:
		return "low circularity"
	default:
		return "very linear"
	}
}

// Credit is what recycling quantityKg of a material substitutes compared to
// virgin production.
type Credit struct {
	Material          factors.MaterialType `json:"material"`
	QuantityKg        float64              `json:"quantityKg"`
	CO2CreditKg       float64              `json:"co2CreditKg"`
	WaterSavedLiters  float64              `json:"waterSavedLiters"`
	EnergySavedKwh    float64              `json:"energySavedKwh"`
	LandfillAvoidedM3 float64              `json:"landfillAvoidedM3"`
	Formula           string               `json:"formula"`
}

// RecyclingCredit computes the substitution credit for recycling quantityKg
// of the given material. Unknown materials fall back to the table's mixed
// row rather than failing; only a non-positive quantity is an error.
func RecyclingCredit(t *factors.Table, material factors.MaterialType, quantityKg float64) (Credit, error) {
	if quantityKg <= 0 {
		return Credit{}, fmt.Errorf("%w: quantity_kg=%s", ErrNonPositiveTotal, mathx.Num(quantityKg))
	}

	row := t.Recycling(material)
	co2 := mathx.Round2(quantityKg * row.CO2PerKg)

	return Credit{
		Material:          material,
		QuantityKg:        quantityKg,
		CO2CreditKg:       co2,
		WaterSavedLiters:  mathx.Round2(quantityKg * row.WaterLitersPerKg),
		EnergySavedKwh:    mathx.Round2(quantityKg * row.EnergyKwhPerKg),
		LandfillAvoidedM3: mathx.Round2(quantityKg * row.LandfillM3PerKg),
		Formula: mathx.Formula("CO2Credit",
			fmt.Sprintf("%s × %s", mathx.Num(quantityKg), mathx.Num(row.CO2PerKg)), co2),
	}, nil
}

// SymbiosisEfficiency computes ISE = min(1, (exchanged/total) × min(1,
// optimal/actual)): the exchange rate discounted by logistics proximity.
// Pass optimalKm <= 0 to use DefaultOptimalExchangeKm.
func SymbiosisEfficiency(exchangedKg, totalKg, actualKm, optimalKm float64) (float64, error) {
	if totalKg <= 0 {
		return 0, fmt.Errorf("%w: total_kg=%s", ErrNonPositiveTotal, mathx.Num(totalKg))
	}
	if actualKm <= 0 {
		return 0, fmt.Errorf("%w: actual_distance_km=%s", ErrNonPositiveDistance, mathx.Num(actualKm))
	}
	if exchangedKg < 0 {
		return 0, fmt.Errorf("%w: exchanged_kg=%s", ErrNegativeQuantity, mathx.Num(exchangedKg))
	}
	if optimalKm <= 0 {
		optimalKm = DefaultOptimalExchangeKm
	}

	proximity := optimalKm / actualKm
	if proximity > 1 {
		proximity = 1
	}

	ise := (exchangedKg / totalKg) * proximity
	if ise > 1 {
		ise = 1
	}
	return mathx.Round2(ise), nil
}

// CircularityRate returns min(100, (exchanged+recycled)/generated × 100) as
// a percentage. This function never fails: generated <= 0 yields 0, and
// negative diversion quantities clamp to 0.
func CircularityRate(generatedKg, exchangedKg, recycledKg float64) float64 {
	if generatedKg <= 0 {
		return 0
	}

	diverted := exchangedKg + recycledKg
	if diverted < 0 {
		return 0
	}

	rate := diverted / generatedKg * 100
	if rate > 100 {
		rate = 100
	}
	return mathx.Round2(rate)
}
