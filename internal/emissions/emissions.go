// Package emissions implements scope 1/2/3 carbon accounting over facility
// energy, fuel, water, and waste inputs. Every function is pure: it validates
// its inputs, multiplies by the injected factor table, and rounds through
// mathx so downstream golden-output tests stay stable.
package emissions

import (
	"fmt"

	"github.com/nmehta6/wastelink/internal/factors"
	"github.com/nmehta6/wastelink/internal/mathx"
)

// MethaneGWP100 converts kg CH4 to kg CO2e over a 100-year horizon.
// Fixed at 25 per the IPCC AR5 convention; deliberately not configurable
// per call so every report in a deployment uses the same horizon.
const MethaneGWP100 = 25.0

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation sentinels. Compare with errors.Is().
var (
	// ErrNegativeQuantity indicates a negative energy, fuel, or waste input.
	ErrNegativeQuantity = constError("negative quantity")

	// ErrNonPositiveRevenue indicates revenue <= 0 in a carbon intensity call.
	ErrNonPositiveRevenue = constError("revenue must be positive")

	// ErrInvalidDecayParams indicates a landfill decay parameter outside [0,1].
	ErrInvalidDecayParams = constError("decay parameter out of range")
)

// Electricity computes scope 2 emissions in kg CO2e for purchased grid
// electricity: kWh × gridFactor.
func Electricity(kwh, gridFactor float64) (float64, error) {
	if kwh < 0 {
		return 0, fmt.Errorf("%w: electricity_kwh=%s", ErrNegativeQuantity, mathx.Num(kwh))
	}
	if gridFactor < 0 {
		return 0, fmt.Errorf("%w: grid_factor=%s", ErrNegativeQuantity, mathx.Num(gridFactor))
	}
	return mathx.Round2(kwh * gridFactor), nil
}

// LiquidFuel computes combustion emissions for a liquid fuel measured in
// liters. Only the liquid rows of the factor table (diesel, petrol, lpg)
// are accepted; anything else fails with the table's unknown-fuel error.
func LiquidFuel(t *factors.Table, liters float64, fuel factors.FuelType) (float64, error) {
	if liters < 0 {
		return 0, fmt.Errorf("%w: liters=%s", ErrNegativeQuantity, mathx.Num(liters))
	}
	switch fuel {
	case factors.FuelDiesel, factors.FuelPetrol, factors.FuelLPG:
	default:
		return 0, fmt.Errorf("%w: %q is not a liquid fuel", factors.ErrUnknownFuelType, fuel)
	}

	factor, err := t.FuelFactor(fuel)
	if err != nil {
		return 0, err
	}
	return mathx.Round2(liters * factor), nil
}

// GaseousFuel computes combustion emissions for a gaseous fuel measured in
// kilograms. Natural gas is the only gaseous row in the current dataset.
func GaseousFuel(t *factors.Table, kg float64, fuel factors.FuelType) (float64, error) {
	if kg < 0 {
		return 0, fmt.Errorf("%w: kg=%s", ErrNegativeQuantity, mathx.Num(kg))
	}
	if fuel != factors.FuelNaturalGas {
		return 0, fmt.Errorf("%w: %q is not a gaseous fuel", factors.ErrUnknownFuelType, fuel)
	}

	factor, err := t.FuelFactor(fuel)
	if err != nil {
		return 0, err
	}
	return mathx.Round2(kg * factor), nil
}

// Coal computes combustion emissions for coal measured in kilograms.
func Coal(t *factors.Table, kg float64) (float64, error) {
	if kg < 0 {
		return 0, fmt.Errorf("%w: kg=%s", ErrNegativeQuantity, mathx.Num(kg))
	}

	factor, err := t.FuelFactor(factors.FuelCoal)
	if err != nil {
		return 0, err
	}
	return mathx.Round2(kg * factor), nil
}

// TotalCarbon sums independently computed scope totals. There is no hidden
// double-counting correction here; callers are responsible for keeping the
// scopes disjoint.
func TotalCarbon(scope1, scope2, scope3 float64) float64 {
	return mathx.Round2(scope1 + scope2 + scope3)
}

// CarbonIntensity returns kg CO2e per lakh INR of revenue.
func CarbonIntensity(totalCO2e, revenueLakhs float64) (float64, error) {
	if totalCO2e < 0 {
		return 0, fmt.Errorf("%w: total_co2e=%s", ErrNegativeQuantity, mathx.Num(totalCO2e))
	}
	if revenueLakhs <= 0 {
		return 0, fmt.Errorf("%w: revenue_lakhs=%s", ErrNonPositiveRevenue, mathx.Num(revenueLakhs))
	}
	return mathx.Round2(totalCO2e / revenueLakhs), nil
}

// DecayParams are the IPCC first-order decay parameters for landfill methane.
// All four are fractions in [0,1].
type DecayParams struct {
	// MethaneCorrectionFactor reflects landfill management quality (MCF).
	MethaneCorrectionFactor float64

	// DegradableOrganicCarbon is the DOC fraction of the waste mass.
	DegradableOrganicCarbon float64

	// FractionDecomposed is the DOC fraction that actually decomposes (DOCf).
	FractionDecomposed float64

	// MethaneFraction is the CH4 share of generated landfill gas (F).
	MethaneFraction float64
}

// DefaultDecayParams returns the IPCC default parameters for an unmanaged
// shallow landfill receiving mixed municipal waste.
func DefaultDecayParams() DecayParams {
	return DecayParams{
		MethaneCorrectionFactor: 1.0,
		DegradableOrganicCarbon: 0.15,
		FractionDecomposed:      0.5,
		MethaneFraction:         0.5,
	}
}

// carbonToMethaneMassRatio converts decomposed carbon mass to methane mass
// (molecular weight CH4 / atomic weight C).
const carbonToMethaneMassRatio = 16.0 / 12.0

// LandfillMethane estimates kg CH4 generated by landfilling wasteKg of waste,
// using the IPCC first-order decay model:
//
//	CH4 = waste × MCF × DOC × DOCf × F × (16/12)
func LandfillMethane(wasteKg float64, p DecayParams) (float64, error) {
	if wasteKg < 0 {
		return 0, fmt.Errorf("%w: waste_kg=%s", ErrNegativeQuantity, mathx.Num(wasteKg))
	}
	for name, v := range map[string]float64{
		"methane_correction_factor": p.MethaneCorrectionFactor,
		"degradable_organic_carbon": p.DegradableOrganicCarbon,
		"fraction_decomposed":       p.FractionDecomposed,
		"methane_fraction":          p.MethaneFraction,
	} {
		if v < 0 || v > 1 {
			return 0, fmt.Errorf("%w: %s=%s", ErrInvalidDecayParams, name, mathx.Num(v))
		}
	}

	ch4 := wasteKg * p.MethaneCorrectionFactor * p.DegradableOrganicCarbon *
		p.FractionDecomposed * p.MethaneFraction * carbonToMethaneMassRatio
	return mathx.Round2(ch4), nil
}

// MethaneToCO2e converts kg CH4 to kg CO2e at the fixed GWP-100 factor.
func MethaneToCO2e(ch4Kg float64) float64 {
	return mathx.Round2(ch4Kg * MethaneGWP100)
}

// Incineration computes kg CO2e from burning wasteKg of waste with the given
// composition factor (kg CO2e per kg waste, a property of the waste mix).
func Incineration(wasteKg, compositionFactor float64) (float64, error) {
	if wasteKg < 0 {
		return 0, fmt.Errorf("%w: waste_kg=%s", ErrNegativeQuantity, mathx.Num(wasteKg))
	}
	if compositionFactor < 0 {
		return 0, fmt.Errorf("%w: composition_factor=%s", ErrNegativeQuantity, mathx.Num(compositionFactor))
	}
	return mathx.Round2(wasteKg * compositionFactor), nil
}
