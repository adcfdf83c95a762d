package emissions

import (
	"fmt"

	"github.com/nmehta6/wastelink/internal/factors"
	"github.com/nmehta6/wastelink/internal/mathx"
)

// Input is one reporting period of facility consumption. Absent fields are
// zero and contribute nothing. All quantities must be non-negative.
type Input struct {
	ElectricityKwh float64 `json:"electricityKwh"`
	DieselLiters   float64 `json:"dieselLiters"`
	PetrolLiters   float64 `json:"petrolLiters"`
	LPGLiters      float64 `json:"lpgLiters"`
	NaturalGasKg   float64 `json:"naturalGasKg"`
	CoalKg         float64 `json:"coalKg"`
	WaterLiters    float64 `json:"waterLiters"`
	WasteKg        float64 `json:"wasteKg"`
}

// Result is a full scope 1/2/3 assessment. TotalCO2e always equals
// Scope1 + Scope2 + Scope3; the per-source breakdown carries the same
// rounded values the scopes were summed from.
type Result struct {
	Scope1    float64            `json:"scope1"`
	Scope2    float64            `json:"scope2"`
	Scope3    float64            `json:"scope3"`
	TotalCO2e float64            `json:"totalCo2e"`
	Breakdown map[string]float64 `json:"breakdown"`

	// Formula is the audit string quoted verbatim by ESG reports.
	Formula string `json:"formula"`
}

// Assess computes a facility's scope 1 (combustion), scope 2 (purchased
// electricity), and scope 3 (water supply and landfilled waste) totals from
// one period of consumption data.
func Assess(t *factors.Table, in Input) (Result, error) {
	diesel, err := LiquidFuel(t, in.DieselLiters, factors.FuelDiesel)
	if err != nil {
		return Result{}, fmt.Errorf("diesel: %w", err)
	}
	petrol, err := LiquidFuel(t, in.PetrolLiters, factors.FuelPetrol)
	if err != nil {
		return Result{}, fmt.Errorf("petrol: %w", err)
	}
	lpg, err := LiquidFuel(t, in.LPGLiters, factors.FuelLPG)
	if err != nil {
		return Result{}, fmt.Errorf("lpg: %w", err)
	}
	naturalGas, err := GaseousFuel(t, in.NaturalGasKg, factors.FuelNaturalGas)
	if err != nil {
		return Result{}, fmt.Errorf("natural gas: %w", err)
	}
	coal, err := Coal(t, in.CoalKg)
	if err != nil {
		return Result{}, fmt.Errorf("coal: %w", err)
	}
	electricity, err := Electricity(in.ElectricityKwh, t.GridFactor())
	if err != nil {
		return Result{}, err
	}

	if in.WaterLiters < 0 {
		return Result{}, fmt.Errorf("%w: water_liters=%s", ErrNegativeQuantity, mathx.Num(in.WaterLiters))
	}
	if in.WasteKg < 0 {
		return Result{}, fmt.Errorf("%w: waste_kg=%s", ErrNegativeQuantity, mathx.Num(in.WasteKg))
	}
	water := mathx.Round2(in.WaterLiters * t.WaterFactor())
	waste := mathx.Round2(in.WasteKg * t.WasteLandfillFactor())

	scope1 := mathx.Round2(diesel + petrol + lpg + naturalGas + coal)
	scope2 := electricity
	scope3 := mathx.Round2(water + waste)
	total := TotalCarbon(scope1, scope2, scope3)

	formula := mathx.Formula("TotalCO2e",
		fmt.Sprintf("%s + %s + %s", mathx.Num(scope1), mathx.Num(scope2), mathx.Num(scope3)),
		total)

	return Result{
		Scope1:    scope1,
		Scope2:    scope2,
		Scope3:    scope3,
		TotalCO2e: total,
		Breakdown: map[string]float64{
			"diesel":      diesel,
			"petrol":      petrol,
			"lpg":         lpg,
			"natural_gas": naturalGas,
			"coal":        coal,
			"electricity": electricity,
			"water":       water,
			"waste":       waste,
		},
		Formula: formula,
	}, nil
}
