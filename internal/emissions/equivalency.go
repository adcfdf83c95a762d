package emissions

import (
	"fmt"
	"math"

	"github.com/nmehta6/wastelink/internal/mathx"
)

// Equivalency conversion factors for dashboard copy.
const (
	// TreeSeedlingAbsorptionKg is kg CO2e absorbed per urban tree seedling
	// per year.
	TreeSeedlingAbsorptionKg = 21.0

	// CarKmFactor is kg CO2e per km for an average passenger car.
	CarKmFactor = 0.12

	// minEquivalencyKg is the floor below which equivalencies read as noise.
	minEquivalencyKg = 1.0
)

// Equivalency expresses an abstract kg CO2e figure as relatable activity
// counts. IsEmpty is true when the input is below the display threshold.
type Equivalency struct {
	InputKg      float64 `json:"inputKg"`
	TreesPlanted float64 `json:"treesPlanted"`
	CarKmAvoided float64 `json:"carKmAvoided"`
	DisplayText  string  `json:"displayText"`
	IsEmpty      bool    `json:"isEmpty"`
}

// Equivalencies converts kg CO2e into tree-seedling and car-km equivalents.
func Equivalencies(co2Kg float64) (Equivalency, error) {
	if co2Kg < 0 {
		return Equivalency{IsEmpty: true}, fmt.Errorf("%w: co2_kg=%s", ErrNegativeQuantity, mathx.Num(co2Kg))
	}
	if co2Kg < minEquivalencyKg {
		return Equivalency{InputKg: co2Kg, IsEmpty: true}, nil
	}

	trees := mathx.Round2(co2Kg / TreeSeedlingAbsorptionKg)
	carKm := mathx.Round2(co2Kg / CarKmFactor)

	display := fmt.Sprintf("Equivalent to planting ~%s trees or taking ~%s car-km off the road",
		mathx.FormatNumber(int64(math.Round(trees))),
		mathx.FormatNumber(int64(math.Round(carKm))))

	return Equivalency{
		InputKg:      co2Kg,
		TreesPlanted: trees,
		CarKmAvoided: carKm,
		DisplayText:  display,
	}, nil
}
