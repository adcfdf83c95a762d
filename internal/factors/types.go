// Package factors holds the shared emission, savings, and transport factor
// tables. A Table is immutable after construction and is passed by reference
// into the calculation packages, so tests can substitute their own data and
// concurrent callers never coordinate.
package factors

import "fmt"

// FuelType identifies a combustible input in the fuel factor table.
type FuelType string

// Fuel types recognized by the emission factor table.
const (
	// FuelDiesel is measured in liters.
	FuelDiesel FuelType = "diesel"

	// FuelPetrol is measured in liters.
	FuelPetrol FuelType = "petrol"

	// FuelLPG is liquefied petroleum gas, measured in liters.
	FuelLPG FuelType = "lpg"

	// FuelNaturalGas is measured in kilograms.
	FuelNaturalGas FuelType = "natural_gas"

	// FuelCoal is measured in kilograms.
	FuelCoal FuelType = "coal"
)

// ParseFuelType converts a user-supplied string into a FuelType.
func ParseFuelType(s string) (FuelType, error) {
	switch FuelType(s) {
	case FuelDiesel, FuelPetrol, FuelLPG, FuelNaturalGas, FuelCoal:
		return FuelType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFuelType, s)
	}
}

// VehicleType identifies a transport mode in the vehicle factor table.
type VehicleType string

// Vehicle types recognized by the transport factor table.
const (
	VehicleTruck     VehicleType = "truck"
	VehicleMiniTruck VehicleType = "mini_truck"
	VehicleTempo     VehicleType = "tempo"
	VehicleRail      VehicleType = "rail"
	VehicleShip      VehicleType = "ship"
	VehicleEVTruck   VehicleType = "ev_truck"
)

// ParseVehicleType converts a user-supplied string into a VehicleType.
func ParseVehicleType(s string) (VehicleType, error) {
	switch VehicleType(s) {
	case VehicleTruck, VehicleMiniTruck, VehicleTempo, VehicleRail, VehicleShip, VehicleEVTruck:
		return VehicleType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVehicleType, s)
	}
}

// MaterialType identifies a waste material in the recycling credit table.
type MaterialType string

// Material types recognized by the recycling credit table.
const (
	MaterialPlastic MaterialType = "plastic"
	MaterialPaper   MaterialType = "paper"
	MaterialMetal   MaterialType = "metal"
	MaterialGlass   MaterialType = "glass"
	MaterialOrganic MaterialType = "organic"
	MaterialTextile MaterialType = "textile"
	MaterialEWaste  MaterialType = "e_waste"
	MaterialRubber  MaterialType = "rubber"

	// MaterialMixed is the documented fallback row for unknown materials.
	MaterialMixed MaterialType = "mixed"
)

// RecyclingFactors is the per-kilogram savings row for one material:
// what recycling one kg substitutes compared to virgin production.
type RecyclingFactors struct {
	// CO2PerKg is kg CO2e avoided per kg recycled.
	CO2PerKg float64 `yaml:"co2_per_kg"`

	// WaterLitersPerKg is liters of process water saved per kg recycled.
	WaterLitersPerKg float64 `yaml:"water_liters_per_kg"`

	// EnergyKwhPerKg is kWh of process energy saved per kg recycled.
	EnergyKwhPerKg float64 `yaml:"energy_kwh_per_kg"`

	// LandfillM3PerKg is cubic meters of landfill volume avoided per kg.
	LandfillM3PerKg float64 `yaml:"landfill_m3_per_kg"`
}
