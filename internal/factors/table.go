package factors

import (
	"fmt"
	"sort"
	"strings"
)

// Table is the immutable factor dataset injected into every calculation
// package. Construct it with Default or Load; never mutate it afterwards.
type Table struct {
	version       string
	gridFactor    float64
	water         float64
	wasteLandfill float64
	fuel          map[FuelType]float64
	vehicle       map[VehicleType]float64
	recycling     map[MaterialType]RecyclingFactors
}

// Version returns the semver version string of the loaded dataset.
func (t *Table) Version() string {
	return t.version
}

// GridFactor returns the default grid electricity factor in kg CO2e per kWh.
func (t *Table) GridFactor() float64 {
	return t.gridFactor
}

// WaterFactor returns kg CO2e per liter of treated municipal water (scope 3).
func (t *Table) WaterFactor() float64 {
	return t.water
}

// WasteLandfillFactor returns kg CO2e per kg of mixed waste sent to landfill
// (scope 3).
func (t *Table) WasteLandfillFactor() float64 {
	return t.wasteLandfill
}

// FuelFactor returns the emission factor for the given fuel. Liquid fuels are
// per liter, gaseous and solid fuels per kilogram. Unknown fuels fail with
// ErrUnknownFuelType; there is no fallback row for fuels.
func (t *Table) FuelFactor(fuel FuelType) (float64, error) {
	f, ok := t.fuel[fuel]
	if !ok {
		return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownFuelType, fuel, strings.Join(t.ValidFuelTypes(), ", "))
	}
	return f, nil
}

// VehicleFactor returns kg CO2e per km for the given vehicle type. Unknown
// vehicles fail with ErrUnknownVehicleType; the error enumerates the valid
// keys because callers surface it directly to users.
func (t *Table) VehicleFactor(vehicle VehicleType) (float64, error) {
	f, ok := t.vehicle[vehicle]
	if !ok {
		return 0, fmt.Errorf("%w: %q (valid: %s)",
			ErrUnknownVehicleType, vehicle, strings.Join(t.ValidVehicleTypes(), ", "))
	}
	return f, nil
}

// VehicleFactorOrTruck returns the factor for the given vehicle, silently
// falling back to the truck row when the type is unknown. Route-savings
// calculations documented this fallback long before VehicleFactor grew its
// strict behavior, and existing callers depend on it.
func (t *Table) VehicleFactorOrTruck(vehicle VehicleType) float64 {
	if f, ok := t.vehicle[vehicle]; ok {
		return f
	}
	return t.vehicle[VehicleTruck]
}

// Recycling returns the substitution credit row for the given material.
// Unknown materials fall back to the mixed row; this is an explicit design
// decision, not an error.
func (t *Table) Recycling(material MaterialType) RecyclingFactors {
	if row, ok := t.recycling[material]; ok {
		return row
	}
	return t.recycling[MaterialMixed]
}

// ValidFuelTypes returns the sorted fuel keys present in the table.
func (t *Table) ValidFuelTypes() []string {
	keys := make([]string, 0, len(t.fuel))
	for k := range t.fuel {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}

// ValidVehicleTypes returns the sorted vehicle keys present in the table.
func (t *Table) ValidVehicleTypes() []string {
	keys := make([]string, 0, len(t.vehicle))
	for k := range t.vehicle {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}

// ValidMaterialTypes returns the sorted material keys present in the table.
func (t *Table) ValidMaterialTypes() []string {
	keys := make([]string, 0, len(t.recycling))
	for k := range t.recycling {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}
