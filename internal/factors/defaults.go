package factors

// Default factor data, version 1 of the wastelink dataset.
//
// Electricity and fuel factors follow CEA (Central Electricity Authority)
// grid data and DEFRA 2023 fuel conversion factors. Vehicle factors are
// per-km freight averages for Indian road, rail, and coastal shipping.
// Recycling substitution rows are per-kg lifecycle savings against virgin
// production, rounded from published LCA ranges.
const (
	// defaultDatasetVersion identifies the built-in dataset.
	defaultDatasetVersion = "1.0.0"

	// GridFactorIndia is kg CO2e per kWh for the Indian grid (CEA weighted
	// average). Callers may pass their own grid factor per calculation.
	GridFactorIndia = 0.82

	// WaterSupplyFactor is kg CO2e per liter of treated municipal water.
	WaterSupplyFactor = 0.000344

	// WasteLandfillFactor is kg CO2e per kg of mixed waste landfilled,
	// excluding methane handled separately by the landfill decay model.
	WasteLandfillFactorKg = 0.45
)

// defaultFuel returns the built-in fuel factor rows.
// Liquid fuels (diesel, petrol, lpg) are kg CO2e per liter;
// natural gas and coal are kg CO2e per kilogram.
func defaultFuel() map[FuelType]float64 {
	return map[FuelType]float64{
		FuelDiesel:     2.68,
		FuelPetrol:     2.31,
		FuelLPG:        1.51,
		FuelNaturalGas: 2.75,
		FuelCoal:       2.42,
	}
}

// defaultVehicle returns the built-in vehicle factor rows in kg CO2e per km
// at full load. The truck row doubles as the documented fallback for
// route-savings calculations.
func defaultVehicle() map[VehicleType]float64 {
	return map[VehicleType]float64{
		VehicleTruck:     0.062,
		VehicleMiniTruck: 0.035,
		VehicleTempo:     0.022,
		VehicleRail:      0.012,
		VehicleShip:      0.008,
		VehicleEVTruck:   0.018,
	}
}

// defaultRecycling returns the built-in per-kg substitution credit rows.
// The mixed row is the documented fallback for unknown materials.
func defaultRecycling() map[MaterialType]RecyclingFactors {
	return map[MaterialType]RecyclingFactors{
		MaterialPlastic: {CO2PerKg: 1.5, WaterLitersPerKg: 16.0, EnergyKwhPerKg: 5.8, LandfillM3PerKg: 0.0025},
		MaterialPaper:   {CO2PerKg: 0.9, WaterLitersPerKg: 26.0, EnergyKwhPerKg: 1.8, LandfillM3PerKg: 0.0030},
		MaterialMetal:   {CO2PerKg: 2.1, WaterLitersPerKg: 4.0, EnergyKwhPerKg: 14.0, LandfillM3PerKg: 0.0012},
		MaterialGlass:   {CO2PerKg: 0.3, WaterLitersPerKg: 2.5, EnergyKwhPerKg: 0.9, LandfillM3PerKg: 0.0008},
		MaterialOrganic: {CO2PerKg: 0.25, WaterLitersPerKg: 1.2, EnergyKwhPerKg: 0.3, LandfillM3PerKg: 0.0040},
		MaterialTextile: {CO2PerKg: 3.4, WaterLitersPerKg: 60.0, EnergyKwhPerKg: 11.0, LandfillM3PerKg: 0.0020},
		MaterialEWaste:  {CO2PerKg: 1.8, WaterLitersPerKg: 12.0, EnergyKwhPerKg: 7.5, LandfillM3PerKg: 0.0015},
		MaterialRubber:  {CO2PerKg: 1.1, WaterLitersPerKg: 9.0, EnergyKwhPerKg: 4.2, LandfillM3PerKg: 0.0022},
		MaterialMixed:   {CO2PerKg: 0.8, WaterLitersPerKg: 8.0, EnergyKwhPerKg: 2.5, LandfillM3PerKg: 0.0020},
	}
}

// Default returns the built-in factor table.
func Default() *Table {
	return &Table{
		version:       defaultDatasetVersion,
		gridFactor:    GridFactorIndia,
		water:         WaterSupplyFactor,
		wasteLandfill: WasteLandfillFactorKg,
		fuel:          defaultFuel(),
		vehicle:       defaultVehicle(),
		recycling:     defaultRecycling(),
	}
}
