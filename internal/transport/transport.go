// Package transport implements logistics calculations: great-circle
// distance, per-trip vehicle emissions, route optimization savings, and the
// composite door-to-door transport estimate used by the matching pipeline.
package transport

import (
	"fmt"
	"math"

	"github.com/nmehta6/wastelink/internal/factors"
	"github.com/nmehta6/wastelink/internal/mathx"
)

// Transport constants.
const (
	// EarthRadiusKm is the mean spherical Earth radius for haversine.
	EarthRadiusKm = 6371.0

	// DefaultCircuityFactor converts great-circle distance into an estimated
	// road distance. Configurable per call and via configuration.
	DefaultCircuityFactor = 1.3

	// DefaultCostPerKmINR is the freight cost rate applied by Estimate when
	// the caller supplies none.
	DefaultCostPerKmINR = 45.0

	// Load factor domain: fraction of vehicle capacity actually utilized.
	// Values above 1.0 model overloading, which Indian freight routinely does.
	MinLoadFactor = 0.1
	MaxLoadFactor = 1.5
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation sentinels. Compare with errors.Is().
var (
	// ErrCoordinateOutOfRange indicates a latitude outside [-90,90] or a
	// longitude outside [-180,180].
	ErrCoordinateOutOfRange = constError("coordinate out of range")

	// ErrLoadFactorOutOfRange indicates a load factor outside [0.1, 1.5].
	ErrLoadFactorOutOfRange = constError("load factor out of range")

	// ErrNegativeDistance indicates a negative distance input.
	ErrNegativeDistance = constError("negative distance")

	// ErrNoSavings indicates an "optimized" route that is not strictly
	// shorter than the original; negative savings cannot be expressed.
	ErrNoSavings = constError("optimized distance must be strictly shorter than original")

	// ErrNonPositiveTrips indicates annualTrips < 1.
	ErrNonPositiveTrips = constError("annual trips must be at least 1")
)

// validateCoordinate checks one (lat, lon) pair against its domain.
func validateCoordinate(lat, lon float64) error {
	if lat < -90 || lat > 90 || math.IsNaN(lat) {
		return fmt.Errorf("%w: latitude=%s", ErrCoordinateOutOfRange, mathx.Num(lat))
	}
	if lon < -180 || lon > 180 || math.IsNaN(lon) {
		return fmt.Errorf("%w: longitude=%s", ErrCoordinateOutOfRange, mathx.Num(lon))
	}
	return nil
}

// HaversineDistance returns the great-circle distance in km between two
// coordinates on a spherical Earth, rounded to 2 decimals. Both coordinates
// are validated on every call.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := validateCoordinate(lat1, lon1); err != nil {
		return 0, err
	}
	if err := validateCoordinate(lat2, lon2); err != nil {
		return 0, err
	}

	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return mathx.Round2(EarthRadiusKm * c), nil
}

// VehicleEmissionsInput describes one freight movement.
type VehicleEmissionsInput struct {
	DistanceKm float64             `json:"distanceKm"`
	Vehicle    factors.VehicleType `json:"vehicleType"`

	// LoadFactor scales emissions by capacity utilization; zero means 1.0.
	LoadFactor float64 `json:"loadFactor"`
}

// VehicleEmissionsResult is the emissions of one freight movement.
type VehicleEmissionsResult struct {
	CO2Kg      float64             `json:"co2Kg"`
	DistanceKm float64             `json:"distanceKm"`
	Vehicle    factors.VehicleType `json:"vehicleType"`
	LoadFactor float64             `json:"loadFactor"`
	Formula    string              `json:"formula"`
}

// VehicleEmissions computes co2Kg = distance × factor[vehicle] × loadFactor.
// The vehicle type must resolve in the factor table; the lookup error
// enumerates the valid keys because it is shown directly to users.
func VehicleEmissions(t *factors.Table, in VehicleEmissionsInput) (VehicleEmissionsResult, error) {
	if in.DistanceKm < 0 {
		return VehicleEmissionsResult{}, fmt.Errorf("%w: distance_km=%s", ErrNegativeDistance, mathx.Num(in.DistanceKm))
	}

	loadFactor := in.LoadFactor
	if loadFactor == 0 {
		loadFactor = 1.0
	}
	if loadFactor < MinLoadFactor || loadFactor > MaxLoadFactor {
		return VehicleEmissionsResult{}, fmt.Errorf("%w: load_factor=%s (allowed %s–%s)",
			ErrLoadFactorOutOfRange, mathx.Num(loadFactor), mathx.Num(MinLoadFactor), mathx.Num(MaxLoadFactor))
	}

	factor, err := t.VehicleFactor(in.Vehicle)
	if err != nil {
		return VehicleEmissionsResult{}, err
	}

	co2 := mathx.Round2(in.DistanceKm * factor * loadFactor)
	return VehicleEmissionsResult{
		CO2Kg:      co2,
		DistanceKm: in.DistanceKm,
		Vehicle:    in.Vehicle,
		LoadFactor: loadFactor,
		Formula: mathx.Formula("CO2",
			fmt.Sprintf("%s × %s × %s", mathx.Num(in.DistanceKm), mathx.Num(factor), mathx.Num(loadFactor)),
			co2),
	}, nil
}

// RouteSavingsResult quantifies the benefit of a shorter route over a year.
type RouteSavingsResult struct {
	KmSavedPerTrip   float64 `json:"kmSavedPerTrip"`
	CO2SavedPerTrip  float64 `json:"co2SavedPerTrip"`
	AnnualKmSaved    float64 `json:"annualKmSaved"`
	AnnualCO2SavedKg float64 `json:"annualCo2SavedKg"`
	Formula          string  `json:"formula"`
}

// RouteSavings computes annual distance and emission savings from replacing
// originalKm with optimizedKm. The optimized route must be strictly shorter;
// negative savings cannot be expressed. Unknown vehicle types silently fall
// back to the truck factor — a long-standing asymmetry with
// VehicleEmissions' strict lookup that existing callers depend on.
func RouteSavings(
	t *factors.Table,
	originalKm, optimizedKm float64,
	vehicle factors.VehicleType,
	annualTrips int,
	loadFactor float64,
) (RouteSavingsResult, error) {
	if originalKm < 0 {
		return RouteSavingsResult{}, fmt.Errorf("%w: original_km=%s", ErrNegativeDistance, mathx.Num(originalKm))
	}
	if optimizedKm < 0 {
		return RouteSavingsResult{}, fmt.Errorf("%w: optimized_km=%s", ErrNegativeDistance, mathx.Num(optimizedKm))
	}
	if optimizedKm >= originalKm {
		return RouteSavingsResult{}, fmt.Errorf("%w: original_km=%s optimized_km=%s",
			ErrNoSavings, mathx.Num(originalKm), mathx.Num(optimizedKm))
	}
	if annualTrips < 1 {
		return RouteSavingsResult{}, fmt.Errorf("%w: annual_trips=%d", ErrNonPositiveTrips, annualTrips)
	}

	if loadFactor == 0 {
		loadFactor = 1.0
	}
	if loadFactor < MinLoadFactor || loadFactor > MaxLoadFactor {
		return RouteSavingsResult{}, fmt.Errorf("%w: load_factor=%s (allowed %s–%s)",
			ErrLoadFactorOutOfRange, mathx.Num(loadFactor), mathx.Num(MinLoadFactor), mathx.Num(MaxLoadFactor))
	}

	factor := t.VehicleFactorOrTruck(vehicle)
	kmSaved := mathx.Round2(originalKm - optimizedKm)
	co2PerTrip := mathx.Round2(kmSaved * factor * loadFactor)
	trips := float64(annualTrips)

	return RouteSavingsResult{
		KmSavedPerTrip:   kmSaved,
		CO2SavedPerTrip:  co2PerTrip,
		AnnualKmSaved:    mathx.Round2(kmSaved * trips),
		AnnualCO2SavedKg: mathx.Round2(co2PerTrip * trips),
		Formula: mathx.Formula("AnnualCO2Saved",
			fmt.Sprintf("(%s − %s) × %s × %s × %s",
				mathx.Num(originalKm), mathx.Num(optimizedKm), mathx.Num(factor),
				mathx.Num(loadFactor), mathx.Num(trips)),
			mathx.Round2(co2PerTrip*trips)),
	}, nil
}

// EstimateInput describes a prospective exchange between two facilities.
type EstimateInput struct {
	FromLat float64             `json:"fromLat"`
	FromLon float64             `json:"fromLon"`
	ToLat   float64             `json:"toLat"`
	ToLon   float64             `json:"toLon"`
	Vehicle factors.VehicleType `json:"vehicleType"`

	// LoadFactor scales emissions; zero means 1.0.
	LoadFactor float64 `json:"loadFactor"`

	// CircuityFactor converts great-circle km to road km; zero means the
	// configured default (1.3).
	CircuityFactor float64 `json:"circuityFactor"`

	// CostPerKmINR is the freight rate; zero means the configured default.
	CostPerKmINR float64 `json:"costPerKmInr"`
}

// EstimateResult is the composite door-to-door transport estimate.
type EstimateResult struct {
	GreatCircleKm float64 `json:"greatCircleKm"`
	DistanceKm    float64 `json:"distanceKm"`
	CO2Kg         float64 `json:"co2Kg"`
	CostINR       float64 `json:"costInr"`
	Formula       string  `json:"formula"`
}

// Estimate composes haversine distance, the circuity factor, vehicle
// emissions, and the cost rate into a single transport estimate:
// distanceKm = round2(haversine × circuity).
func Estimate(t *factors.Table, in EstimateInput) (EstimateResult, error) {
	greatCircle, err := HaversineDistance(in.FromLat, in.FromLon, in.ToLat, in.ToLon)
	if err != nil {
		return EstimateResult{}, err
	}

	circuity := in.CircuityFactor
	if circuity == 0 {
		circuity = DefaultCircuityFactor
	}
	if circuity < 1 {
		return EstimateResult{}, fmt.Errorf("%w: circuity_factor=%s", ErrNegativeDistance, mathx.Num(circuity))
	}

	costRate := in.CostPerKmINR
	if costRate == 0 {
		costRate = DefaultCostPerKmINR
	}
	if costRate < 0 {
		return EstimateResult{}, fmt.Errorf("%w: cost_per_km_inr=%s", ErrNegativeDistance, mathx.Num(costRate))
	}

	roadKm := mathx.Round2(greatCircle * circuity)

	vehicleResult, err := VehicleEmissions(t, VehicleEmissionsInput{
		DistanceKm: roadKm,
		Vehicle:    in.Vehicle,
		LoadFactor: in.LoadFactor,
	})
	if err != nil {
		return EstimateResult{}, err
	}

	cost := mathx.Round2(roadKm * costRate)

	return EstimateResult{
		GreatCircleKm: greatCircle,
		DistanceKm:    roadKm,
		CO2Kg:         vehicleResult.CO2Kg,
		CostINR:       cost,
		Formula: mathx.Formula("Cost",
			fmt.Sprintf("%s × %s × %s", mathx.Num(greatCircle), mathx.Num(circuity), mathx.Num(costRate)),
			cost),
	}, nil
}
