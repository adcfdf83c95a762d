package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmehta6/wastelink/internal/factors"
	"github.com/nmehta6/wastelink/internal/mathx"
)

// Mumbai and Pune, roughly 120 km apart great-circle.
const (
	mumbaiLat = 19.0760
	mumbaiLon = 72.8777
	puneLat   = 18.5204
	puneLon   = 73.8567
)

func TestHaversineDistance(t *testing.T) {
	t.Run("known city pair", func(t *testing.T) {
		got, err := HaversineDistance(mumbaiLat, mumbaiLon, puneLat, puneLon)
		require.NoError(t, err)
		assert.InDelta(t, 120.0, got, 3.0)
	})

	t.Run("symmetry", func(t *testing.T) {
		ab, err := HaversineDistance(mumbaiLat, mumbaiLon, puneLat, puneLon)
		require.NoError(t, err)
		ba, err := HaversineDistance(puneLat, puneLon, mumbaiLat, mumbaiLon)
		require.NoError(t, err)
		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("identical points are zero", func(t *testing.T) {
		got, err := HaversineDistance(mumbaiLat, mumbaiLon, mumbaiLat, mumbaiLon)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, got, 1e-9)
	})

	t.Run("out of range coordinates rejected", func(t *testing.T) {
		cases := [][4]float64{
			{91, 0, 0, 0},
			{-91, 0, 0, 0},
			{0, 181, 0, 0},
			{0, -181, 0, 0},
			{0, 0, 90.5, 0},
			{0, 0, 0, -180.5},
		}
		for _, c := range cases {
			_, err := HaversineDistance(c[0], c[1], c[2], c[3])
			assert.ErrorIs(t, err, ErrCoordinateOutOfRange)
		}
	})
}

func TestVehicleEmissions(t *testing.T) {
	table := factors.Default()

	t.Run("truck scenario from constants", func(t *testing.T) {
		got, err := VehicleEmissions(table, VehicleEmissionsInput{
			DistanceKm: 100,
			Vehicle:    factors.VehicleTruck,
			LoadFactor: 1.0,
		})
		require.NoError(t, err)
		assert.InDelta(t, 6.2, got.CO2Kg, 1e-9)
		assert.Equal(t, "CO2 = 100 × 0.062 × 1 = 6.2", got.Formula)
	})

	t.Run("zero load factor defaults to 1.0", func(t *testing.T) {
		got, err := VehicleEmissions(table, VehicleEmissionsInput{DistanceKm: 100, Vehicle: factors.VehicleTruck})
		require.NoError(t, err)
		assert.InDelta(t, 6.2, got.CO2Kg, 1e-9)
		assert.InDelta(t, 1.0, got.LoadFactor, 1e-9)
	})

	t.Run("load factor scales emissions", func(t *testing.T) {
		got, err := VehicleEmissions(table, VehicleEmissionsInput{
			DistanceKm: 100, Vehicle: factors.VehicleTruck, LoadFactor: 0.5,
		})
		require.NoError(t, err)
		assert.InDelta(t, 3.1, got.CO2Kg, 1e-9)
	})

	t.Run("load factor out of range", func(t *testing.T) {
		_, err := VehicleEmissions(table, VehicleEmissionsInput{
			DistanceKm: 100, Vehicle: factors.VehicleTruck, LoadFactor: 1.6,
		})
		assert.ErrorIs(t, err, ErrLoadFactorOutOfRange)

		_, err = VehicleEmissions(table, VehicleEmissionsInput{
			DistanceKm: 100, Vehicle: factors.VehicleTruck, LoadFactor: 0.05,
		})
		assert.ErrorIs(t, err, ErrLoadFactorOutOfRange)
	})

	t.Run("unknown vehicle fails and lists valid types", func(t *testing.T) {
		_, err := VehicleEmissions(table, VehicleEmissionsInput{DistanceKm: 100, Vehicle: "rickshaw"})
		require.Error(t, err)
		assert.ErrorIs(t, err, factors.ErrUnknownVehicleType)
		assert.Contains(t, err.Error(), "truck")
		assert.Contains(t, err.Error(), "rail")
	})

	t.Run("negative distance rejected", func(t *testing.T) {
		_, err := VehicleEmissions(table, VehicleEmissionsInput{DistanceKm: -1, Vehicle: factors.VehicleTruck})
		assert.ErrorIs(t, err, ErrNegativeDistance)
	})
}

func TestRouteSavings(t *testing.T) {
	table := factors.Default()

	t.Run("annual savings", func(t *testing.T) {
		got, err := RouteSavings(table, 150, 100, factors.VehicleTruck, 200, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, got.KmSavedPerTrip, 1e-9)
		assert.InDelta(t, 3.1, got.CO2SavedPerTrip, 1e-9)
		assert.InDelta(t, 10000.0, got.AnnualKmSaved, 1e-9)
		assert.InDelta(t, 620.0, got.AnnualCO2SavedKg, 1e-9)
	})

	t.Run("unknown vehicle silently falls back to truck", func(t *testing.T) {
		unknown, err := RouteSavings(table, 150, 100, "rickshaw", 200, 1.0)
		require.NoError(t, err)
		truck, err := RouteSavings(table, 150, 100, factors.VehicleTruck, 200, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, truck.AnnualCO2SavedKg, unknown.AnnualCO2SavedKg, 1e-9)
	})

	t.Run("equal distances cannot express savings", func(t *testing.T) {
		_, err := RouteSavings(table, 100, 100, factors.VehicleTruck, 10, 1.0)
		assert.ErrorIs(t, err, ErrNoSavings)
	})

	t.Run("longer optimized route rejected", func(t *testing.T) {
		_, err := RouteSavings(table, 100, 120, factors.VehicleTruck, 10, 1.0)
		assert.ErrorIs(t, err, ErrNoSavings)
	})

	t.Run("zero trips rejected", func(t *testing.T) {
		_, err := RouteSavings(table, 150, 100, factors.VehicleTruck, 0, 1.0)
		assert.ErrorIs(t, err, ErrNonPositiveTrips)
	})
}

func TestEstimate(t *testing.T) {
	table := factors.Default()

	t.Run("distance is haversine times circuity", func(t *testing.T) {
		haversine, err := HaversineDistance(mumbaiLat, mumbaiLon, puneLat, puneLon)
		require.NoError(t, err)

		got, err := Estimate(table, EstimateInput{
			FromLat: mumbaiLat, FromLon: mumbaiLon,
			ToLat: puneLat, ToLon: puneLon,
			Vehicle: factors.VehicleTruck,
		})
		require.NoError(t, err)
		assert.InDelta(t, mathx.Round2(haversine*DefaultCircuityFactor), got.DistanceKm, 1e-9)
		assert.InDelta(t, haversine, got.GreatCircleKm, 1e-9)
	})

	t.Run("default cost rate applied", func(t *testing.T) {
		got, err := Estimate(table, EstimateInput{
			FromLat: mumbaiLat, FromLon: mumbaiLon,
			ToLat: puneLat, ToLon: puneLon,
			Vehicle: factors.VehicleTruck,
		})
		require.NoError(t, err)
		assert.InDelta(t, mathx.Round2(got.DistanceKm*DefaultCostPerKmINR), got.CostINR, 1e-9)
	})

	t.Run("custom circuity and rate", func(t *testing.T) {
		got, err := Estimate(table, EstimateInput{
			FromLat: mumbaiLat, FromLon: mumbaiLon,
			ToLat: puneLat, ToLon: puneLon,
			Vehicle:        factors.VehicleRail,
			CircuityFactor: 1.15,
			CostPerKmINR:   12,
		})
		require.NoError(t, err)
		assert.InDelta(t, mathx.Round2(got.DistanceKm*12), got.CostINR, 1e-9)
	})

	t.Run("invalid coordinate propagates", func(t *testing.T) {
		_, err := Estimate(table, EstimateInput{FromLat: 99, Vehicle: factors.VehicleTruck})
		assert.ErrorIs(t, err, ErrCoordinateOutOfRange)
	})

	t.Run("unknown vehicle propagates strict error", func(t *testing.T) {
		_, err := Estimate(table, EstimateInput{
			FromLat: mumbaiLat, FromLon: mumbaiLon,
			ToLat: puneLat, ToLon: puneLon,
			Vehicle: "rickshaw",
		})
		assert.ErrorIs(t, err, factors.ErrUnknownVehicleType)
	})
}
