package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialSmoothing(t *testing.T) {
	t.Run("hand-computed smoothing", func(t *testing.T) {
		got, err := ExponentialSmoothing([]float64{10, 20, 30}, 0.5, 1)
		require.NoError(t, err)
		require.False(t, got.InsufficientData)

		assert.Equal(t, []float64{10, 15, 22.5}, got.Smoothed)

		require.Len(t, got.Points, 1)
		assert.InDelta(t, 22.5, got.Points[0].PredictedValue, 1e-9)
		// Residuals are 10 and 15: sd = 2.5, band = ±1.96 × 2.5 = ±4.9.
		assert.InDelta(t, 17.6, got.Points[0].LowerBound, 1e-9)
		assert.InDelta(t, 27.4, got.Points[0].UpperBound, 1e-9)
		assert.InDelta(t, 0.95, got.Points[0].ConfidenceLevel, 1e-9)
		assert.InDelta(t, 50.0, got.MAPE, 1e-9)
	})

	t.Run("constant series forecasts itself with zero-width band", func(t *testing.T) {
		got, err := ExponentialSmoothing([]float64{100, 100, 100, 100}, 0.3, 3)
		require.NoError(t, err)
		require.Len(t, got.Points, 3)
		for _, p := range got.Points {
			assert.InDelta(t, 100.0, p.PredictedValue, 1e-9)
			assert.InDelta(t, 100.0, p.LowerBound, 1e-9)
			assert.InDelta(t, 100.0, p.UpperBound, 1e-9)
		}
		assert.InDelta(t, 0.0, got.MAPE, 1e-9)
	})

	t.Run("periods numbered from one", func(t *testing.T) {
		got, err := ExponentialSmoothing([]float64{5, 6, 7, 8}, 0.4, 2)
		require.NoError(t, err)
		require.Len(t, got.Points, 2)
		assert.Equal(t, 1, got.Points[0].Period)
		assert.Equal(t, 2, got.Points[1].Period)
	})

	t.Run("short series yields placeholder not error", func(t *testing.T) {
		got, err := ExponentialSmoothing([]float64{10, 20}, 0.5, 1)
		require.NoError(t, err)
		assert.True(t, got.InsufficientData)
		assert.Equal(t, InsufficientDataMessage, got.Message)
		assert.Empty(t, got.Points)
		assert.Empty(t, got.Smoothed)
	})

	t.Run("alpha out of range", func(t *testing.T) {
		for _, alpha := range []float64{0, -0.1, 1.1} {
			_, err := ExponentialSmoothing([]float64{1, 2, 3}, alpha, 1)
			assert.ErrorIs(t, err, ErrSmoothingParamOutOfRange)
		}
	})
}

func TestHoltWinters(t *testing.T) {
	params := DefaultHoltWintersParams()

	t.Run("stationary seasonal series reproduced exactly", func(t *testing.T) {
		series := []float64{10, 20, 10, 20, 10, 20}
		got, err := HoltWinters(series, 2, params, 2)
		require.NoError(t, err)
		require.False(t, got.InsufficientData)

		require.Len(t, got.Points, 2)
		assert.InDelta(t, 10.0, got.Points[0].PredictedValue, 1e-6)
		assert.InDelta(t, 20.0, got.Points[1].PredictedValue, 1e-6)
		// A perfect fit has zero residuals, so the band collapses.
		assert.InDelta(t, got.Points[0].PredictedValue, got.Points[0].LowerBound, 1e-6)
		assert.InDelta(t, got.Points[0].PredictedValue, got.Points[0].UpperBound, 1e-6)
		assert.InDelta(t, 0.0, got.MAPE, 1e-6)
	})

	t.Run("trending seasonal series forecasts upward", func(t *testing.T) {
		// Monthly waste volumes with a 4-period season and steady growth.
		series := []float64{100, 120, 90, 110, 110, 132, 99, 121, 121, 145, 109, 133}
		got, err := HoltWinters(series, 4, params, 4)
		require.NoError(t, err)
		require.Len(t, got.Points, 4)

		// Every forecast continues above the corresponding first-season value.
		for i, p := range got.Points {
			assert.Greater(t, p.PredictedValue, series[i], "period %d", p.Period)
			assert.LessOrEqual(t, p.LowerBound, p.PredictedValue)
			assert.GreaterOrEqual(t, p.UpperBound, p.PredictedValue)
		}
		assert.Less(t, got.MAPE, 10.0)
	})

	t.Run("short series yields placeholder", func(t *testing.T) {
		got, err := HoltWinters([]float64{10, 20}, 2, params, 1)
		require.NoError(t, err)
		assert.True(t, got.InsufficientData)
	})

	t.Run("fewer than two seasons rejected", func(t *testing.T) {
		_, err := HoltWinters([]float64{10, 20, 10, 20, 10}, 3, params, 1)
		assert.ErrorIs(t, err, ErrInvalidSeasonLength)
	})

	t.Run("non-positive values rejected", func(t *testing.T) {
		_, err := HoltWinters([]float64{10, 0, 10, 20}, 2, params, 1)
		require.ErrorIs(t, err, ErrNonPositiveSeries)
		assert.Contains(t, err.Error(), "series[1]")
	})

	t.Run("bad gamma rejected", func(t *testing.T) {
		bad := params
		bad.Gamma = 1.5
		_, err := HoltWinters([]float64{10, 20, 10, 20}, 2, bad, 1)
		require.ErrorIs(t, err, ErrSmoothingParamOutOfRange)
		assert.Contains(t, err.Error(), "gamma")
	})
}

func TestConfidenceInterval(t *testing.T) {
	t.Run("95 percent band", func(t *testing.T) {
		lower, upper := ConfidenceInterval(100, 10, 1.96)
		assert.InDelta(t, 80.4, lower, 1e-9)
		assert.InDelta(t, 119.6, upper, 1e-9)
	})

	t.Run("zero deviation collapses onto mean", func(t *testing.T) {
		lower, upper := ConfidenceInterval(42, 0, 1.96)
		assert.InDelta(t, 42.0, lower, 1e-9)
		assert.InDelta(t, 42.0, upper, 1e-9)
	})
}

func TestLinearRegression(t *testing.T) {
	t.Run("perfect line", func(t *testing.T) {
		got := LinearRegression([]XY{{1, 3}, {2, 5}, {3, 7}})
		require.False(t, got.InsufficientData)
		assert.InDelta(t, 2.0, got.Slope, 1e-9)
		assert.InDelta(t, 1.0, got.Intercept, 1e-9)
		assert.InDelta(t, 1.0, got.RSquared, 1e-9)
	})

	t.Run("flat line", func(t *testing.T) {
		got := LinearRegression([]XY{{1, 4}, {2, 4}, {3, 4}})
		assert.InDelta(t, 0.0, got.Slope, 1e-9)
		assert.InDelta(t, 4.0, got.Intercept, 1e-9)
		// ssTot is zero for a constant y; fit is exact.
		assert.InDelta(t, 1.0, got.RSquared, 1e-9)
	})

	t.Run("noisy data has r squared below one", func(t *testing.T) {
		got := LinearRegression([]XY{{1, 2}, {2, 4.5}, {3, 5.5}, {4, 8.5}})
		require.False(t, got.InsufficientData)
		assert.Greater(t, got.Slope, 0.0)
		assert.Less(t, got.RSquared, 1.0)
		assert.Greater(t, got.RSquared, 0.9)
	})

	t.Run("two points is insufficient", func(t *testing.T) {
		got := LinearRegression([]XY{{1, 1}, {2, 2}})
		assert.True(t, got.InsufficientData)
		assert.Equal(t, InsufficientDataMessage, got.Message)
	})

	t.Run("identical x values is insufficient", func(t *testing.T) {
		got := LinearRegression([]XY{{2, 1}, {2, 2}, {2, 3}})
		assert.True(t, got.InsufficientData)
	})
}
