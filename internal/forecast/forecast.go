// Package forecast implements the predictive functions: exponential
// smoothing (simple and Holt-Winters multiplicative), confidence
// intervals, and ordinary least squares regression. Series with fewer
// than MinDataPoints observations produce an explicit insufficient-data
// result instead of a numerically unstable estimate.
package forecast

import (
	"fmt"
	"math"

	"github.com/nmehta6/wastelink/internal/mathx"
)

// MinDataPoints is the minimum series length any forecasting function
// accepts. Callers are expected to collect at least three periods of
// history before asking for a prediction.
const MinDataPoints = 3

// DefaultConfidenceZ is the z-score for a 95% confidence band.
const DefaultConfidenceZ = 1.96

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation sentinels. Compare with errors.Is().
var (
	// ErrSmoothingParamOutOfRange indicates alpha, beta, or gamma outside (0,1].
	ErrSmoothingParamOutOfRange = constError("smoothing parameter out of range")

	// ErrNonPositiveSeries indicates a non-positive observation in a series
	// that requires strictly positive values (multiplicative seasonality).
	ErrNonPositiveSeries = constError("series values must be positive")

	// ErrInvalidSeasonLength indicates a season length that does not fit the
	// series.
	ErrInvalidSeasonLength = constError("invalid season length")
)

// InsufficientDataMessage is the message carried by placeholder results.
const InsufficientDataMessage = "insufficient data: at least 3 historical points required"

// Point is one forecasted period with its confidence band.
type Point struct {
	Period          int     `json:"period"`
	PredictedValue  float64 `json:"predictedValue"`
	LowerBound      float64 `json:"lowerBound"`
	UpperBound      float64 `json:"upperBound"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
}

// Result is the outcome of a forecasting run. When the input series is too
// short, InsufficientData is true, Message explains why, and the numeric
// fields are zero placeholders. Short input is an expected condition for
// young facilities, not an error.
type Result struct {
	Smoothed         []float64 `json:"smoothed,omitempty"`
	Points           []Point   `json:"points,omitempty"`
	MAPE             float64   `json:"mape"`
	InsufficientData bool      `json:"insufficientData"`
	Message          string    `json:"message,omitempty"`
}

// insufficient returns the placeholder result for a too-short series.
func insufficient() Result {
	return Result{InsufficientData: true, Message: InsufficientDataMessage}
}

// ExponentialSmoothing applies simple exponential smoothing with parameter
// alpha and forecasts the requested number of periods ahead. The forecast
// is flat (the last smoothed level) with a confidence band of ±z standard
// deviations of the one-step-ahead residuals.
func ExponentialSmoothing(series []float64, alpha float64, horizon int) (Result, error) {
	if alpha <= 0 || alpha > 1 {
		return Result{}, fmt.Errorf("%w: alpha=%s", ErrSmoothingParamOutOfRange, mathx.Num(alpha))
	}
	if len(series) < MinDataPoints {
		return insufficient(), nil
	}
	if horizon < 1 {
		horizon = 1
	}

	smoothed := make([]float64, len(series))
	smoothed[0] = series[0]
	for i := 1; i < len(series); i++ {
		smoothed[i] = alpha*series[i] + (1-alpha)*smoothed[i-1]
	}

	// One-step-ahead residuals: smoothed[i-1] was the forecast for series[i].
	residuals := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		residuals = append(residuals, series[i]-smoothed[i-1])
	}
	sd := stdDev(residuals)

	level := smoothed[len(smoothed)-1]
	points := make([]Point, 0, horizon)
	for h := 1; h <= horizon; h++ {
		lower, upper := ConfidenceInterval(level, sd, DefaultConfidenceZ)
		points = append(points, Point{
			Period:          h,
			PredictedValue:  mathx.Round2(level),
			LowerBound:      mathx.Round2(lower),
			UpperBound:      mathx.Round2(upper),
			ConfidenceLevel: 0.95,
		})
	}

	return Result{
		Smoothed: roundAll(smoothed),
		Points:   points,
		MAPE:     mape(series[1:], smoothed[:len(smoothed)-1]),
	}, nil
}

// HoltWintersParams are the three smoothing parameters of the triple
// exponential model. All must be in (0,1].
type HoltWintersParams struct {
	Alpha float64 `json:"alpha"` // level
	Beta  float64 `json:"beta"`  // trend
	Gamma float64 `json:"gamma"` // seasonality
}

// DefaultHoltWintersParams returns the standard parameter set used when a
// caller has no tuned values.
func DefaultHoltWintersParams() HoltWintersParams {
	return HoltWintersParams{Alpha: 0.3, Beta: 0.1, Gamma: 0.2}
}

func (p HoltWintersParams) validate() error {
	for name, v := range map[string]float64{"alpha": p.Alpha, "beta": p.Beta, "gamma": p.Gamma} {
		if v <= 0 || v > 1 {
			return fmt.Errorf("%w: %s=%s", ErrSmoothingParamOutOfRange, name, mathx.Num(v))
		}
	}
	return nil
}

// HoltWinters applies triple exponential smoothing with multiplicative
// seasonality and forecasts horizon periods ahead with 95% confidence
// bands. The series must cover at least two full seasons and every value
// must be positive (multiplicative seasonal indices divide by the level).
func HoltWinters(series []float64, seasonLength int, params HoltWintersParams, horizon int) (Result, error) {
	if err := params.validate(); err != nil {
		return Result{}, err
	}
	if seasonLength < 2 {
		return Result{}, fmt.Errorf("%w: season_length=%d", ErrInvalidSeasonLength, seasonLength)
	}
	if len(series) < MinDataPoints {
		return insufficient(), nil
	}
	if len(series) < 2*seasonLength {
		return Result{}, fmt.Errorf("%w: need %d points for season_length=%d, got %d",
			ErrInvalidSeasonLength, 2*seasonLength, seasonLength, len(series))
	}
	for i, v := range series {
		if v <= 0 {
			return Result{}, fmt.Errorf("%w: series[%d]=%s", ErrNonPositiveSeries, i, mathx.Num(v))
		}
	}
	if horizon < 1 {
		horizon = 1
	}

	level, trend := initialLevelTrend(series, seasonLength)
	seasonal := initialSeasonals(series, seasonLength)

	smoothed := make([]float64, len(series))
	residuals := make([]float64, 0, len(series))
	for i, v := range series {
		idx := i % seasonLength
		if i < seasonLength {
			smoothed[i] = (level + float64(i)*trend) * seasonal[idx]
			residuals = append(residuals, v-smoothed[i])
			continue
		}

		fitted := (level + trend) * seasonal[idx]
		smoothed[i] = fitted
		residuals = append(residuals, v-fitted)

		prevLevel := level
		level = params.Alpha*(v/seasonal[idx]) + (1-params.Alpha)*(level+trend)
		trend = params.Beta*(level-prevLevel) + (1-params.Beta)*trend
		seasonal[idx] = params.Gamma*(v/level) + (1-params.Gamma)*seasonal[idx]
	}

	sd := stdDev(residuals)
	points := make([]Point, 0, horizon)
	for h := 1; h <= horizon; h++ {
		idx := (len(series) + h - 1) % seasonLength
		predicted := (level + float64(h)*trend) * seasonal[idx]
		lower, upper := ConfidenceInterval(predicted, sd, DefaultConfidenceZ)
		points = append(points, Point{
			Period:          h,
			PredictedValue:  mathx.Round2(predicted),
			LowerBound:      mathx.Round2(lower),
			UpperBound:      mathx.Round2(upper),
			ConfidenceLevel: 0.95,
		})
	}

	return Result{
		Smoothed: roundAll(smoothed),
		Points:   points,
		MAPE:     mape(series, smoothed),
	}, nil
}

// ConfidenceInterval returns [mean − z×sd, mean + z×sd]. A zero standard
// deviation collapses the band onto the mean.
func ConfidenceInterval(mean, stdDev, zScore float64) (lower, upper float64) {
	margin := zScore * stdDev
	return mean - margin, mean + margin
}

// Regression is the outcome of an ordinary least squares fit.
type Regression struct {
	Slope            float64 `json:"slope"`
	Intercept        float64 `json:"intercept"`
	RSquared         float64 `json:"rSquared"`
	InsufficientData bool    `json:"insufficientData"`
	Message          string  `json:"message,omitempty"`
}

// XY is one regression observation.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LinearRegression fits y = slope×x + intercept by ordinary least squares
// and reports the coefficient of determination. Fewer than three points
// produce the insufficient-data placeholder.
func LinearRegression(points []XY) Regression {
	if len(points) < MinDataPoints {
		return Regression{InsufficientData: true, Message: InsufficientDataMessage}
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		// All x identical: a vertical line has no OLS solution.
		return Regression{InsufficientData: true, Message: "insufficient data: all x values identical"}
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for _, p := range points {
		fitted := slope*p.X + intercept
		ssRes += (p.Y - fitted) * (p.Y - fitted)
		ssTot += (p.Y - meanY) * (p.Y - meanY)
	}

	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return Regression{
		Slope:     mathx.Round(slope, 6),
		Intercept: mathx.Round(intercept, 6),
		RSquared:  mathx.Round(mathx.Clamp(r2, 0, 1), 4),
	}
}

// initialLevelTrend seeds Holt-Winters from the first two seasons: the
// level is the first season's mean and the trend is the average
// per-period change between the two season means.
func initialLevelTrend(series []float64, seasonLength int) (level, trend float64) {
	var first, second float64
	for i := range seasonLength {
		first += series[i]
		second += series[i+seasonLength]
	}
	first /= float64(seasonLength)
	second /= float64(seasonLength)
	return first, (second - first) / float64(seasonLength)
}

// initialSeasonals seeds the multiplicative seasonal indices from the
// first season against its mean.
func initialSeasonals(series []float64, seasonLength int) []float64 {
	var mean float64
	for i := range seasonLength {
		mean += series[i]
	}
	mean /= float64(seasonLength)

	seasonal := make([]float64, seasonLength)
	for i := range seasonLength {
		seasonal[i] = series[i] / mean
	}
	return seasonal
}

// mape returns the mean absolute percentage error of fitted against
// actual, in percent. Zero actuals are skipped.
func mape(actual, fitted []float64) float64 {
	var sum float64
	var n int
	for i := range actual {
		if actual[i] == 0 {
			continue
		}
		sum += math.Abs((actual[i] - fitted[i]) / actual[i])
		n++
	}
	if n == 0 {
		return 0
	}
	return mathx.Round2(sum / float64(n) * 100)
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}

func roundAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = mathx.Round2(v)
	}
	return out
}
