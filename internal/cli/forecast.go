package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmehta6/wastelink/internal/forecast"
	"github.com/nmehta6/wastelink/internal/mathx"
)

func newForecastCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Time-series forecasting and regression",
	}
	cmd.AddCommand(newForecastSmoothCmd(rt), newForecastHoltWintersCmd(rt), newForecastRegressCmd(rt))
	return cmd
}

// forecastRows renders a forecast result, including the insufficient-data
// placeholder.
func forecastRows(result forecast.Result) []row {
	if result.InsufficientData {
		return []row{{"Status", result.Message}}
	}

	rows := make([]row, 0, len(result.Points)+1)
	for _, p := range result.Points {
		rows = append(rows, row{
			fmt.Sprintf("Period +%d", p.Period),
			fmt.Sprintf("%s  [%s, %s]",
				mathx.FormatAmount(p.PredictedValue, 2),
				mathx.FormatAmount(p.LowerBound, 2),
				mathx.FormatAmount(p.UpperBound, 2)),
		})
	}
	rows = append(rows, row{"MAPE", fmt.Sprintf("%s%%", mathx.Num(result.MAPE))})
	return rows
}

func newForecastSmoothCmd(rt *runtime) *cobra.Command {
	var seriesFlag string
	var alpha float64
	var horizon int

	cmd := &cobra.Command{
		Use:   "smooth",
		Short: "Simple exponential smoothing forecast",
		RunE: func(cmd *cobra.Command, _ []string) error {
			series, err := parseFloatList(seriesFlag)
			if err != nil {
				return err
			}
			result, err := forecast.ExponentialSmoothing(series, alpha, horizon)
			if err != nil {
				return err
			}
			return emit(cmd, rt, "Exponential Smoothing", result, forecastRows(result))
		},
	}

	cmd.Flags().StringVar(&seriesFlag, "series", "", "comma-separated historical values")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.3, "level smoothing parameter (0,1]")
	cmd.Flags().IntVar(&horizon, "horizon", 1, "periods to forecast")
	_ = cmd.MarkFlagRequired("series")

	return cmd
}

func newForecastHoltWintersCmd(rt *runtime) *cobra.Command {
	var seriesFlag string
	var seasonLength, horizon int
	params := forecast.DefaultHoltWintersParams()

	cmd := &cobra.Command{
		Use:   "holtwinters",
		Short: "Triple exponential smoothing with multiplicative seasonality",
		RunE: func(cmd *cobra.Command, _ []string) error {
			series, err := parseFloatList(seriesFlag)
			if err != nil {
				return err
			}
			result, err := forecast.HoltWinters(series, seasonLength, params, horizon)
			if err != nil {
				return err
			}
			return emit(cmd, rt, "Holt-Winters Forecast", result, forecastRows(result))
		},
	}

	cmd.Flags().StringVar(&seriesFlag, "series", "", "comma-separated historical values")
	cmd.Flags().IntVar(&seasonLength, "season", 12, "periods per season")
	cmd.Flags().IntVar(&horizon, "horizon", 1, "periods to forecast")
	cmd.Flags().Float64Var(&params.Alpha, "alpha", params.Alpha, "level smoothing parameter (0,1]")
	cmd.Flags().Float64Var(&params.Beta, "beta", params.Beta, "trend smoothing parameter (0,1]")
	cmd.Flags().Float64Var(&params.Gamma, "gamma", params.Gamma, "seasonal smoothing parameter (0,1]")
	_ = cmd.MarkFlagRequired("series")

	return cmd
}

func newForecastRegressCmd(rt *runtime) *cobra.Command {
	var pointsFlag, seriesFlag string

	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Ordinary least squares linear regression",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var points []forecast.XY

			switch {
			case pointsFlag != "":
				pairs, err := parsePointList(pointsFlag)
				if err != nil {
					return err
				}
				for _, p := range pairs {
					points = append(points, forecast.XY{X: p[0], Y: p[1]})
				}
			case seriesFlag != "":
				values, err := parseFloatList(seriesFlag)
				if err != nil {
					return err
				}
				for i, v := range values {
					points = append(points, forecast.XY{X: float64(i + 1), Y: v})
				}
			default:
				return fmt.Errorf("one of --points or --series is required")
			}

			result := forecast.LinearRegression(points)
			if result.InsufficientData {
				return emit(cmd, rt, "Linear Regression", result, []row{{"Status", result.Message}})
			}
			return emit(cmd, rt, "Linear Regression", result, []row{
				{"Slope", mathx.Num(result.Slope)},
				{"Intercept", mathx.Num(result.Intercept)},
				{"R²", mathx.Num(result.RSquared)},
			})
		},
	}

	cmd.Flags().StringVar(&pointsFlag, "points", "", "observations as x:y,x:y")
	cmd.Flags().StringVar(&seriesFlag, "series", "", "y values at x = 1,2,3,...")

	return cmd
}
