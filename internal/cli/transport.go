package cli

import (
	"github.com/spf13/cobra"

	"github.com/nmehta6/wastelink/internal/factors"
	"github.com/nmehta6/wastelink/internal/mathx"
	"github.com/nmehta6/wastelink/internal/transport"
)

func newTransportCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transport",
		Short: "Transport distance, emissions, and cost",
	}
	cmd.AddCommand(
		newTransportDistanceCmd(rt),
		newTransportEmissionsCmd(rt),
		newTransportSavingsCmd(rt),
		newTransportEstimateCmd(rt),
	)
	return cmd
}

// distanceResult is the CLI shape of a great-circle distance.
type distanceResult struct {
	DistanceKm float64 `json:"distanceKm"`
	FromLat    float64 `json:"fromLat"`
	FromLon    float64 `json:"fromLon"`
	ToLat      float64 `json:"toLat"`
	ToLon      float64 `json:"toLon"`
}

func newTransportDistanceCmd(rt *runtime) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Great-circle distance between two coordinates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fromLat, fromLon, err := parseLatLon(from)
			if err != nil {
				return err
			}
			toLat, toLon, err := parseLatLon(to)
			if err != nil {
				return err
			}

			km, err := transport.HaversineDistance(fromLat, fromLon, toLat, toLon)
			if err != nil {
				return err
			}
			result := distanceResult{DistanceKm: km, FromLat: fromLat, FromLon: fromLon, ToLat: toLat, ToLon: toLon}
			return emit(cmd, rt, "Great-Circle Distance", result, []row{
				{"Distance", mathx.FormatAmount(km, 2) + " km"},
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin as lat,lon")
	cmd.Flags().StringVar(&to, "to", "", "destination as lat,lon")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newTransportEmissionsCmd(rt *runtime) *cobra.Command {
	var in transport.VehicleEmissionsInput
	var vehicle string

	cmd := &cobra.Command{
		Use:   "emissions",
		Short: "Freight emissions for a distance and vehicle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Vehicle = factors.VehicleType(vehicle)
			result, err := transport.VehicleEmissions(rt.table, in)
			if err != nil {
				return err
			}
			return emit(cmd, rt, "Vehicle Emissions", result, []row{
				{"CO2", mathx.FormatAmount(result.CO2Kg, 2) + " kg"},
				{"Vehicle", string(result.Vehicle)},
				{"Load factor", mathx.Num(result.LoadFactor)},
				{"Formula", result.Formula},
			})
		},
	}

	cmd.Flags().Float64Var(&in.DistanceKm, "distance-km", 0, "trip distance (km)")
	cmd.Flags().StringVar(&vehicle, "vehicle", "truck", "vehicle type")
	cmd.Flags().Float64Var(&in.LoadFactor, "load-factor", 0, "capacity utilization, 0 for full load")
	_ = cmd.MarkFlagRequired("distance-km")

	return cmd
}

func newTransportSavingsCmd(rt *runtime) *cobra.Command {
	var originalKm, optimizedKm, loadFactor float64
	var vehicle string
	var annualTrips int

	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Annual savings from a route optimization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := transport.RouteSavings(rt.table, originalKm, optimizedKm,
				factors.VehicleType(vehicle), annualTrips, loadFactor)
			if err != nil {
				return err
			}
			return emit(cmd, rt, "Route Optimization Savings", result, []row{
				{"Km saved per trip", mathx.FormatAmount(result.KmSavedPerTrip, 2)},
				{"CO2 saved per trip", mathx.FormatAmount(result.CO2SavedPerTrip, 2) + " kg"},
				{"Annual km saved", mathx.FormatAmount(result.AnnualKmSaved, 2)},
				{"Annual CO2 saved", mathx.FormatAmount(result.AnnualCO2SavedKg, 2) + " kg"},
				{"Formula", result.Formula},
			})
		},
	}

	cmd.Flags().Float64Var(&originalKm, "original-km", 0, "original route distance (km)")
	cmd.Flags().Float64Var(&optimizedKm, "optimized-km", 0, "optimized route distance (km)")
	cmd.Flags().StringVar(&vehicle, "vehicle", "truck", "vehicle type, unknown types use the truck factor")
	cmd.Flags().IntVar(&annualTrips, "annual-trips", 0, "trips per year")
	cmd.Flags().Float64Var(&loadFactor, "load-factor", 0, "capacity utilization, 0 for full load")
	_ = cmd.MarkFlagRequired("original-km")
	_ = cmd.MarkFlagRequired("optimized-km")
	_ = cmd.MarkFlagRequired("annual-trips")

	return cmd
}

func newTransportEstimateCmd(rt *runtime) *cobra.Command {
	var from, to, vehicle string
	var loadFactor float64

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Door-to-door distance, emissions, and cost between two sites",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fromLat, fromLon, err := parseLatLon(from)
			if err != nil {
				return err
			}
			toLat, toLon, err := parseLatLon(to)
			if err != nil {
				return err
			}

			result, err := transport.Estimate(rt.table, transport.EstimateInput{
				FromLat: fromLat, FromLon: fromLon,
				ToLat: toLat, ToLon: toLon,
				Vehicle:        factors.VehicleType(vehicle),
				LoadFactor:     loadFactor,
				CircuityFactor: rt.cfg.Transport.CircuityFactor,
				CostPerKmINR:   rt.cfg.Transport.CostPerKmINR,
			})
			if err != nil {
				return err
			}
			return emit(cmd, rt, "Transport Estimate", result, []row{
				{"Great-circle", mathx.FormatAmount(result.GreatCircleKm, 2) + " km"},
				{"Road distance", mathx.FormatAmount(result.DistanceKm, 2) + " km"},
				{"CO2", mathx.FormatAmount(result.CO2Kg, 2) + " kg"},
				{"Cost", "₹" + mathx.FormatAmount(result.CostINR, 2)},
				{"Formula", result.Formula},
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin as lat,lon")
	cmd.Flags().StringVar(&to, "to", "", "destination as lat,lon")
	cmd.Flags().StringVar(&vehicle, "vehicle", "truck", "vehicle type")
	cmd.Flags().Float64Var(&loadFactor, "load-factor", 0, "capacity utilization, 0 for full load")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
