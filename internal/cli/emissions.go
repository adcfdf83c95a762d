package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmehta6/wastelink/internal/emissions"
	"github.com/nmehta6/wastelink/internal/logging"
	"github.com/nmehta6/wastelink/internal/mathx"
)

func newEmissionsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emissions",
		Short: "Scope 1/2/3 emissions accounting",
	}
	cmd.AddCommand(
		newEmissionsAssessCmd(rt),
		newEmissionsMethaneCmd(rt),
		newEmissionsIncinerationCmd(rt),
		newEmissionsEquivalencyCmd(rt),
	)
	return cmd
}

// incinerationResult is the CLI shape of the scalar incineration figure.
type incinerationResult struct {
	CO2eKg            float64 `json:"co2eKg"`
	WasteKg           float64 `json:"wasteKg"`
	CompositionFactor float64 `json:"compositionFactor"`
}

func newEmissionsIncinerationCmd(rt *runtime) *cobra.Command {
	var wasteKg, compositionFactor float64

	cmd := &cobra.Command{
		Use:   "incineration",
		Short: "Emissions from burning a waste mix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			co2e, err := emissions.Incineration(wasteKg, compositionFactor)
			if err != nil {
				return err
			}
			result := incinerationResult{CO2eKg: co2e, WasteKg: wasteKg, CompositionFactor: compositionFactor}
			return emit(cmd, rt, "Incineration Emissions", result, []row{
				{"Waste", mathx.FormatAmount(wasteKg, 2) + " kg"},
				{"CO2e", mathx.FormatAmount(co2e, 2) + " kg"},
			})
		},
	}

	cmd.Flags().Float64Var(&wasteKg, "waste-kg", 0, "waste incinerated (kg)")
	cmd.Flags().Float64Var(&compositionFactor, "composition-factor", 0, "kg CO2e per kg for the waste mix")
	_ = cmd.MarkFlagRequired("waste-kg")
	_ = cmd.MarkFlagRequired("composition-factor")

	return cmd
}

func newEmissionsAssessCmd(rt *runtime) *cobra.Command {
	var in emissions.Input
	var revenueLakhs float64

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess a facility's scope 1/2/3 emissions for one period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := emissions.Assess(rt.table, in)
			if err != nil {
				return err
			}

			logger := logging.FromContext(cmd.Context())
			logger.Info().
				Float64("total_co2e", result.TotalCO2e).
				Float64("scope1", result.Scope1).
				Float64("scope2", result.Scope2).
				Float64("scope3", result.Scope3).
				Msg("emissions assessed")

			rows := []row{
				{"Scope 1 (combustion)", mathx.FormatAmount(result.Scope1, 2) + " kg CO2e"},
				{"Scope 2 (electricity)", mathx.FormatAmount(result.Scope2, 2) + " kg CO2e"},
				{"Scope 3 (water, waste)", mathx.FormatAmount(result.Scope3, 2) + " kg CO2e"},
				{"Total", mathx.FormatAmount(result.TotalCO2e, 2) + " kg CO2e"},
				{"Formula", result.Formula},
			}

			if revenueLakhs > 0 {
				intensity, err := emissions.CarbonIntensity(result.TotalCO2e, revenueLakhs)
				if err != nil {
					return err
				}
				rows = append(rows, row{"Intensity", mathx.FormatAmount(intensity, 2) + " kg CO2e / lakh INR"})
			}

			return emit(cmd, rt, "Emissions Assessment", result, rows)
		},
	}

	cmd.Flags().Float64Var(&in.ElectricityKwh, "electricity-kwh", 0, "grid electricity consumed (kWh)")
	cmd.Flags().Float64Var(&in.DieselLiters, "diesel-liters", 0, "diesel burned (liters)")
	cmd.Flags().Float64Var(&in.PetrolLiters, "petrol-liters", 0, "petrol burned (liters)")
	cmd.Flags().Float64Var(&in.LPGLiters, "lpg-liters", 0, "LPG burned (liters)")
	cmd.Flags().Float64Var(&in.NaturalGasKg, "natural-gas-kg", 0, "natural gas burned (kg)")
	cmd.Flags().Float64Var(&in.CoalKg, "coal-kg", 0, "coal burned (kg)")
	cmd.Flags().Float64Var(&in.WaterLiters, "water-liters", 0, "water supplied (liters)")
	cmd.Flags().Float64Var(&in.WasteKg, "waste-kg", 0, "waste landfilled (kg)")
	cmd.Flags().Float64Var(&revenueLakhs, "revenue-lakhs", 0, "period revenue in lakh INR, adds carbon intensity")

	return cmd
}

// methaneResult combines the CH4 mass with its CO2e conversion for output.
type methaneResult struct {
	CH4Kg   float64 `json:"ch4Kg"`
	CO2eKg  float64 `json:"co2eKg"`
	WasteKg float64 `json:"wasteKg"`
}

func newEmissionsMethaneCmd(rt *runtime) *cobra.Command {
	var wasteKg float64
	params := emissions.DefaultDecayParams()

	cmd := &cobra.Command{
		Use:   "methane",
		Short: "Landfill methane generation by first-order decay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch4, err := emissions.LandfillMethane(wasteKg, params)
			if err != nil {
				return err
			}
			result := methaneResult{
				CH4Kg:   ch4,
				CO2eKg:  emissions.MethaneToCO2e(ch4),
				WasteKg: wasteKg,
			}

			return emit(cmd, rt, "Landfill Methane", result, []row{
				{"Waste", mathx.FormatAmount(wasteKg, 2) + " kg"},
				{"CH4 generated", mathx.FormatAmount(result.CH4Kg, 2) + " kg"},
				{"CO2e (GWP-100)", mathx.FormatAmount(result.CO2eKg, 2) + " kg"},
			})
		},
	}

	cmd.Flags().Float64Var(&wasteKg, "waste-kg", 0, "organic waste landfilled (kg)")
	cmd.Flags().Float64Var(&params.MethaneCorrectionFactor, "mcf", params.MethaneCorrectionFactor, "methane correction factor")
	cmd.Flags().Float64Var(&params.DegradableOrganicCarbon, "doc", params.DegradableOrganicCarbon, "degradable organic carbon fraction")
	cmd.Flags().Float64Var(&params.FractionDecomposed, "docf", params.FractionDecomposed, "fraction of DOC decomposed")
	cmd.Flags().Float64Var(&params.MethaneFraction, "methane-fraction", params.MethaneFraction, "CH4 fraction of landfill gas")
	_ = cmd.MarkFlagRequired("waste-kg")

	return cmd
}

func newEmissionsEquivalencyCmd(rt *runtime) *cobra.Command {
	var co2Kg float64

	cmd := &cobra.Command{
		Use:   "equivalency",
		Short: "Express kg CO2e as tree and car-km equivalents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := emissions.Equivalencies(co2Kg)
			if err != nil {
				return err
			}

			rows := []row{
				{"Input", mathx.FormatAmount(result.InputKg, 2) + " kg CO2e"},
				{"Trees planted", fmt.Sprintf("%v", result.TreesPlanted)},
				{"Car km avoided", mathx.FormatAmount(result.CarKmAvoided, 2)},
			}
			if result.DisplayText != "" {
				rows = append(rows, row{"Summary", result.DisplayText})
			}
			return emit(cmd, rt, "Emission Equivalencies", result, rows)
		},
	}

	cmd.Flags().Float64Var(&co2Kg, "co2-kg", 0, "emissions to convert (kg CO2e)")
	_ = cmd.MarkFlagRequired("co2-kg")

	return cmd
}
