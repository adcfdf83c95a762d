package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmehta6/wastelink/internal/economics"
	"github.com/nmehta6/wastelink/internal/logging"
	"github.com/nmehta6/wastelink/internal/mathx"
)

func newEconCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "econ",
		Short: "Financial analysis of interventions",
	}
	cmd.AddCommand(newEconAbatementCmd(rt), newEconIRRCmd(rt), newEconEcoCmd(rt))
	return cmd
}

func newEconAbatementCmd(rt *runtime) *cobra.Command {
	var costBaseline, costIntervention, emissionsBaseline, emissionsIntervention float64

	cmd := &cobra.Command{
		Use:   "abatement",
		Short: "Carbon abatement cost of an intervention",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := economics.AbatementCost(costBaseline, costIntervention,
				emissionsBaseline, emissionsIntervention)
			if err != nil {
				return err
			}
			return emit(cmd, rt, "Carbon Abatement Cost", result, []row{
				{"CAC", "₹" + mathx.FormatAmount(result.CostPerKgCO2e, 2) + " / kg CO2e"},
				{"Δ cost", "₹" + mathx.FormatAmount(result.DeltaCostINR, 2)},
				{"Δ emissions", mathx.FormatAmount(result.DeltaEmissionsKg, 2) + " kg"},
				{"Formula", result.Formula},
			})
		},
	}

	cmd.Flags().Float64Var(&costBaseline, "cost-baseline", 0, "baseline annual cost (INR)")
	cmd.Flags().Float64Var(&costIntervention, "cost-intervention", 0, "intervention annual cost (INR)")
	cmd.Flags().Float64Var(&emissionsBaseline, "emissions-baseline", 0, "baseline emissions (kg CO2e)")
	cmd.Flags().Float64Var(&emissionsIntervention, "emissions-intervention", 0, "intervention emissions (kg CO2e)")
	_ = cmd.MarkFlagRequired("emissions-baseline")
	_ = cmd.MarkFlagRequired("emissions-intervention")

	return cmd
}

func newEconIRRCmd(rt *runtime) *cobra.Command {
	var flowsFlag string

	cmd := &cobra.Command{
		Use:   "irr",
		Short: "Internal rate of return for a cash-flow series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flows, err := parseFloatList(flowsFlag)
			if err != nil {
				return err
			}

			result, err := economics.InternalRateOfReturn(flows)
			if err != nil {
				return err
			}

			if !result.Converged {
				logging.FromContext(cmd.Context()).Warn().
					Int("iterations", result.Iterations).
					Float64("best_rate", result.Rate).
					Msg("irr did not converge")
			}

			return emit(cmd, rt, "Internal Rate of Return", result, []row{
				{"IRR", fmt.Sprintf("%s%%", mathx.Num(result.Percent))},
				{"Converged", fmt.Sprintf("%t", result.Converged)},
				{"Iterations", fmt.Sprintf("%d", result.Iterations)},
			})
		},
	}

	cmd.Flags().StringVar(&flowsFlag, "flows", "", "comma-separated cash flows, period 0 first")
	_ = cmd.MarkFlagRequired("flows")

	return cmd
}

func newEconEcoCmd(rt *runtime) *cobra.Command {
	var valueINR, impactKg float64

	cmd := &cobra.Command{
		Use:   "eco",
		Short: "Eco-efficiency ratio with qualitative band",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := economics.EcoEfficiency(valueINR, impactKg)
			if err != nil {
				return err
			}
			return emit(cmd, rt, "Eco-Efficiency", result, []row{
				{"Ratio", mathx.FormatAmount(result.Ratio, 2) + " INR / kg CO2e"},
				{"Band", result.Band},
				{"Formula", result.Formula},
			})
		},
	}

	cmd.Flags().Float64Var(&valueINR, "value-inr", 0, "product or service value (INR)")
	cmd.Flags().Float64Var(&impactKg, "impact-kg", 0, "environmental impact (kg CO2e)")
	_ = cmd.MarkFlagRequired("value-inr")
	_ = cmd.MarkFlagRequired("impact-kg")

	return cmd
}
