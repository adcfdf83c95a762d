package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmehta6/wastelink/internal/circular"
	"github.com/nmehta6/wastelink/internal/factors"
	"github.com/nmehta6/wastelink/internal/mathx"
)

func newCircularCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "circular",
		Short: "Circular-economy indicators",
	}
	cmd.AddCommand(
		newCircularMCICmd(rt),
		newCircularCreditCmd(rt),
		newCircularSymbiosisCmd(rt),
		newCircularRateCmd(rt),
	)
	return cmd
}

func newCircularMCICmd(rt *runtime) *cobra.Command {
	var in circular.MCIInput

	cmd := &cobra.Command{
		Use:   "mci",
		Short: "Material Circularity Indicator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := circular.MaterialCircularityIndicator(in)
			if err != nil {
				return err
			}
			return emit(cmd, rt, "Material Circularity Indicator", result, []row{
				{"MCI", mathx.Num(result.Value)},
				{"Interpretation", result.Interpretation},
				{"Formula", result.Formula},
			})
		},
	}

	cmd.Flags().Float64Var(&in.VirginMaterialKg, "virgin-kg", 0, "virgin material consumed (kg)")
	cmd.Flags().Float64Var(&in.TotalMaterialKg, "total-kg", 0, "total material consumed (kg)")
	cmd.Flags().Float64Var(&in.WasteGeneratedKg, "waste-kg", 0, "unrecoverable waste generated (kg)")
	cmd.Flags().Float64Var(&in.TotalMaterialInputKg, "input-kg", 0, "total material input (kg)")
	_ = cmd.MarkFlagRequired("total-kg")
	_ = cmd.MarkFlagRequired("input-kg")

	return cmd
}

func newCircularCreditCmd(rt *runtime) *cobra.Command {
	var material string
	var quantityKg float64

	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Recycling substitution credit for a material",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := circular.RecyclingCredit(rt.table, factors.MaterialType(material), quantityKg)
			if err != nil {
				return err
			}
			return emit(cmd, rt, "Recycling Credit", result, []row{
				{"Material", string(result.Material)},
				{"Quantity", mathx.FormatAmount(result.QuantityKg, 2) + " kg"},
				{"CO2 credit", mathx.FormatAmount(result.CO2CreditKg, 2) + " kg"},
				{"Water saved", mathx.FormatAmount(result.WaterSavedLiters, 2) + " L"},
				{"Energy saved", mathx.FormatAmount(result.EnergySavedKwh, 2) + " kWh"},
				{"Landfill avoided", mathx.FormatAmount(result.LandfillAvoidedM3, 2) + " m³"},
				{"Formula", result.Formula},
			})
		},
	}

	cmd.Flags().StringVar(&material, "material", "", "material type (plastic, paper, metal, ...)")
	cmd.Flags().Float64Var(&quantityKg, "quantity-kg", 0, "recycled quantity (kg)")
	_ = cmd.MarkFlagRequired("material")
	_ = cmd.MarkFlagRequired("quantity-kg")

	return cmd
}

// symbiosisResult is the CLI shape of the scalar ISE value.
type symbiosisResult struct {
	Efficiency  float64 `json:"efficiency"`
	ExchangedKg float64 `json:"exchangedKg"`
	TotalKg     float64 `json:"totalKg"`
	ActualKm    float64 `json:"actualKm"`
	OptimalKm   float64 `json:"optimalKm"`
}

func newCircularSymbiosisCmd(rt *runtime) *cobra.Command {
	var exchangedKg, totalKg, actualKm, optimalKm float64

	cmd := &cobra.Command{
		Use:   "symbiosis",
		Short: "Industrial symbiosis efficiency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ise, err := circular.SymbiosisEfficiency(exchangedKg, totalKg, actualKm, optimalKm)
			if err != nil {
				return err
			}
			result := symbiosisResult{
				Efficiency:  ise,
				ExchangedKg: exchangedKg,
				TotalKg:     totalKg,
				ActualKm:    actualKm,
				OptimalKm:   optimalKm,
			}
			return emit(cmd, rt, "Symbiosis Efficiency", result, []row{
				{"ISE", mathx.Num(ise)},
				{"Exchanged", mathx.FormatAmount(exchangedKg, 2) + " kg"},
				{"Total", mathx.FormatAmount(totalKg, 2) + " kg"},
			})
		},
	}

	cmd.Flags().Float64Var(&exchangedKg, "exchanged-kg", 0, "waste exchanged with partners (kg)")
	cmd.Flags().Float64Var(&totalKg, "total-kg", 0, "total waste generated (kg)")
	cmd.Flags().Float64Var(&actualKm, "distance-km", 0, "actual exchange distance (km)")
	cmd.Flags().Float64Var(&optimalKm, "optimal-km", 0, "optimal exchange distance, 0 for default")
	_ = cmd.MarkFlagRequired("total-kg")
	_ = cmd.MarkFlagRequired("distance-km")

	return cmd
}

// rateResult is the CLI shape of the circularity rate percentage.
type rateResult struct {
	RatePercent float64 `json:"ratePercent"`
	GeneratedKg float64 `json:"generatedKg"`
	ExchangedKg float64 `json:"exchangedKg"`
	RecycledKg  float64 `json:"recycledKg"`
}

func newCircularRateCmd(rt *runtime) *cobra.Command {
	var generatedKg, exchangedKg, recycledKg float64

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Circularity rate: share of waste diverted from landfill",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rate := circular.CircularityRate(generatedKg, exchangedKg, recycledKg)
			result := rateResult{
				RatePercent: rate,
				GeneratedKg: generatedKg,
				ExchangedKg: exchangedKg,
				RecycledKg:  recycledKg,
			}
			return emit(cmd, rt, "Circularity Rate", result, []row{
				{"Rate", fmt.Sprintf("%s%%", mathx.Num(rate))},
				{"Generated", mathx.FormatAmount(generatedKg, 2) + " kg"},
				{"Diverted", mathx.FormatAmount(exchangedKg+recycledKg, 2) + " kg"},
			})
		},
	}

	cmd.Flags().Float64Var(&generatedKg, "generated-kg", 0, "total waste generated (kg)")
	cmd.Flags().Float64Var(&exchangedKg, "exchanged-kg", 0, "waste exchanged (kg)")
	cmd.Flags().Float64Var(&recycledKg, "recycled-kg", 0, "waste recycled (kg)")

	return cmd
}
