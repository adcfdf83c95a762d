// Package cli wires the wastelink command tree: configuration loading,
// logging setup, and the per-module subcommands over the calculation
// engine.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nmehta6/wastelink/internal/config"
	"github.com/nmehta6/wastelink/internal/factors"
	"github.com/nmehta6/wastelink/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// runtime carries the loaded configuration and factor table for
// subcommands. Populated once in PersistentPreRunE.
type runtime struct {
	cfg   config.Config
	table *factors.Table
}

// NewRootCmd creates the root Cobra command for the wastelink CLI.
// It wires up config loading, logging, and the module subcommands
// (emissions, circular, transport, match, forecast, econ).
func NewRootCmd(ver string) *cobra.Command {
	rt := &runtime{}

	cmd := &cobra.Command{
		Use:     "wastelink",
		Short:   "Circular-economy matching and impact scoring engine",
		Long:    "wastelink: deterministic emissions, circularity, transport, match-scoring, forecasting, and financial calculations for industrial waste exchange",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if output, _ := cmd.Flags().GetString("output"); output != "" {
				cfg.Output.Format = output
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				cfg.Logging.Level = "debug"
				cfg.Logging.Format = "console"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			rt.cfg = cfg

			logger := logging.New(logging.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
				File:   cfg.Logging.File,
				Caller: cfg.Logging.Caller,
			})
			logger = logging.ComponentLogger(logger, "cli")

			table, err := loadFactorTable(cfg)
			if err != nil {
				return err
			}
			rt.table = table

			ctx := logger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			logger.Debug().Str("command", cmd.Name()).Str("dataset", table.Version()).Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.wastelink/config.yaml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, ndjson")

	cmd.AddCommand(
		newEmissionsCmd(rt),
		newCircularCmd(rt),
		newTransportCmd(rt),
		newMatchCmd(rt),
		newForecastCmd(rt),
		newEconCmd(rt),
	)

	return cmd
}

// loadFactorTable builds the factor table, applying the configured overlay
// when one is set.
func loadFactorTable(cfg config.Config) (*factors.Table, error) {
	if cfg.Factors.Overlay == "" {
		return factors.Default(), nil
	}
	return factors.Load(cfg.Factors.Overlay)
}

const rootCmdExample = `  # Assess a facility's monthly emissions
  wastelink emissions assess --electricity-kwh 12000 --diesel-liters 400 \
    --water-liters 50000 --waste-kg 2000

  # Score a supply listing against a demand requirement
  wastelink match score --material 100 --quantity 90 --price 85 --distance 70 --reliability 95

  # Estimate transport emissions and cost between two sites
  wastelink transport estimate --from 19.0760,72.8777 --to 18.5204,73.8567 --vehicle truck

  # Forecast next quarter's waste volumes
  wastelink forecast smooth --series 1200,1350,1280,1410,1390 --alpha 0.4 --horizon 3

  # Internal rate of return for a recycling line investment
  wastelink econ irr --flows -500000,180000,180000,180000,180000`
