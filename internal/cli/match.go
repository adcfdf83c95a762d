package cli

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nmehta6/wastelink/internal/logging"
	"github.com/nmehta6/wastelink/internal/matching"
	"github.com/nmehta6/wastelink/internal/mathx"
	"github.com/nmehta6/wastelink/internal/tui"
)

func newMatchCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Multi-factor match scoring and ranking",
	}
	cmd.AddCommand(newMatchScoreCmd(rt), newMatchRankCmd(rt))
	return cmd
}

func newMatchScoreCmd(rt *runtime) *cobra.Command {
	var f matching.Factors
	var interactive bool

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Weighted match score from five factor values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			weights := rt.cfg.Matching.Weights

			if interactive {
				if !isTerminal(os.Stdout) {
					return fmt.Errorf("interactive mode requires a terminal")
				}
				model := tui.NewMatchModel(f, weights)
				program := tea.NewProgram(model, tea.WithAltScreen())
				if _, err := program.Run(); err != nil {
					return fmt.Errorf("interactive session: %w", err)
				}
				return nil
			}

			result, err := matching.WeightedMatchScore(f, weights)
			if err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Info().
				Float64("score", result.Score).
				Msg("match scored")

			return emit(cmd, rt, "Match Score", result, []row{
				{"Score", mathx.Num(result.Score)},
				{"Formula", result.Formula},
			})
		},
	}

	cmd.Flags().Float64Var(&f.MaterialCompatibility, "material", 0, "material compatibility [0,100]")
	cmd.Flags().Float64Var(&f.QuantityFit, "quantity", 0, "quantity fit [0,100]")
	cmd.Flags().Float64Var(&f.PriceCompatibility, "price", 0, "price compatibility [0,100]")
	cmd.Flags().Float64Var(&f.DistanceScore, "distance", 0, "distance score [0,100]")
	cmd.Flags().Float64Var(&f.ReliabilityScore, "reliability", 0, "reliability score [0,100]")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "launch interactive what-if mode")

	return cmd
}

// rankRequest is the JSON document accepted by "match rank".
type rankRequest struct {
	Requirement matching.Requirement `json:"requirement"`
	Candidates  []matching.Candidate `json:"candidates"`
}

func newMatchRankCmd(rt *runtime) *cobra.Command {
	var inputPath string
	var top int
	var concurrency int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank candidate listings against a requirement",
		Long: `Rank candidate supply listings against a demand requirement.

The input file is a JSON document:
  {
    "requirement": { "material": {"neededCategory": "plastic"}, ... },
    "candidates":  [ {"id": "...", "category": "plastic", ...}, ... ]
  }`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inputPath, err)
			}
			var req rankRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("parsing %s: %w", inputPath, err)
			}

			ranker, err := matching.NewRanker(rt.cfg.Matching.Weights)
			if err != nil {
				return err
			}
			if concurrency > 0 {
				ranker = ranker.WithConcurrency(concurrency)
			}

			matches, err := ranker.Rank(cmd.Context(), req.Requirement, req.Candidates)
			if err != nil {
				return err
			}
			if top > 0 && top < len(matches) {
				matches = matches[:top]
			}

			rows := make([]row, 0, len(matches))
			for i, m := range matches {
				rows = append(rows, row{
					fmt.Sprintf("#%d %s", i+1, m.Candidate.ID),
					mathx.Num(m.Result.Score),
				})
			}
			return emit(cmd, rt, "Ranked Matches", matches, rows)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to JSON requirement and candidates")
	cmd.Flags().IntVar(&top, "top", 0, "limit output to the best N matches, 0 for all")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "candidates scored in parallel, 0 for default")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
