package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/nmehta6/wastelink/internal/logging"
)

// Ranker concurrency limits.
const (
	// DefaultRankConcurrency is the default number of candidates scored in
	// parallel.
	DefaultRankConcurrency = 8

	// MaxRankConcurrency caps the concurrency a caller may request.
	MaxRankConcurrency = 64
)

// Requirement is a buyer's demand listing: what material they need, how
// much, at what price, and how far they are willing to haul.
type Requirement struct {
	Material    MaterialSpec `json:"material"`
	QuantityMin float64      `json:"quantityMin"`
	QuantityMax float64      `json:"quantityMax"`
	BudgetMin   float64      `json:"budgetMin"`
	BudgetMax   float64      `json:"budgetMax"`
	MaxHaulKm   float64      `json:"maxHaulKm"`
}

// Candidate is a supply listing under consideration for a requirement.
type Candidate struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	SubType     string  `json:"subType,omitempty"`
	QuantityKg  float64 `json:"quantityKg"`
	PriceINR    float64 `json:"priceINR"`
	DistanceKm  float64 `json:"distanceKm"`
	Reliability float64 `json:"reliability"`
}

// RankedMatch is one candidate's full scoring outcome.
type RankedMatch struct {
	Candidate Candidate   `json:"candidate"`
	Factors   Factors     `json:"factors"`
	Result    ScoreResult `json:"result"`
}

// Ranker scores candidate supply listings against a requirement and
// returns them ordered best-first. Scoring individual candidates is
// independent, so candidates are evaluated concurrently.
type Ranker struct {
	weights     Weights
	concurrency int
}

// NewRanker creates a ranker with the given weights. An invalid weight set
// is rejected up front so every Rank call scores with known-good weights.
func NewRanker(w Weights) (*Ranker, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Ranker{weights: w, concurrency: DefaultRankConcurrency}, nil
}

// WithConcurrency sets how many candidates are scored in parallel.
// Values outside [1, MaxRankConcurrency] are clamped.
func (r *Ranker) WithConcurrency(n int) *Ranker {
	if n < 1 {
		n = 1
	}
	if n > MaxRankConcurrency {
		n = MaxRankConcurrency
	}
	r.concurrency = n
	return r
}

// Rank scores every candidate against the requirement and returns the
// matches sorted by score descending, ties broken by candidate ID for a
// stable ordering. A candidate that cannot be scored (bad price, bad
// distance) fails the whole ranking; the marketplace treats unscorable
// listings as data errors, not as zero-score matches.
func (r *Ranker) Rank(ctx context.Context, req Requirement, candidates []Candidate) ([]RankedMatch, error) {
	logger := logging.FromContext(ctx).With().Str("component", "matching").Logger()
	logger.Debug().
		Int("candidates", len(candidates)).
		Str("category", req.Material.NeededCategory).
		Msg("ranking candidates")

	if len(candidates) == 0 {
		return nil, nil
	}

	matches := make([]RankedMatch, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			match, err := r.score(req, c)
			if err != nil {
				return err
			}
			matches[i] = match
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Result.Score != matches[j].Result.Score {
			return matches[i].Result.Score > matches[j].Result.Score
		}
		return matches[i].Candidate.ID < matches[j].Candidate.ID
	})

	return matches, nil
}

func (r *Ranker) score(req Requirement, c Candidate) (RankedMatch, error) {
	material := MaterialCompatibility(c.Category, c.SubType, req.Material)

	quantity, err := QuantityFit(c.QuantityKg, req.QuantityMin, req.QuantityMax)
	if err != nil {
		return RankedMatch{}, err
	}

	price, err := PriceScore(c.PriceINR, req.BudgetMin, req.BudgetMax)
	if err != nil {
		return RankedMatch{}, err
	}

	distance, err := DistanceScore(c.DistanceKm, req.MaxHaulKm)
	if err != nil {
		return RankedMatch{}, err
	}

	f := Factors{
		MaterialCompatibility: material,
		QuantityFit:           quantity,
		PriceCompatibility:    price,
		DistanceScore:         distance,
		ReliabilityScore:      c.Reliability,
	}

	result, err := WeightedMatchScore(f, r.weights)
	if err != nil {
		return RankedMatch{}, err
	}

	return RankedMatch{Candidate: c, Factors: f, Result: result}, nil
}
