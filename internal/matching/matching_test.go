package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightsValidate(t *testing.T) {
	t.Run("defaults sum to 1.0", func(t *testing.T) {
		w := DefaultWeights()
		require.NoError(t, w.Validate())
		assert.InDelta(t, 1.0, w.Sum(), 1e-9)
	})

	t.Run("within tolerance accepted", func(t *testing.T) {
		w := Weights{Material: 0.305, Quantity: 0.2, Price: 0.2, Distance: 0.2, Reliability: 0.1}
		assert.NoError(t, w.Validate())
	})

	t.Run("sum off by more than tolerance rejected", func(t *testing.T) {
		w := Weights{Material: 0.5, Quantity: 0.2, Price: 0.2, Distance: 0.2, Reliability: 0.1}
		assert.ErrorIs(t, w.Validate(), ErrWeightsSum)
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		w := Weights{Material: 0.4, Quantity: 0.3, Price: 0.2, Distance: 0.2, Reliability: -0.1}
		assert.ErrorIs(t, w.Validate(), ErrNegativeWeight)
	})
}

func TestWeightedMatchScore(t *testing.T) {
	t.Run("documented scenario", func(t *testing.T) {
		got, err := WeightedMatchScore(Factors{
			MaterialCompatibility: 80,
			QuantityFit:           100,
			PriceCompatibility:    90,
			DistanceScore:         75,
			ReliabilityScore:      95,
		}, DefaultWeights())
		require.NoError(t, err)
		// 80×0.3 + 100×0.2 + 90×0.2 + 75×0.2 + 95×0.1 = 86.5
		assert.InDelta(t, 86.5, got.Score, 1e-9)
		assert.Equal(t, "Score = 80×0.3 + 100×0.2 + 90×0.2 + 75×0.2 + 95×0.1 = 86.5", got.Formula)
		assert.InDelta(t, 24.0, got.WeightedFactors["material"], 1e-9)
		assert.InDelta(t, 9.5, got.WeightedFactors["reliability"], 1e-9)
	})

	t.Run("perfect factors give 100", func(t *testing.T) {
		got, err := WeightedMatchScore(Factors{100, 100, 100, 100, 100}, DefaultWeights())
		require.NoError(t, err)
		assert.InDelta(t, 100.0, got.Score, 1e-9)
	})

	t.Run("zero factors give 0", func(t *testing.T) {
		got, err := WeightedMatchScore(Factors{}, DefaultWeights())
		require.NoError(t, err)
		assert.InDelta(t, 0.0, got.Score, 1e-9)
	})

	t.Run("score stays in range for valid weights", func(t *testing.T) {
		weightSets := []Weights{
			DefaultWeights(),
			{Material: 1.0},
			{Material: 0.2, Quantity: 0.2, Price: 0.2, Distance: 0.2, Reliability: 0.2},
			{Quantity: 0.5, Reliability: 0.5},
		}
		factorSets := []Factors{
			{},
			{100, 100, 100, 100, 100},
			{12.5, 80, 33.3, 97, 61},
			{0, 100, 0, 100, 50},
		}
		for _, w := range weightSets {
			require.NoError(t, w.Validate())
			for _, f := range factorSets {
				got, err := WeightedMatchScore(f, w)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got.Score, 0.0)
				assert.LessOrEqual(t, got.Score, 100.0)
			}
		}
	})

	t.Run("factor out of range names the offender", func(t *testing.T) {
		_, err := WeightedMatchScore(Factors{MaterialCompatibility: 50, PriceCompatibility: 101}, DefaultWeights())
		require.ErrorIs(t, err, ErrFactorOutOfRange)
		assert.Contains(t, err.Error(), "price")

		_, err = WeightedMatchScore(Factors{DistanceScore: -1}, DefaultWeights())
		require.ErrorIs(t, err, ErrFactorOutOfRange)
		assert.Contains(t, err.Error(), "distance")
	})

	t.Run("invalid weights rejected before factors", func(t *testing.T) {
		_, err := WeightedMatchScore(Factors{PriceCompatibility: 500}, Weights{Material: 0.9})
		assert.ErrorIs(t, err, ErrWeightsSum)
	})
}

func TestPriceScore(t *testing.T) {
	t.Run("free material is perfect regardless of budget", func(t *testing.T) {
		got, err := PriceScore(0, 100, 500)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, got, 1e-9)
	})

	t.Run("at budget max", func(t *testing.T) {
		got, err := PriceScore(500, 100, 500)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, got, 1e-9)
	})

	t.Run("cheaper than max capped at 100", func(t *testing.T) {
		got, err := PriceScore(250, 100, 500)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, got, 1e-9)
	})

	t.Run("over budget penalized by distance from midpoint", func(t *testing.T) {
		// mid = 300; 100 × (1 − |450−300|/300) = 50... but 450 ≤ max. Use 600:
		// 100 × (1 − |600−300|/300) = 0.
		got, err := PriceScore(600, 100, 500)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, got, 1e-9)

		// 100 × (1 − |510−300|/300) = 30.
		got, err = PriceScore(510, 100, 500)
		require.NoError(t, err)
		assert.InDelta(t, 30.0, got, 1e-9)
	})

	t.Run("far over budget floors at zero", func(t *testing.T) {
		got, err := PriceScore(5000, 100, 500)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, got, 1e-9)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := PriceScore(-1, 100, 500)
		assert.ErrorIs(t, err, ErrNegativePrice)

		_, err = PriceScore(100, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidBudget)

		_, err = PriceScore(100, 600, 500)
		assert.ErrorIs(t, err, ErrInvalidBudget)
	})
}

func TestDistanceScore(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		max  float64
		want float64
	}{
		{"zero distance", 0, 100, 100},
		{"inside flat zone", 50, 100, 100},
		{"just past flat zone", 60, 100, 90},
		{"at max", 100, 100, 50},
		{"past max still positive", 110, 100, 10},
		{"at 1.2x max reaches zero", 120, 100, 0},
		{"far beyond max", 200, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DistanceScore(tt.d, tt.max)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := DistanceScore(50, 0)
		assert.ErrorIs(t, err, ErrInvalidDistance)

		_, err = DistanceScore(-1, 100)
		assert.ErrorIs(t, err, ErrInvalidDistance)
	})
}

func TestQuantityFit(t *testing.T) {
	t.Run("inside range is perfect", func(t *testing.T) {
		for _, q := range []float64{500, 750, 1000} {
			got, err := QuantityFit(q, 500, 1000)
			require.NoError(t, err)
			assert.InDelta(t, 100.0, got, 1e-9)
		}
	})

	t.Run("below minimum is proportional", func(t *testing.T) {
		got, err := QuantityFit(250, 500, 1000)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, got, 1e-9)

		got, err = QuantityFit(0, 500, 1000)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, got, 1e-9)
	})

	t.Run("oversupply earns capped bonus", func(t *testing.T) {
		// mid = 750; 80 + min(20, 20 × (1125 − 750)/750) = 80 + 10 = 90.
		got, err := QuantityFit(1125, 500, 1000)
		require.NoError(t, err)
		assert.InDelta(t, 90.0, got, 1e-9)

		// Bonus is capped; huge oversupply never exceeds 100.
		got, err = QuantityFit(100000, 500, 1000)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, got, 1e-9)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := QuantityFit(-1, 500, 1000)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = QuantityFit(100, 500, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = QuantityFit(100, 1000, 500)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestMaterialCompatibility(t *testing.T) {
	spec := MaterialSpec{
		NeededCategory: "plastic",
		NeededSubTypes: []string{"HDPE", "PET"},
		ExcludedTypes:  []string{"PVC"},
	}

	tests := []struct {
		name     string
		category string
		subType  string
		spec     MaterialSpec
		want     float64
	}{
		{"category mismatch", "paper", "HDPE", spec, 0},
		{"excluded subtype", "plastic", "PVC", spec, 0},
		{"preferred subtype", "plastic", "HDPE", spec, 100},
		{"preferred subtype case-insensitive", "Plastic", "pet", spec, 100},
		{"subtype present but not preferred", "plastic", "LDPE", spec, 70},
		{"subtype absent with stated preference", "plastic", "", spec, 80},
		{"no subtype preference", "plastic", "anything", MaterialSpec{NeededCategory: "plastic"}, 90},
		{"excluded wins over no preference", "plastic", "PVC",
			MaterialSpec{NeededCategory: "plastic", ExcludedTypes: []string{"PVC"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MaterialCompatibility(tt.category, tt.subType, tt.spec), 1e-9)
		})
	}
}

func TestRanker(t *testing.T) {
	req := Requirement{
		Material:    MaterialSpec{NeededCategory: "plastic", NeededSubTypes: []string{"HDPE"}},
		QuantityMin: 500,
		QuantityMax: 1000,
		BudgetMin:   100,
		BudgetMax:   500,
		MaxHaulKm:   100,
	}

	candidates := []Candidate{
		{ID: "far-paper", Category: "paper", QuantityKg: 800, PriceINR: 200, DistanceKm: 90, Reliability: 60},
		{ID: "ideal", Category: "plastic", SubType: "HDPE", QuantityKg: 800, PriceINR: 200, DistanceKm: 20, Reliability: 95},
		{ID: "short-supply", Category: "plastic", SubType: "HDPE", QuantityKg: 250, PriceINR: 200, DistanceKm: 20, Reliability: 95},
	}

	t.Run("best candidate ranks first", func(t *testing.T) {
		ranker, err := NewRanker(DefaultWeights())
		require.NoError(t, err)

		got, err := ranker.Rank(t.Context(), req, candidates)
		require.NoError(t, err)
		require.Len(t, got, 3)

		assert.Equal(t, "ideal", got[0].Candidate.ID)
		assert.Equal(t, "short-supply", got[1].Candidate.ID)
		assert.Equal(t, "far-paper", got[2].Candidate.ID)

		// Ideal candidate: all five factors are favorable.
		assert.InDelta(t, 100.0, got[0].Factors.MaterialCompatibility, 1e-9)
		assert.InDelta(t, 100.0, got[0].Factors.QuantityFit, 1e-9)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		ranker, err := NewRanker(DefaultWeights())
		require.NoError(t, err)

		first, err := ranker.WithConcurrency(4).Rank(t.Context(), req, candidates)
		require.NoError(t, err)
		second, err := ranker.WithConcurrency(1).Rank(t.Context(), req, candidates)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("ties break by candidate id", func(t *testing.T) {
		ranker, err := NewRanker(DefaultWeights())
		require.NoError(t, err)

		twins := []Candidate{
			{ID: "b", Category: "plastic", SubType: "HDPE", QuantityKg: 800, PriceINR: 200, DistanceKm: 20, Reliability: 95},
			{ID: "a", Category: "plastic", SubType: "HDPE", QuantityKg: 800, PriceINR: 200, DistanceKm: 20, Reliability: 95},
		}
		got, err := ranker.Rank(t.Context(), req, twins)
		require.NoError(t, err)
		assert.Equal(t, "a", got[0].Candidate.ID)
		assert.Equal(t, "b", got[1].Candidate.ID)
	})

	t.Run("unscorable candidate fails the ranking", func(t *testing.T) {
		ranker, err := NewRanker(DefaultWeights())
		require.NoError(t, err)

		bad := append([]Candidate{}, candidates...)
		bad = append(bad, Candidate{ID: "negative-price", Category: "plastic", PriceINR: -5, QuantityKg: 800, DistanceKm: 20})
		_, err = ranker.Rank(t.Context(), req, bad)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("empty candidates", func(t *testing.T) {
		ranker, err := NewRanker(DefaultWeights())
		require.NoError(t, err)

		got, err := ranker.Rank(t.Context(), req, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid weights rejected at construction", func(t *testing.T) {
		_, err := NewRanker(Weights{Material: 0.5})
		assert.ErrorIs(t, err, ErrWeightsSum)
	})
}
