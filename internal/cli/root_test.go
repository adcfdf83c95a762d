package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd("test")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

// decodeEnvelope parses a JSON envelope and returns its result payload.
func decodeEnvelope(t *testing.T, out string) (Envelope, map[string]any) {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	result, ok := env.Result.(map[string]any)
	require.True(t, ok, "envelope result is not an object")
	return env, result
}

func TestEmissionsAssessCommand(t *testing.T) {
	out, err := execute(t, "emissions", "assess", "--electricity-kwh", "1000", "--output", "json")
	require.NoError(t, err)

	env, result := decodeEnvelope(t, out)
	assert.NotEmpty(t, env.RunID)
	assert.Equal(t, "assess", env.Command)
	assert.InDelta(t, 820.0, result["scope2"], 1e-9)
	assert.InDelta(t, 820.0, result["totalCo2e"], 1e-9)

	t.Run("negative quantity surfaces validation error", func(t *testing.T) {
		_, err := execute(t, "emissions", "assess", "--water-liters", "-5", "--output", "json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "water_liters=-5")
	})
}

func TestMatchScoreCommand(t *testing.T) {
	out, err := execute(t, "match", "score",
		"--material", "80", "--quantity", "100", "--price", "90",
		"--distance", "75", "--reliability", "95", "--output", "json")
	require.NoError(t, err)

	_, result := decodeEnvelope(t, out)
	assert.InDelta(t, 86.5, result["score"], 1e-9)
	assert.Equal(t, "Score = 80×0.3 + 100×0.2 + 90×0.2 + 75×0.2 + 95×0.1 = 86.5", result["formula"])
}

func TestMatchRankCommand(t *testing.T) {
	input := `{
  "requirement": {
    "material": {"neededCategory": "plastic"},
    "quantityMin": 500, "quantityMax": 1000,
    "budgetMin": 100, "budgetMax": 500,
    "maxHaulKm": 100
  },
  "candidates": [
    {"id": "near", "category": "plastic", "quantityKg": 800, "priceINR": 200, "distanceKm": 20, "reliability": 90},
    {"id": "far", "category": "plastic", "quantityKg": 800, "priceINR": 200, "distanceKm": 95, "reliability": 90}
  ]
}`
	path := filepath.Join(t.TempDir(), "rank.json")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))

	out, err := execute(t, "match", "rank", "--input", path, "--output", "json")
	require.NoError(t, err)

	var env struct {
		Result []struct {
			Candidate struct {
				ID string `json:"id"`
			} `json:"candidate"`
			Result struct {
				Score float64 `json:"score"`
			} `json:"result"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	require.Len(t, env.Result, 2)
	assert.Equal(t, "near", env.Result[0].Candidate.ID)
	assert.Greater(t, env.Result[0].Result.Score, env.Result[1].Result.Score)
}

func TestTransportEstimateCommand(t *testing.T) {
	out, err := execute(t, "transport", "estimate",
		"--from", "19.0760,72.8777", "--to", "18.5204,73.8567",
		"--vehicle", "truck", "--output", "json")
	require.NoError(t, err)

	_, result := decodeEnvelope(t, out)
	distance, ok := result["distanceKm"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 156.0, distance, 6.0)

	t.Run("invalid coordinate rejected", func(t *testing.T) {
		_, err := execute(t, "transport", "estimate", "--from", "99,0", "--to", "18.52,73.85")
		assert.Error(t, err)
	})

	t.Run("unknown vehicle rejected with valid types", func(t *testing.T) {
		_, err := execute(t, "transport", "estimate",
			"--from", "19.0760,72.8777", "--to", "18.5204,73.8567", "--vehicle", "rickshaw")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "truck")
	})
}

func TestForecastSmoothCommand(t *testing.T) {
	out, err := execute(t, "forecast", "smooth",
		"--series", "10,20,30", "--alpha", "0.5", "--horizon", "1", "--output", "json")
	require.NoError(t, err)

	_, result := decodeEnvelope(t, out)
	assert.Equal(t, false, result["insufficientData"])

	t.Run("short series reports placeholder", func(t *testing.T) {
		out, err := execute(t, "forecast", "smooth", "--series", "10,20", "--output", "json")
		require.NoError(t, err)
		_, result := decodeEnvelope(t, out)
		assert.Equal(t, true, result["insufficientData"])
	})
}

func TestEconIRRCommand(t *testing.T) {
	out, err := execute(t, "econ", "irr", "--flows", "-1000,1100", "--output", "json")
	require.NoError(t, err)

	_, result := decodeEnvelope(t, out)
	assert.Equal(t, true, result["converged"])
	assert.InDelta(t, 10.0, result["percent"], 0.01)
}

func TestCircularRateCommandNeverFails(t *testing.T) {
	out, err := execute(t, "circular", "rate", "--generated-kg", "0", "--exchanged-kg", "50", "--output", "json")
	require.NoError(t, err)

	_, result := decodeEnvelope(t, out)
	assert.InDelta(t, 0.0, result["ratePercent"], 1e-9)
}

func TestTableOutputRenders(t *testing.T) {
	out, err := execute(t, "econ", "eco", "--value-inr", "120000", "--impact-kg", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Eco-Efficiency")
	assert.Contains(t, out, "excellent")
}

func TestUnknownOutputFormatRejected(t *testing.T) {
	_, err := execute(t, "econ", "eco", "--value-inr", "1", "--impact-kg", "1", "--output", "xml")
	assert.Error(t, err)
}
