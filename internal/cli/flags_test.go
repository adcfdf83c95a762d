package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLatLon(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		lat, lon, err := parseLatLon("19.0760,72.8777")
		require.NoError(t, err)
		assert.InDelta(t, 19.0760, lat, 1e-9)
		assert.InDelta(t, 72.8777, lon, 1e-9)
	})

	t.Run("whitespace tolerated", func(t *testing.T) {
		lat, lon, err := parseLatLon(" 18.52 , 73.85 ")
		require.NoError(t, err)
		assert.InDelta(t, 18.52, lat, 1e-9)
		assert.InDelta(t, 73.85, lon, 1e-9)
	})

	t.Run("malformed inputs", func(t *testing.T) {
		for _, s := range []string{"", "19.0", "19.0,72.8,3", "abc,72.8", "19.0,xyz"} {
			_, _, err := parseLatLon(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestParseFloatList(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		got, err := parseFloatList("-1000, 1100,0.5")
		require.NoError(t, err)
		assert.Equal(t, []float64{-1000, 1100, 0.5}, got)
	})

	t.Run("malformed inputs", func(t *testing.T) {
		for _, s := range []string{"", "  ", "1,abc", "1,,2"} {
			_, err := parseFloatList(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestParsePointList(t *testing.T) {
	t.Run("valid points", func(t *testing.T) {
		got, err := parsePointList("1:3, 2:5,3:7")
		require.NoError(t, err)
		assert.Equal(t, [][2]float64{{1, 3}, {2, 5}, {3, 7}}, got)
	})

	t.Run("malformed inputs", func(t *testing.T) {
		for _, s := range []string{"", "1", "1:2:3", "a:2", "1:b"} {
			_, err := parsePointList(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}
