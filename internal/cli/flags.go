package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseLatLon parses a "lat,lon" flag value.
func parseLatLon(s string) (lat, lon float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected lat,lon but got %q", s)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	return lat, lon, nil
}

// parseFloatList parses a comma-separated list of numbers, as used by the
// forecast and IRR commands.
func parseFloatList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty number list")
	}
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// parsePointList parses "x:y,x:y" regression points.
func parsePointList(s string) ([][2]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty point list")
	}
	parts := strings.Split(s, ",")
	points := make([][2]float64, 0, len(parts))
	for _, p := range parts {
		xy := strings.Split(strings.TrimSpace(p), ":")
		if len(xy) != 2 {
			return nil, fmt.Errorf("expected x:y but got %q", p)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x %q: %w", xy[0], err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y %q: %w", xy[1], err)
		}
		points = append(points, [2]float64{x, y})
	}
	return points, nil
}
