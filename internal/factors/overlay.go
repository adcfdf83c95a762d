package factors

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// supportedVersions is the semver range of factor datasets this build can
// interpret. Major version 2 would signal an incompatible row layout.
const supportedVersions = ">= 1.0.0, < 2.0.0"

// overlayFile is the on-disk YAML shape of a factor dataset overlay.
// Absent sections keep the built-in defaults; present sections replace
// individual rows, not the whole table.
type overlayFile struct {
	Version       string                            `yaml:"version"`
	GridFactor    *float64                          `yaml:"grid_factor"`
	WaterFactor   *float64                          `yaml:"water_factor"`
	WasteLandfill *float64                          `yaml:"waste_landfill_factor"`
	Fuels         map[FuelType]float64              `yaml:"fuels"`
	Vehicles      map[VehicleType]float64           `yaml:"vehicles"`
	Recycling     map[MaterialType]RecyclingFactors `yaml:"recycling"`
}

// Load builds a Table from the defaults with the YAML overlay at path merged
// on top. The overlay must declare a version within the supported range.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading factor dataset %s: %w", path, err)
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing factor dataset %s: %w", path, err)
	}

	if err := checkVersion(overlay.Version); err != nil {
		return nil, err
	}

	t := Default()
	t.version = overlay.Version

	if overlay.GridFactor != nil {
		t.gridFactor = *overlay.GridFactor
	}
	if overlay.WaterFactor != nil {
		t.water = *overlay.WaterFactor
	}
	if overlay.WasteLandfill != nil {
		t.wasteLandfill = *overlay.WasteLandfill
	}
	for k, v := range overlay.Fuels {
		t.fuel[k] = v
	}
	for k, v := range overlay.Vehicles {
		t.vehicle[k] = v
	}
	for k, v := range overlay.Recycling {
		t.recycling[k] = v
	}

	return t, nil
}

// checkVersion validates a dataset version string against supportedVersions.
func checkVersion(version string) error {
	if version == "" {
		return fmt.Errorf("%w: dataset declares no version", ErrUnsupportedVersion)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q is not valid semver: %v", ErrUnsupportedVersion, version, err)
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedVersion, version, supportedVersions)
	}

	return nil
}
