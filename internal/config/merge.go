package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyOutput    = "output"
	keyLogging   = "logging"
	keyTransport = "transport"
	keyMatching  = "matching"
	keyFactors   = "factors"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config
// fields. Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyOutput:    true,
	keyLogging:   true,
	keyTransport: true,
	keyMatching:  true,
	keyFactors:   true,
}

// shallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the file replace entire sections in
// the target. Keys absent are left unchanged.
func shallowMergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in shallowMergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		// Re-marshal the single section so it can be unmarshalled onto the
		// strongly-typed target field.
		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying section %q: %w", key, err)
		}
	}

	return nil
}

func unmarshalSection(target *Config, key string, data []byte) error {
	switch key {
	case keyOutput:
		return yaml.Unmarshal(data, &target.Output)
	case keyLogging:
		return yaml.Unmarshal(data, &target.Logging)
	case keyTransport:
		return yaml.Unmarshal(data, &target.Transport)
	case keyMatching:
		return yaml.Unmarshal(data, &target.Matching)
	case keyFactors:
		return yaml.Unmarshal(data, &target.Factors)
	default:
		return fmt.Errorf("unknown section %q", key)
	}
}
