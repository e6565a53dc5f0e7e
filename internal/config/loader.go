package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"staging-generator/internal/common"
)

// LoadFile loads and parses a generation-unit YAML file.
func LoadFile(path string) (*UnitFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a UnitFile and validates it.
func Parse(data []byte) (*UnitFile, error) {
	var uf UnitFile

	err := yaml.Unmarshal(data, &uf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&uf)

	if err := uf.Validate(); err != nil {
		return nil, err
	}

	return &uf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(uf *UnitFile) {
	if uf.Version == "" {
		uf.Version = "1"
	}

	if uf.Output.Package == "" {
		uf.Output.Package = "staging"
	}

	if uf.Output.Dir == "" {
		uf.Output.Dir = "./generated"
	}
}

// Validate checks the unit for contract violations the pipeline cannot
// recover from.
func (uf *UnitFile) Validate() error {
	if common.IsEmpty(uf.Packages) {
		return fmt.Errorf("config: no packages to analyze")
	}

	if uf.ErrorType == "" {
		return fmt.Errorf("config: error_type is required")
	}

	if common.IsEmpty(uf.Records) {
		return fmt.Errorf("config: no records to stage")
	}

	seen := make(map[string]bool, len(uf.Records))

	for i, rec := range uf.Records {
		if rec.Source == "" {
			return fmt.Errorf("config: records[%d] has no source", i)
		}

		if seen[rec.Source] {
			return fmt.Errorf("config: record %s listed twice", rec.Source)
		}

		seen[rec.Source] = true
	}

	return nil
}

// Marshal serializes a UnitFile to YAML.
func Marshal(uf *UnitFile) ([]byte, error) {
	return yaml.Marshal(uf)
}
