package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnitFile is the parsed YAML config of one generation unit.
type UnitFile struct {
	// Version of the config format.
	Version string `yaml:"version,omitempty"`
	// Packages are the Go package patterns to analyze.
	Packages StringOrArray `yaml:"packages"`
	// ErrorType parameterizes every staged field's outcome container,
	// as "pkgname.TypeName". One error type per generation unit.
	ErrorType string `yaml:"error_type"`
	// FinalErrorType optionally names the aggregate error type users
	// fold the returned error list into. Informational: it only
	// appears in the generated conversion's doc comment.
	FinalErrorType string `yaml:"final_error_type,omitempty"`
	// Output describes the rendered package.
	Output OutputConfig `yaml:"output"`
	// Records lists the source records to stage.
	Records []RecordConfig `yaml:"records"`
}

// OutputConfig describes where and as what the unit is rendered.
type OutputConfig struct {
	// Package is the generated package's name.
	Package string `yaml:"package,omitempty"`
	// Dir is the directory generated files are written to.
	Dir string `yaml:"dir,omitempty"`
}

// RecordConfig selects one source record and its staging options.
type RecordConfig struct {
	// Source is the record's qualified name, e.g. "store.Account".
	Source string `yaml:"source"`
	// Name overrides the derived staging type name.
	Name string `yaml:"name,omitempty"`
	// AdditionalErrors adds the extra field-less error slot.
	AdditionalErrors bool `yaml:"additional_errors,omitempty"`
}

// StringOrArray accepts either a single YAML string or a sequence of
// strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
