package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape:
//
//	profiles:
//	  - name: crucible
//	    min_run: 1
//	    max_run: 3
type document struct {
	Profiles []Profile `yaml:"profiles" json:"profiles"`
}

// FromFile loads profiles from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// FromYAML parses and validates YAML profile data.
func FromYAML(data []byte) ([]Profile, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := ValidateAll(doc.Profiles); err != nil {
		return nil, err
	}

	return doc.Profiles, nil
}

// FromJSON parses and validates JSON profile data.
func FromJSON(data []byte) ([]Profile, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := ValidateAll(doc.Profiles); err != nil {
		return nil, err
	}

	return doc.Profiles, nil
}
