package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/docsight/docsight/internal/validation"
)

// DefaultConfigName is the per-project configuration file looked up at the
// scan root.
const DefaultConfigName = ".docsight.yml"

// ScanConfigFile is the external scan configuration file.
type ScanConfigFile struct {
	Scan ScanConfigSection `yaml:"scan" json:"scan"`
}

// ScanConfigSection contains the scan configuration options.
type ScanConfigSection struct {
	// Exclude patterns unioned with the built-in ignore defaults
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`

	// IgnoreFile points to a pattern file relative to the scan root
	IgnoreFile string `yaml:"ignore_file,omitempty" json:"ignore_file,omitempty"`

	// Output overrides the report destination
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	// Properties are copied into the report metadata
	Properties map[string]string `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// LoadScanConfig loads and validates a scan configuration file. A missing
// explicit path is an error; use LoadProjectConfig for the optional
// per-project lookup.
func LoadScanConfig(path string) (*ScanConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := validation.ValidateYAML("docsight-config.json", data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	var cfg ScanConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		// YAML is a superset of JSON, but keep the explicit fallback for
		// JSON files with constructs the YAML parser rejects
		if jsonErr := json.Unmarshal(data, &cfg); jsonErr != nil {
			return nil, fmt.Errorf("failed to parse config as YAML (%v) or JSON (%v)", err, jsonErr)
		}
	}

	return &cfg, nil
}

// LoadProjectConfig loads .docsight.yml from the scan root when present.
// Absence is not an error; a malformed file is.
func LoadProjectConfig(root string) (*ScanConfigFile, error) {
	path := filepath.Join(root, DefaultConfigName)
	cfg, err := LoadScanConfig(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return cfg, err
}
