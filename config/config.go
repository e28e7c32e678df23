// Package config loads an optional project configuration file: a YAML
// overlay of default CLI flag values that explicit flags on the
// command line still win over.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file tinyc looks for in the
// current directory when none is given with --config.
const DefaultFile = ".tinyc.yaml"

// FileConfig mirrors the subset of compile flags a project can pin
// defaults for.
type FileConfig struct {
	Output       string `yaml:"output"`
	Format       string `yaml:"format"`
	EchoSource   bool   `yaml:"echoSource"`
	TraceScanner bool   `yaml:"traceScanner"`
	TraceParse   bool   `yaml:"traceParse"`
	TraceAnalyze bool   `yaml:"traceAnalyze"`
	TraceCode    bool   `yaml:"traceCode"`
}

// Load reads and parses path. A missing file is not an error: it
// returns a zero-value FileConfig so callers can treat "no file" and
// "empty file" identically.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, err
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MergeString returns fromFlag when the flag was explicitly set on
// the command line, else fromFile, else fallback.
func MergeString(fromFlag string, flagSet bool, fromFile, fallback string) string {
	if flagSet {
		return fromFlag
	}
	if fromFile != "" {
		return fromFile
	}
	return fallback
}

// MergeBool returns fromFlag when the flag was explicitly set on the
// command line, else fromFile.
func MergeBool(fromFlag bool, flagSet bool, fromFile bool) bool {
	if flagSet {
		return fromFlag
	}
	return fromFile
}
