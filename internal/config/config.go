// =============================================================================
// Excel Shipment Converter - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration that controls which
// columns survive the conversion and which constants are injected.
//
// CONFIGURATION SURFACE:
//   - preserved_columns     : Output labels copied verbatim from the input
//   - material_code_column  : Output label of the lookup key column
//   - matched_columns       : Output labels populated via reference lookup
//   - fixed_columns         : Output label -> constant literal value
//   - auto_open             : Open the output file when the run completes
//
// The source<->target column-name map is NOT configurable; it lives in the
// mapping package as a built-in constant.
//
// An absent configuration file is advisory: the caller is expected to warn
// and fall back to Default(). A file that exists but cannot be parsed is a
// fatal input error — silent fallback would mask operator mistakes.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the conversion configuration.
// All labels are target-language (declaration schema) labels.
type Config struct {
	// PreservedColumns are output columns copied verbatim from the source
	// table under their translated names.
	PreservedColumns []string `yaml:"preserved_columns"`

	// MaterialCodeColumn is the target label of the material/item code used
	// as the join key between the shipment table and the reference table.
	MaterialCodeColumn string `yaml:"material_code_column"`

	// MatchedColumns are output columns populated by looking up each row's
	// material code in the reference table.
	MatchedColumns []string `yaml:"matched_columns"`

	// FixedColumns maps an output label to a constant value applied to every
	// row, overwriting anything computed earlier for that label.
	FixedColumns map[string]string `yaml:"fixed_columns"`

	// AutoOpen opens the output workbook with the default application after
	// a successful run. Strictly best-effort.
	AutoOpen *bool `yaml:"auto_open"`
}

// OpenAfterWrite reports whether the output file should be opened after a
// successful run.
func (c *Config) OpenAfterWrite() bool {
	return c.AutoOpen == nil || *c.AutoOpen
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration used when no configuration file
// is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills any unset field with its built-in default.
func applyDefaults(cfg *Config) {
	if cfg.PreservedColumns == nil {
		cfg.PreservedColumns = []string{
			"项号", "品名", "型号", "数量", "单位", "单价", "总价", "净重",
		}
	}
	if cfg.MaterialCodeColumn == "" {
		cfg.MaterialCodeColumn = "商品编号"
	}
	if cfg.MatchedColumns == nil {
		cfg.MatchedColumns = []string{"申报要素", "境内货源地"}
	}
	if cfg.FixedColumns == nil {
		cfg.FixedColumns = map[string]string{
			"币制":        "USD",
			"原产国（地区）":   "中国",
			"最终目的国（地区）": "美国",
			"征免":        "照章征税",
		}
	}
	if cfg.AutoOpen == nil {
		autoOpen := true
		cfg.AutoOpen = &autoOpen
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads a configuration file and fills unset fields with defaults.
//
// PARAMETERS:
//   - path: The path to the YAML configuration file.
//
// RETURNS:
//   - The loaded configuration.
//   - An error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadOrDefault loads the configuration file at path, falling back to the
// built-in defaults when the file does not exist.
//
// RETURNS:
//   - The configuration.
//   - usedDefaults, true when the file was absent and defaults substituted.
//   - An error only for files that exist but cannot be read or parsed.
func LoadOrDefault(path string) (cfg *Config, usedDefaults bool, err error) {
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return Default(), true, nil
	}

	cfg, err = Load(path)
	if err != nil {
		return nil, false, err
	}
	return cfg, false, nil
}
