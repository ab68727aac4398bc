// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EnvIndustry names the environment variable that supplies a default industry
const EnvIndustry = "RESUME_DRAFTER_INDUSTRY"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Industry  string `json:"industry,omitempty"`                                                       // Target industry for keyword adaptation
	Intensity string `json:"intensity,omitempty" validate:"omitempty,oneof=light moderate aggressive"` // Adaptation intensity
	Strategy  string `json:"strategy,omitempty"`                                                       // Strategy override
	Template  string `json:"template,omitempty"`                                                       // Default template file

	Seed            uint64 `json:"seed,omitempty"`                                // Seed for the adaptation random source
	MaxReplacements int    `json:"max_replacements,omitempty" validate:"gte=0"`   // Cap on replacements per text (0 = unlimited)
	Concurrency     int    `json:"concurrency,omitempty" validate:"gte=0,lte=64"` // Batch worker limit

	Verbose        bool `json:"verbose,omitempty"`         // Print detailed debug information
	ValidateOutput bool `json:"validate_output,omitempty"` // Validate drafts against the draft schema
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns the defaults supplied by environment variables
func FromEnv() Config {
	return Config{Industry: strings.TrimSpace(os.Getenv(EnvIndustry))}
}

// Validate checks that the configuration has valid values.
// It does not check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %v)", jsonName(fe.Field()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Industry == "" {
		result.Industry = defaults.Industry
	}
	if result.Intensity == "" {
		result.Intensity = defaults.Intensity
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}

	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.MaxReplacements == 0 {
		result.MaxReplacements = defaults.MaxReplacements
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags always win

	return result
}

// jsonName maps a struct field name to its JSON key
func jsonName(field string) string {
	switch field {
	case "MaxReplacements":
		return "max_replacements"
	case "ValidateOutput":
		return "validate_output"
	default:
		return strings.ToLower(field)
	}
}
