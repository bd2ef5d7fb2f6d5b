// Package config holds the tunable defaults for utf16kit: key filtering,
// substring inclusion policy, and suffix truncation.
//
// A Config can be built from defaults, loaded from a YAML, TOML or JSON
// file, overridden from UTF16KIT_* environment variables, and watched for
// changes.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/randalmurphal/utf16kit/keyfilter"
	"github.com/randalmurphal/utf16kit/truncate"
	"github.com/randalmurphal/utf16kit/utf16str"
)

// DefaultMaxKeyLength is the default key limit in UTF-16 code units.
const DefaultMaxKeyLength = 40

// Config is the library configuration.
type Config struct {
	KeyFilter KeyFilterConfig `json:"key_filter" yaml:"key_filter" toml:"key_filter"`
	Substring SubstringConfig `json:"substring" yaml:"substring" toml:"substring"`
	Truncate  TruncateConfig  `json:"truncate" yaml:"truncate" toml:"truncate"`
}

// KeyFilterConfig configures map key filtering.
type KeyFilterConfig struct {
	// MaxKeyLength is the maximum key length in UTF-16 code units.
	MaxKeyLength int `json:"max_key_length" yaml:"max_key_length" toml:"max_key_length" jsonschema:"minimum=0,description=Maximum key length in UTF-16 code units"`

	// Truncate rewrites overlong keys instead of dropping them.
	Truncate bool `json:"truncate" yaml:"truncate" toml:"truncate" jsonschema:"description=Truncate overlong keys instead of dropping their entries"`
}

// SubstringConfig is the default surrogate pair policy for substrings.
type SubstringConfig struct {
	IncludeStart bool `json:"include_start" yaml:"include_start" toml:"include_start" jsonschema:"description=Keep a surrogate pair split by the start index"`
	IncludeEnd   bool `json:"include_end" yaml:"include_end" toml:"include_end" jsonschema:"description=Keep a surrogate pair split by the end index"`
}

// TruncateConfig configures suffix truncation.
type TruncateConfig struct {
	// Strategy is one of "end", "middle", "start".
	Strategy string `json:"strategy" yaml:"strategy" toml:"strategy" jsonschema:"enum=end,enum=middle,enum=start"`

	// Suffix marks removed content and counts toward MaxUnits.
	Suffix string `json:"suffix" yaml:"suffix" toml:"suffix"`

	// MaxUnits is the text limit in UTF-16 code units. 0 means no limit.
	MaxUnits int `json:"max_units" yaml:"max_units" toml:"max_units" jsonschema:"minimum=0"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		KeyFilter: KeyFilterConfig{
			MaxKeyLength: DefaultMaxKeyLength,
		},
		Substring: SubstringConfig{
			IncludeStart: true,
			IncludeEnd:   true,
		},
		Truncate: TruncateConfig{
			Strategy: truncate.FromEnd.String(),
			Suffix:   truncate.DefaultEndSuffix,
		},
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use the UTF16KIT_ prefix and take precedence over
// existing values. Unparseable values are ignored.
//
// Supported variables:
//   - UTF16KIT_MAX_KEY_LENGTH: Maximum key length
//   - UTF16KIT_TRUNCATE_KEYS: Truncate overlong keys (bool)
//   - UTF16KIT_INCLUDE_START: Keep pairs split at the start (bool)
//   - UTF16KIT_INCLUDE_END: Keep pairs split at the end (bool)
//   - UTF16KIT_TRUNCATE_STRATEGY: "end", "middle" or "start"
//   - UTF16KIT_TRUNCATE_SUFFIX: Truncation suffix
//   - UTF16KIT_TRUNCATE_MAX_UNITS: Text limit
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("UTF16KIT_MAX_KEY_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.KeyFilter.MaxKeyLength = n
		}
	}
	if v := os.Getenv("UTF16KIT_TRUNCATE_KEYS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.KeyFilter.Truncate = b
		}
	}
	if v := os.Getenv("UTF16KIT_INCLUDE_START"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Substring.IncludeStart = b
		}
	}
	if v := os.Getenv("UTF16KIT_INCLUDE_END"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Substring.IncludeEnd = b
		}
	}
	if v := os.Getenv("UTF16KIT_TRUNCATE_STRATEGY"); v != "" {
		c.Truncate.Strategy = v
	}
	if v, ok := os.LookupEnv("UTF16KIT_TRUNCATE_SUFFIX"); ok {
		c.Truncate.Suffix = v
	}
	if v := os.Getenv("UTF16KIT_TRUNCATE_MAX_UNITS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Truncate.MaxUnits = n
		}
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.KeyFilter.MaxKeyLength < 0 {
		return fmt.Errorf("key_filter.max_key_length must be >= 0, got %d", c.KeyFilter.MaxKeyLength)
	}
	if c.Truncate.MaxUnits < 0 {
		return fmt.Errorf("truncate.max_units must be >= 0, got %d", c.Truncate.MaxUnits)
	}
	if _, err := truncate.ParseStrategy(c.Truncate.Strategy); err != nil {
		return fmt.Errorf("truncate.strategy: %w", err)
	}
	return nil
}

// Policy returns the substring policy.
func (c *Config) Policy() utf16str.Policy {
	return utf16str.Policy{
		IncludeStart: c.Substring.IncludeStart,
		IncludeEnd:   c.Substring.IncludeEnd,
	}
}

// Options returns the key filter options.
func (c *Config) Options() keyfilter.Options {
	return keyfilter.Options{
		MaxKeyLength: c.KeyFilter.MaxKeyLength,
		Truncate:     c.KeyFilter.Truncate,
	}
}

// Truncator builds a truncator for the configured strategy and suffix.
func (c *Config) Truncator() (*truncate.Truncator, error) {
	strategy, err := truncate.ParseStrategy(c.Truncate.Strategy)
	if err != nil {
		return nil, err
	}
	return truncate.New(strategy).WithSuffix(c.Truncate.Suffix), nil
}

// TruncateText applies the configured truncator and limit to text.
// With no limit the text is returned unchanged.
func (c *Config) TruncateText(text string) (string, bool, error) {
	if c.Truncate.MaxUnits == 0 {
		return text, false, nil
	}
	tr, err := c.Truncator()
	if err != nil {
		return "", false, err
	}
	out, truncated := tr.Truncate(text, c.Truncate.MaxUnits)
	return out, truncated, nil
}
