// Package config loads the cacoepy CLI configuration from YAML.
//
// Precedence: built-in defaults, then the config file, then command-line
// flags (applied by the cli package).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/Brono25/cacoepy/arpabet"
	"github.com/Brono25/cacoepy/nw"
)

// Scoring schemes.
const (
	SchemeARPAbet = "arpabet"
	SchemeBasic   = "basic"
)

// ValidSchemes lists the accepted values of Config.Scheme.
var ValidSchemes = []string{SchemeARPAbet, SchemeBasic}

// ErrInvalidConfig marks every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config selects and parameterises the aligner used by every command.
type Config struct {
	// Scheme is "arpabet" (phonetic table, closed vocabulary) or "basic"
	// (match/mismatch identity scoring, any token).
	Scheme string `yaml:"scheme"`

	// GapPenalty is added per gap; nil means the scheme default
	// (-5 for arpabet, -2 for basic).
	GapPenalty *float64 `yaml:"gap_penalty,omitempty"`

	// Match and Mismatch score the basic scheme.
	Match    float64 `yaml:"match"`
	Mismatch float64 `yaml:"mismatch"`

	// GapSymbol is the emitted and recognised gap token.
	GapSymbol string `yaml:"gap_symbol"`

	// Mapping optionally points to an attribute mapping file (JSON or YAML)
	// replacing the built-in ARPAbet table.
	Mapping string `yaml:"mapping,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scheme:    SchemeARPAbet,
		Match:     arpabet.BasicMatch,
		Mismatch:  arpabet.BasicMismatch,
		GapSymbol: nw.DefaultGapSymbol,
	}
}

// Load reads the file at path over Default() and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads YAML from r over Default(). Unknown fields are rejected and an
// empty document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // reject typos such as "gap_penality"
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the scheme, the gap symbol and scheme-specific fields.
func (c *Config) Validate() error {
	if !isValidScheme(c.Scheme) {
		return fmt.Errorf("%w: scheme %q: must be one of %v", ErrInvalidConfig, c.Scheme, ValidSchemes)
	}
	if c.GapSymbol == "" {
		return fmt.Errorf("%w: gap_symbol is required", ErrInvalidConfig)
	}
	if strings.IndexFunc(c.GapSymbol, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: gap_symbol %q contains whitespace", ErrInvalidConfig, c.GapSymbol)
	}
	if c.Mapping != "" && c.Scheme != SchemeARPAbet {
		return fmt.Errorf("%w: mapping requires scheme %q", ErrInvalidConfig, SchemeARPAbet)
	}

	return nil
}

// Gap returns the effective gap penalty.
func (c *Config) Gap() float64 {
	if c.GapPenalty != nil {
		return *c.GapPenalty
	}
	if c.Scheme == SchemeBasic {
		return arpabet.BasicGapPenalty
	}

	return arpabet.DefaultGapPenalty
}

// SetGap overrides the gap penalty.
func (c *Config) SetGap(g float64) { c.GapPenalty = &g }

// Aligner builds the aligner described by c; extra options are applied last.
func (c *Config) Aligner(extra ...arpabet.Option) (*arpabet.Aligner, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opts := []arpabet.Option{
		arpabet.WithGapPenalty(c.Gap()),
		arpabet.WithGapSymbol(c.GapSymbol),
	}

	if c.Scheme == SchemeBasic {
		opts = append(opts, arpabet.WithMatchMismatch(c.Match, c.Mismatch))
		return arpabet.NewBasicAligner(append(opts, extra...)...)
	}

	if c.Mapping != "" {
		m, err := c.loadMapping()
		if err != nil {
			return nil, err
		}
		opts = append(opts, arpabet.WithMapping(m))
	}

	return arpabet.NewAligner(append(opts, extra...)...)
}

// LoadMapping returns the configured mapping, or the built-in one.
func (c *Config) LoadMapping() (*arpabet.Mapping, error) {
	if c.Mapping == "" {
		return arpabet.DefaultMapping(), nil
	}
	return c.loadMapping()
}

func (c *Config) loadMapping() (*arpabet.Mapping, error) {
	f, err := os.Open(c.Mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping file: %w", err)
	}
	defer f.Close()

	m, err := arpabet.LoadMapping(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Mapping, err)
	}

	return m, nil
}

func isValidScheme(s string) bool {
	for _, v := range ValidSchemes {
		if v == s {
			return true
		}
	}
	return false
}
