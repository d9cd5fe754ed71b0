// Package config loads a symmetry-search configuration from a YAML file
// and maps it onto the engine's options.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/symcnf/symcnf/sym"
)

// Config is the file form of sym.Options. Zero values mean "engine
// default", so a partial file is fine.
type Config struct {
	// Verbosity is one of "quiet", "normal", "verbose", "trace".
	Verbosity string `yaml:"verbosity"`
	// Pairwise searches for variable pairs instead of single-variable
	// polarity symmetries.
	Pairwise bool `yaml:"pairwise"`
	// Groups merges pairwise results into symmetry groups.
	Groups bool `yaml:"groups"`
	// SortVariables orders the pairwise working list by occurrence counts.
	SortVariables bool `yaml:"sort_variables"`
	// SortLiterals pre-sorts clause literals, enabling the linear matcher.
	SortLiterals bool `yaml:"sort_literals"`
	// SortClauses pre-sorts occurrence lists by clause size before sweeps.
	SortClauses bool `yaml:"sort_clauses"`
	// NoConsume disables the consumption of matched clauses during sweeps.
	NoConsume bool `yaml:"no_consume"`
	// RelaxedPolarity accepts a polarity candidate after the forward
	// sweep alone.
	RelaxedPolarity bool `yaml:"relaxed_polarity"`
	// IncludeUnused keeps variables without occurrences as candidates.
	IncludeUnused bool `yaml:"include_unused"`
	// MaxPairs caps the number of pairs examined (0 = engine default).
	MaxPairs int `yaml:"max_pairs"`
	// MaxCandidates caps the polarity candidate list (0 = engine default).
	MaxCandidates int `yaml:"max_candidates"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file %q", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse config file %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %q", path)
	}
	return &cfg, nil
}

// Validate checks field values that cannot be checked by the YAML decoder.
func (c *Config) Validate() error {
	switch c.Verbosity {
	case "", "quiet", "normal", "verbose", "trace":
	default:
		return errors.Errorf("unknown verbosity %q", c.Verbosity)
	}
	if c.MaxPairs < 0 {
		return errors.Errorf("max_pairs must not be negative, got %d", c.MaxPairs)
	}
	if c.MaxCandidates < 0 {
		return errors.Errorf("max_candidates must not be negative, got %d", c.MaxCandidates)
	}
	return nil
}

// Options converts the configuration to engine options.
func (c *Config) Options() *sym.Options {
	opts := &sym.Options{
		Pairwise:        c.Pairwise,
		Groups:          c.Groups,
		SortVars:        c.SortVariables,
		SortLits:        c.SortLiterals,
		SortClauses:     c.SortClauses,
		NoConsume:       c.NoConsume,
		RelaxedPolarity: c.RelaxedPolarity,
		IncludeUnused:   c.IncludeUnused,
		MaxPairs:        c.MaxPairs,
		MaxCandidates:   c.MaxCandidates,
	}
	switch c.Verbosity {
	case "quiet":
		opts.Verbosity = sym.Quiet
	case "verbose":
		opts.Verbosity = sym.Verbose
	case "trace":
		opts.Verbosity = sym.Trace
	default:
		opts.Verbosity = sym.Normal
	}
	return opts
}
