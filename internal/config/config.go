// Package config loads the YAML configuration a cmd/llcsim run is driven by:
// cache geometry, the replacement policy under test, the RNG seed, and the
// trace to replay. Modeled on the chaos-utils config package's
// struct-with-yaml-tags-plus-Load shape, trimmed to the handful of knobs
// llcsim actually needs.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"llcsim/internal/replacement"
)

// Config is the full llcsim run configuration.
type Config struct {
	Sets      int    `yaml:"sets"`
	Assoc     int    `yaml:"assoc"`
	Policy    string `yaml:"policy"`
	Seed      int64  `yaml:"seed"`
	TracePath string `yaml:"trace_path"`
	Step      bool   `yaml:"step"`
}

// Default returns the configuration llcsim runs with absent a config file or
// overriding flags: a 4096-set, 16-way LLC running SRRIP, matching a
// commonly cited LLC geometry.
func Default() *Config {
	return &Config{
		Sets:   4096,
		Assoc:  16,
		Policy: "SRRIP",
		Seed:   1,
	}
}

// Load reads a YAML file at path into a copy of Default, then returns it.
// A missing file is not an error: it simply yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "config: read %q", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %q", path)
	}
	return cfg, nil
}

// Validate checks the configuration is self-consistent and returns the
// decoded Policy for convenience.
func (c *Config) Validate() (replacement.Policy, error) {
	if c.Sets <= 0 {
		return 0, errors.Errorf("config: sets must be positive, got %d", c.Sets)
	}
	if c.Assoc <= 0 {
		return 0, errors.Errorf("config: assoc must be positive, got %d", c.Assoc)
	}
	policy, ok := parsePolicy(c.Policy)
	if !ok {
		return 0, errors.Errorf("config: unknown policy %q", c.Policy)
	}
	if c.TracePath == "" {
		return 0, errors.New("config: trace_path is required")
	}
	return policy, nil
}

func parsePolicy(s string) (replacement.Policy, bool) {
	for p := replacement.PolicyLRU; p <= replacement.PolicyCustom; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}
