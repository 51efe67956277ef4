// Package config loads phylanx.yaml, the optional runtime-tuning file
// (worker pool size, direct-execution threshold, recursion guard) plus a
// list of named external pattern-plugin manifests to merge into the
// registry at startup.
//
// Grounded on funxy's internal/ext/config.go (YAML config discovery/parsing
// shape: FindConfig walking up parent directories, LoadConfig/ParseConfig
// split so tests can exercise parsing without touching the filesystem) and
// internal/evaluator/builtins_yaml.go (yaml.v3 as the one configuration
// format used throughout the corpus).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level phylanx.yaml shape.
type Config struct {
	// WorkerPoolSize bounds parallel_block's concurrent operand evaluation.
	// 0 (the default) means unbounded.
	WorkerPoolSize int `yaml:"worker_pool_size,omitempty"`

	// DirectExecutionThreshold: a parallel_block with this many operands or
	// fewer runs synchronously rather than paying goroutine setup cost.
	// 0 (the default) means parallel_block always dispatches concurrently.
	DirectExecutionThreshold int `yaml:"direct_execution_threshold,omitempty"`

	// RecursionGuard caps how deeply a user-defined function may recurse
	// before evaluation fails with an error instead of exhausting the
	// goroutine stack. 0 (the default) means unlimited.
	RecursionGuard int `yaml:"recursion_guard,omitempty"`

	// Plugins names the external pattern-plugin manifests (registered in Go
	// code, looked up by name — see pkg/plugin) to merge into the registry
	// in addition to the builtins internal/primitives installs.
	Plugins []string `yaml:"plugins,omitempty"`
}

// Default returns the zero-tuning configuration: unbounded worker pool,
// parallel_block always concurrent, no recursion limit, no plugins.
func Default() *Config {
	return &Config{}
}

// Load reads and parses a phylanx.yaml file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses phylanx.yaml content from bytes. path is used only for
// error messages.
func Parse(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find searches for phylanx.yaml (or phylanx.yml) starting from dir and
// walking up to parent directories, the way funxy's ext.FindConfig locates
// funxy.yaml. Returns an empty path and nil error if no config is found —
// the absence of a config file is not an error, since Default() is a sane
// configuration on its own.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range []string{"phylanx.yaml", "phylanx.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	if c.WorkerPoolSize < 0 {
		return fmt.Errorf("%s: worker_pool_size must not be negative, got %d", path, c.WorkerPoolSize)
	}
	if c.DirectExecutionThreshold < 0 {
		return fmt.Errorf("%s: direct_execution_threshold must not be negative, got %d", path, c.DirectExecutionThreshold)
	}
	if c.RecursionGuard < 0 {
		return fmt.Errorf("%s: recursion_guard must not be negative, got %d", path, c.RecursionGuard)
	}
	seen := make(map[string]bool, len(c.Plugins))
	for _, name := range c.Plugins {
		if name == "" {
			return fmt.Errorf("%s: plugins entries must not be empty", path)
		}
		if seen[name] {
			return fmt.Errorf("%s: plugin %q listed more than once", path, name)
		}
		seen[name] = true
	}
	return nil
}
