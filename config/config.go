// SPDX-License-Identifier: MIT

// Package config loads lvcollate settings from YAML or TOML files and
// COLLATE_* environment variables.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcollate/collation"
	"github.com/katalvlaran/lvcollate/token"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COLLATE_"

var (
	// ErrUnsupportedFormat indicates a config file that is neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid indicates a config that failed validation.
	ErrInvalid = errors.New("config: invalid")
)

// Config is the full lvcollate configuration.
type Config struct {
	Comparator    string       `yaml:"comparator" toml:"comparator"`
	Reference     string       `yaml:"reference" toml:"reference"`
	DecisionGraph bool         `yaml:"decision_graph" toml:"decision_graph"`
	Parallelism   int          `yaml:"parallelism" toml:"parallelism"`
	Server        ServerConfig `yaml:"server" toml:"server"`
	Store         StoreConfig  `yaml:"store" toml:"store"`
	Log           LogConfig    `yaml:"log" toml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr" toml:"addr"`
}

// StoreConfig configures the run store.
type StoreConfig struct {
	Path     string `yaml:"path" toml:"path"`
	InMemory bool   `yaml:"in_memory" toml:"in_memory"`
}

// LogConfig configures klog verbosity in the CLI.
type LogConfig struct {
	Verbosity int `yaml:"verbosity" toml:"verbosity"`
}

// Default returns a configuration that works without any file.
func Default() Config {
	return Config{
		Comparator:    "equality",
		Reference:     "graph",
		DecisionGraph: true,
		Parallelism:   4,
		Server:        ServerConfig{Addr: ":8080"},
		Store:         StoreConfig{Path: "data/runs"},
		Log:           LogConfig{Verbosity: 0},
	}
}

// Load reads path over the defaults. The format follows the extension
// (.yaml, .yml or .toml); unknown keys are rejected. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// 1. Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: read %q", path)
	}

	// 2. Strict decode by extension
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, errors.Wrapf(err, "config: parse YAML %q", path)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, errors.Wrapf(err, "config: parse TOML %q", path)
		}
	default:
		return cfg, errors.Wrapf(ErrUnsupportedFormat, "%q", path)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from COLLATE_* environment variables, e.g.
// COLLATE_SERVER_ADDR or COLLATE_STORE_IN_MEMORY.
func (c *Config) ApplyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "config: %s%s", EnvPrefix, key)
		}
		*dst = n

		return nil
	}
	flag := func(key string, dst *bool) error {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "config: %s%s", EnvPrefix, key)
		}
		*dst = b

		return nil
	}

	str("COMPARATOR", &c.Comparator)
	str("REFERENCE", &c.Reference)
	str("SERVER_ADDR", &c.Server.Addr)
	str("STORE_PATH", &c.Store.Path)
	for _, err := range []error{
		flag("DECISION_GRAPH", &c.DecisionGraph),
		flag("STORE_IN_MEMORY", &c.Store.InMemory),
		num("PARALLELISM", &c.Parallelism),
		num("LOG_VERBOSITY", &c.Log.Verbosity),
	} {
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate checks every field and names the first offending key.
func (c Config) Validate() error {
	if _, ok := token.ComparatorByName(c.Comparator); !ok {
		return errors.Wrapf(ErrInvalid, "comparator %q", c.Comparator)
	}
	if _, err := collation.ParseReference(c.Reference); err != nil {
		return errors.Wrapf(ErrInvalid, "reference %q", c.Reference)
	}
	if c.Parallelism < 0 {
		return errors.Wrapf(ErrInvalid, "parallelism %d", c.Parallelism)
	}
	if c.Server.Addr == "" {
		return errors.Wrap(ErrInvalid, "server.addr is empty")
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return errors.Wrap(ErrInvalid, "store.path is empty")
	}
	if c.Log.Verbosity < 0 {
		return errors.Wrapf(ErrInvalid, "log.verbosity %d", c.Log.Verbosity)
	}

	return nil
}

// CollationOptions translates the alignment keys into collation options.
// Call Validate first; unknown names fall back to the defaults.
func (c Config) CollationOptions() []collation.Option {
	opts := []collation.Option{collation.WithDecisionGraph(c.DecisionGraph)}
	if cmp, ok := token.ComparatorByName(c.Comparator); ok {
		opts = append(opts, collation.WithComparator(cmp))
	}
	if ref, err := collation.ParseReference(c.Reference); err == nil {
		opts = append(opts, collation.WithReference(ref))
	}

	return opts
}
