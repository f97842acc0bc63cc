// Package config loads the optional TOML configuration of the contacts
// command.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config holds the settings of a run that are not given as positional
// arguments. Command line flags take precedence over these.
type Config struct {
	// One of "debug", "info", "warn" or "error".
	LogLevel string

	// When set, contacts are sorted before being written.
	Sort bool

	// When set, the number of contacts between each pair of chains is logged
	// after the scan.
	Summary bool

	// When non-empty, the residues in contact are written to this path as
	// one FASTA entry per chain.
	Interface string

	// The column at which interface sequences are wrapped.
	Columns int
}

type fileConfig struct {
	LogLevel  string `toml:"log_level"`
	Sort      bool   `toml:"sort"`
	Summary   bool   `toml:"summary"`
	Interface string `toml:"interface"`
	Columns   int    `toml:"columns"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Columns:  60,
	}
}

// Load reads the TOML file at path and lays the keys it defines over the
// defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("load config: unknown keys in %s: %s",
			path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("sort") {
		cfg.Sort = raw.Sort
	}
	if meta.IsDefined("summary") {
		cfg.Summary = raw.Summary
	}
	if meta.IsDefined("interface") {
		cfg.Interface = strings.TrimSpace(raw.Interface)
	}
	if meta.IsDefined("columns") {
		cfg.Columns = raw.Columns
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the log level is known.
func (cfg Config) Validate() error {
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the zerolog level named by LogLevel.
func (cfg Config) Level() (zerolog.Level, error) {
	switch cfg.LogLevel {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", cfg.LogLevel)
}
