package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tamirms/handrank"
)

// Config is the optional HCL configuration file.
//
//	log_level = "debug"
//	artifact  = "tables.hrnk"
//	workers   = 4
//
//	tuning "standard" {
//	  ranks_c     = 3.5
//	  ranks_alpha = 0.9
//	}
type Config struct {
	LogLevel string         `hcl:"log_level,optional"`
	Artifact string         `hcl:"artifact,optional"`
	Workers  int            `hcl:"workers,optional"`
	Tuning   []TuningConfig `hcl:"tuning,block"`
}

// TuningConfig overrides the perfect hash parameters of one variant's
// tables. Unset values keep their defaults.
type TuningConfig struct {
	Variant    string  `hcl:"variant,label"`
	RanksC     float64 `hcl:"ranks_c,optional"`
	RanksAlpha float64 `hcl:"ranks_alpha,optional"`
	FlushC     float64 `hcl:"flush_c,optional"`
	FlushAlpha float64 `hcl:"flush_alpha,optional"`
}

const (
	defaultLogLevel = "info"
	defaultArtifact = "handrank.hrnk"
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: defaultLogLevel,
		Artifact: defaultArtifact,
	}
}

// LoadConfig reads an HCL configuration file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.Artifact == "" {
		cfg.Artifact = defaultArtifact
	}
	return &cfg, cfg.Validate()
}

// Validate checks the log level and every tuning block.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}
	seen := make(map[handrank.Variant]bool)
	for _, t := range c.Tuning {
		v, err := handrank.ParseVariant(t.Variant)
		if err != nil {
			return fmt.Errorf("tuning block: %w", err)
		}
		if seen[v] {
			return fmt.Errorf("tuning block %q appears twice", t.Variant)
		}
		seen[v] = true
		if !v.HasFlushTable() && (t.FlushC != 0 || t.FlushAlpha != 0) {
			return fmt.Errorf("tuning block %q: %s has no flush table", t.Variant, v)
		}
		for _, p := range []struct {
			name string
			val  float64
		}{{"ranks_c", t.RanksC}, {"flush_c", t.FlushC}} {
			if p.val < 0 {
				return fmt.Errorf("tuning block %q: %s must be positive", t.Variant, p.name)
			}
		}
		for _, p := range []struct {
			name string
			val  float64
		}{{"ranks_alpha", t.RanksAlpha}, {"flush_alpha", t.FlushAlpha}} {
			if p.val < 0 || p.val > 1 {
				return fmt.Errorf("tuning block %q: %s must be in (0, 1]", t.Variant, p.name)
			}
		}
	}
	return nil
}

// BuildOptions turns the configuration into handrank build options.
func (c *Config) BuildOptions(logger *log.Logger) []handrank.BuildOption {
	opts := []handrank.BuildOption{
		handrank.WithWorkers(c.Workers),
		handrank.WithLogger(logger),
	}
	for _, t := range c.Tuning {
		v, err := handrank.ParseVariant(t.Variant)
		if err != nil {
			continue
		}
		if o, ok := tuningOption(v, handrank.RanksTable, t.RanksC, t.RanksAlpha); ok {
			opts = append(opts, o)
		}
		if o, ok := tuningOption(v, handrank.FlushTable, t.FlushC, t.FlushAlpha); ok {
			opts = append(opts, o)
		}
	}
	return opts
}

// tuningOption fills an unset value from the table's default.
func tuningOption(v handrank.Variant, k handrank.TableKind, cval, alpha float64) (handrank.BuildOption, bool) {
	if cval == 0 && alpha == 0 {
		return nil, false
	}
	defC, defAlpha, ok := handrank.DefaultTuning(v, k)
	if !ok {
		return nil, false
	}
	if cval == 0 {
		cval = defC
	}
	if alpha == 0 {
		alpha = defAlpha
	}
	return handrank.WithTuning(v, k, cval, alpha), true
}

// newLogger returns a stderr logger at level, falling back to info.
func newLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "handrank",
	})
}
