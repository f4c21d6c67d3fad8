package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handrank.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultArtifact, cfg.Artifact)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
workers   = 3

tuning "standard" {
  ranks_c     = 4.5
  ranks_alpha = 0.9
  flush_c     = 3
}

tuning "badugi" {
  ranks_alpha = 0.85
}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, defaultArtifact, cfg.Artifact)
	assert.Equal(t, 3, cfg.Workers)
	require.Len(t, cfg.Tuning, 2)
	assert.Equal(t, "standard", cfg.Tuning[0].Variant)
	assert.InDelta(t, 4.5, cfg.Tuning[0].RanksC, 1e-9)
	assert.InDelta(t, 0.9, cfg.Tuning[0].RanksAlpha, 1e-9)
	assert.InDelta(t, 3.0, cfg.Tuning[0].FlushC, 1e-9)
	assert.Zero(t, cfg.Tuning[0].FlushAlpha)
	assert.Equal(t, "badugi", cfg.Tuning[1].Variant)

	// Workers and logger, then standard ranks, standard flush and
	// badugi ranks.
	opts := cfg.BuildOptions(log.New(os.Stderr))
	assert.Len(t, opts, 5)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"syntax", `log_level = `, "parse"},
		{"unknown attribute", `colour = "red"`, "decode"},
		{"log level", `log_level = "loud"`, "log_level"},
		{"workers", `workers = -1`, "workers"},
		{"variant", `tuning "stud" { ranks_c = 3 }`, "tuning block"},
		{"duplicate", "tuning \"razz\" {}\ntuning \"ace-five\" {}", "twice"},
		{"flush on badugi", `tuning "badugi" { flush_c = 3 }`, "no flush table"},
		{"negative c", `tuning "standard" { ranks_c = -1 }`, "ranks_c"},
		{"alpha", `tuning "six-plus" { flush_alpha = 1.5 }`, "flush_alpha"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestTuningOptionSkipsUnset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tuning = []TuningConfig{{Variant: "deuce-seven"}}
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.BuildOptions(log.New(os.Stderr)), 2)
}

func TestGlobalsLoadOverridesLogLevel(t *testing.T) {
	g := &Globals{
		Config:   writeConfig(t, `log_level = "warn"`),
		LogLevel: "debug",
	}
	cfg, err := g.load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
