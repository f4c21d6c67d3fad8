// Handrank builds, checks and queries poker hand-ranking tables.
//
// Usage:
//
//	handrank build --out tables.hrnk
//	handrank verify tables.hrnk
//	handrank eval --variant deuce-seven "7h 5c 4d 3s 2h"
//	handrank omaha --lo --hole "Ah 2h Kd Qd" --board "3c 4c 8s Js 9h"
//	handrank deal --phrase "hand 1234" --count 7
//	handrank bench --hands 1000000
package main

import (
	"github.com/alecthomas/kong"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"handrank.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

// CLI is the command tree.
type CLI struct {
	Globals

	Build  BuildCmd  `cmd:"" help:"Build every table and write the table file"`
	Verify VerifyCmd `cmd:"" help:"Check a table file's checksums and print its stats"`
	Eval   EvalCmd   `cmd:"" help:"Rank hands under one variant"`
	Omaha  OmahaCmd  `cmd:"" help:"Rank an Omaha hand, high or low"`
	Deal   DealCmd   `cmd:"" help:"Deal cards from a seeded deck"`
	Bench  BenchCmd  `cmd:"" help:"Measure rank queries per second"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Constant-time poker hand ranking with perfect hash tables"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the configuration and applies flag overrides.
func (g *Globals) load() (*Config, error) {
	cfg, err := LoadConfig(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	return cfg, nil
}
