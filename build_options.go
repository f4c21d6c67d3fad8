package handrank

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/tamirms/handrank/internal/phf"
)

// defaultMaxRetries bounds how often one table's perfect hash is rebuilt
// with larger parameters after the pilot search gives up.
const defaultMaxRetries = 4

// BuildOption is a functional option for configuring builds.
type BuildOption func(*buildConfig)

type buildConfig struct {
	workers    int // 0 = GOMAXPROCS
	logger     *log.Logger
	clock      quartz.Clock
	params     [numTableIDs]phf.Params
	maxRetries int
}

// defaultTuning holds the (c, alpha) pairs each table is built with first.
var defaultTuning = map[TableID][2]float64{
	tableID(Standard, RanksTable):   {3.0, 0.95},
	tableID(Standard, FlushTable):   {2.5, 0.95},
	tableID(AceFive, RanksTable):    {2.8, 0.96},
	tableID(DeuceSeven, RanksTable): {3.0, 0.95},
	tableID(DeuceSeven, FlushTable): {2.5, 0.95},
	tableID(SixPlus, RanksTable):    {2.0, 0.99},
	tableID(SixPlus, FlushTable):    {2.0, 0.99},
	tableID(Badugi, RanksTable):     {1.8, 0.99},
	tableID(Baduci, RanksTable):     {1.8, 0.99},
}

func defaultBuildConfig() *buildConfig {
	cfg := &buildConfig{
		logger:     log.New(io.Discard),
		clock:      quartz.NewReal(),
		maxRetries: defaultMaxRetries,
	}
	for id, t := range defaultTuning {
		cfg.params[id] = phf.Params{C: t[0], Alpha: t[1], MaxPilotAttempts: phf.DefaultMaxPilotAttempts}
	}
	return cfg
}

// WithWorkers sets how many tables are built in parallel. n <= 0 uses
// GOMAXPROCS.
func WithWorkers(n int) BuildOption {
	return func(c *buildConfig) {
		c.workers = n
	}
}

// WithLogger sets the logger for build progress. By default nothing is
// logged.
func WithLogger(l *log.Logger) BuildOption {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock sets the clock used to time table construction.
func WithClock(clk quartz.Clock) BuildOption {
	return func(c *buildConfig) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithTuning overrides the initial perfect hash parameters of one table.
// Retries grow them from there.
func WithTuning(v Variant, k TableKind, cval, alpha float64) BuildOption {
	return func(c *buildConfig) {
		id := tableID(v, k)
		if !id.valid() {
			return
		}
		c.params[id].C = cval
		c.params[id].Alpha = alpha
	}
}

// DefaultTuning returns the initial (c, alpha) of the given table. ok is
// false for a table the variant does not have.
func DefaultTuning(v Variant, k TableKind) (cval, alpha float64, ok bool) {
	t, ok := defaultTuning[tableID(v, k)]
	return t[0], t[1], ok
}

// WithMaxPilotAttempts caps the pilot search per bucket for every table.
func WithMaxPilotAttempts(n uint64) BuildOption {
	return func(c *buildConfig) {
		for _, id := range allTables {
			c.params[id].MaxPilotAttempts = n
		}
	}
}

// WithMaxRetries sets how often a table is retried with grown parameters
// after ErrPilotSearchExhausted. 0 disables retries.
func WithMaxRetries(n int) BuildOption {
	return func(c *buildConfig) {
		c.maxRetries = max(n, 0)
	}
}
