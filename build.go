package handrank

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	handerrors "github.com/tamirms/handrank/errors"
	"github.com/tamirms/handrank/internal/phf"
	"github.com/tamirms/handrank/internal/tables"
)

// generators produce the key-to-ordinal maps of each variant.
var generators = [numVariants]func() (tables.Set, error){
	Standard:   tables.Standard,
	AceFive:    tables.AceFive,
	DeuceSeven: tables.DeuceSeven,
	SixPlus:    tables.SixPlus,
	Badugi:     tables.Badugi,
	Baduci:     tables.Baduci,
}

// Build enumerates every variant's hand classes and compiles them into
// perfect hash tables.
//
// Variants are built in parallel, bounded by WithWorkers. The first error
// cancels the rest. A table whose pilot search gives up is rebuilt with
// grown parameters up to WithMaxRetries times; the final failure wraps
// ErrPilotSearchExhausted. A table that does not have its expected size
// fails with ErrCardinalityMismatch and is never retried.
func Build(ctx context.Context, opts ...BuildOption) (*Evaluator, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	for _, id := range allTables {
		if err := cfg.params[id].Validate(); err != nil {
			return nil, fmt.Errorf("%s table: %w", id, err)
		}
	}
	workers := cfg.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	e := &Evaluator{}
	var stats [numTableIDs]TableStats

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, v := range Variants {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			set, err := generators[v]()
			if err != nil {
				return fmt.Errorf("generate %s: %w", v, err)
			}
			for k, t := range map[TableKind]tables.Table{RanksTable: set.Ranks, FlushTable: set.Flush} {
				if t == nil {
					continue
				}
				id := tableID(v, k)
				tbl, st, err := buildTable(gctx, cfg, id, t)
				if err != nil {
					return err
				}
				// each goroutine writes only its own variant's slots
				e.tables[id] = tbl
				stats[id] = st
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, id := range allTables {
		e.stats = append(e.stats, stats[id])
	}
	return e, nil
}

// buildTable compiles one key-to-ordinal map, growing the parameters after
// each exhausted pilot search.
func buildTable(ctx context.Context, cfg *buildConfig, id TableID, t tables.Table) (*phf.Table, TableStats, error) {
	keys, vals := t.Keys()
	params := cfg.params[id]
	start := cfg.clock.Now()

	for retry := 0; ; retry++ {
		if err := ctx.Err(); err != nil {
			return nil, TableStats{}, err
		}
		tbl, st, err := phf.Build(keys, vals, params)
		if err == nil {
			ts := TableStats{
				ID:            id,
				NumKeys:       st.NumKeys,
				NumBuckets:    st.NumBuckets,
				NumSlots:      st.NumSlots,
				LargestBucket: st.LargestBucket,
				MaxPilot:      st.MaxPilot,
				C:             params.C,
				Alpha:         params.Alpha,
				Retries:       retry,
				SizeBytes:     tbl.SizeBytes(),
				Duration:      cfg.clock.Since(start),
			}
			cfg.logger.Info("built table",
				"table", id, "keys", ts.NumKeys, "buckets", ts.NumBuckets, "slots", ts.NumSlots,
				"c", ts.C, "alpha", ts.Alpha, "retries", retry, "took", ts.Duration)
			return tbl, ts, nil
		}
		if !errors.Is(err, handerrors.ErrPilotSearchExhausted) || retry >= cfg.maxRetries {
			return nil, TableStats{}, fmt.Errorf("build %s table: %w", id, err)
		}
		cfg.logger.Warn("pilot search exhausted, growing parameters",
			"table", id, "c", params.C, "alpha", params.Alpha, "retry", retry+1)
		params = params.Grow()
	}
}
