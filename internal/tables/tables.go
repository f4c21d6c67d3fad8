// Package tables builds the key-to-ordinal maps for every ranking variant.
//
// Ordinals are grouped by category in blocks of CategoryOffset; within a
// block, sub-blocks of 256 and 16 separate the ranks of the made hand so
// that a display layer can recover them. Larger ordinals are better hands.
package tables

import (
	"fmt"

	handerrors "github.com/tamirms/handrank/errors"
	"github.com/tamirms/handrank/internal/enumerate"
)

// CategoryOffset separates hand categories in ordinal space.
const CategoryOffset = 0x1000

// Expected key counts, checked after every build.
const (
	PokerRanksSize   = 76155
	PokerFlushSize   = 4719
	SixPlusRanksSize = 10945
	SixPlusFlushSize = 246
	BadugiSize       = 2379
)

// Table maps a hand key to its ordinal.
type Table map[uint32]uint16

// Set is the pair of tables a variant queries. Flush is nil for variants
// where suits only matter through the rank key.
type Set struct {
	Ranks Table
	Flush Table
}

// keyFunc turns a pattern into a table key.
type keyFunc func(uint64) uint32

// insert gives each class the next ordinal after base and returns the last
// ordinal used.
func insert(t Table, classes [][]uint64, key keyFunc, base uint16) uint16 {
	v := base
	for _, class := range classes {
		v++
		for _, p := range class {
			t[key(p)] = v
		}
	}
	return v
}

func singletons(patterns ...uint64) [][]uint64 {
	out := make([][]uint64, len(patterns))
	for i, p := range patterns {
		out[i] = []uint64{p}
	}
	return out
}

// bestSubset returns the largest ordinal t assigns to a five-card subset
// of p.
func bestSubset(t Table, p uint64, key keyFunc) (uint16, error) {
	var best uint16
	for _, sub := range enumerate.FiveCardSubsets(p) {
		v, ok := t[key(sub)]
		if !ok {
			return 0, fmt.Errorf("%w: subset %#x of %#x", handerrors.ErrTableInconsistent, sub, p)
		}
		best = max(best, v)
	}
	return best, nil
}

// fillOverfull ranks every six and seven card pattern by its best five-card
// subset. When withFlush is set, patterns that fit in one suit also get a
// flush entry.
func fillOverfull(s *Set, patterns []uint64, withFlush bool) error {
	for _, p := range patterns {
		v, err := bestSubset(s.Ranks, p, enumerate.RankKey)
		if err != nil {
			return err
		}
		s.Ranks[enumerate.RankKey(p)] = v

		if !withFlush || !enumerate.CanBeMonochrome(p) {
			continue
		}
		fv, err := bestSubset(s.Flush, p, enumerate.FlushKey)
		if err != nil {
			return err
		}
		if fv > 0 {
			s.Flush[enumerate.FlushKey(p)] = fv
		}
	}
	return nil
}

func checkSize(name string, t Table, want int) error {
	if len(t) != want {
		return fmt.Errorf("%w: %s table has %d keys, want %d",
			handerrors.ErrCardinalityMismatch, name, len(t), want)
	}
	return nil
}

// Keys returns the keys and values of t as parallel slices, in no
// particular order.
func (t Table) Keys() ([]uint64, []uint16) {
	keys := make([]uint64, 0, len(t))
	vals := make([]uint16, 0, len(t))
	for k, v := range t {
		keys = append(keys, uint64(k))
		vals = append(vals, v)
	}
	return keys, vals
}
