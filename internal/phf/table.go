package phf

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	handerrors "github.com/tamirms/handrank/errors"
)

// Table is a built perfect hash map. Looking up a key that was not in the
// build set returns an arbitrary stored value or 0.
type Table struct {
	pilots     []uint32
	values     []uint16
	numBuckets uint64
	numSlots   uint64
}

// Stats describes a construction.
type Stats struct {
	NumKeys       int
	NumBuckets    uint64
	NumSlots      uint64
	LargestBucket int
	MaxPilot      uint64
	Params        Params
}

// FromParts wraps existing pilot and value arrays, e.g. views into a
// memory-mapped file. The slices are used as is, not copied.
func FromParts(pilots []uint32, values []uint16) (*Table, error) {
	if len(pilots) == 0 || len(values) == 0 {
		return nil, fmt.Errorf("%w: empty pilot or value array", handerrors.ErrCorruptedTable)
	}
	return &Table{
		pilots:     pilots,
		values:     values,
		numBuckets: uint64(len(pilots)),
		numSlots:   uint64(len(values)),
	}, nil
}

// Lookup returns the value stored for key.
func (t *Table) Lookup(key uint64) uint16 {
	ph := t.pilots[key%t.numBuckets]
	return t.values[(key^uint64(ph))%t.numSlots]
}

// Pilots returns the pilot array, one entry per bucket.
func (t *Table) Pilots() []uint32 { return t.pilots }

// Values returns the value array, one entry per slot.
func (t *Table) Values() []uint16 { return t.values }

// NumBuckets returns m.
func (t *Table) NumBuckets() uint64 { return t.numBuckets }

// NumSlots returns n'.
func (t *Table) NumSlots() uint64 { return t.numSlots }

// SizeBytes returns the in-memory size of the pilot and value arrays.
func (t *Table) SizeBytes() int {
	return 4*len(t.pilots) + 2*len(t.values)
}

// Build constructs a table mapping keys[i] to vals[i].
//
// Entries are sorted by key first, so the result depends only on the set
// of entries, not their order. When one bucket exhausts
// params.MaxPilotAttempts the error wraps ErrPilotSearchExhausted; calling
// again with params.Grow() usually succeeds.
func Build(keys []uint64, vals []uint16, params Params) (*Table, Stats, error) {
	if len(keys) != len(vals) {
		return nil, Stats{}, fmt.Errorf("%w: %d keys, %d values", handerrors.ErrKeyValueMismatch, len(keys), len(vals))
	}
	if len(keys) == 0 {
		return nil, Stats{}, handerrors.ErrEmptyTable
	}
	if err := params.Validate(); err != nil {
		return nil, Stats{}, err
	}

	sk, sv := sortEntries(keys, vals)
	for i := 1; i < len(sk); i++ {
		if sk[i] == sk[i-1] {
			return nil, Stats{}, fmt.Errorf("%w: key %#x", handerrors.ErrDuplicateKey, sk[i])
		}
	}

	numBuckets, numSlots := geometry(len(sk), params)
	s := newSolver(sk, sv, numBuckets, numSlots, params.MaxPilotAttempts)
	stats := Stats{
		NumKeys:       len(sk),
		NumBuckets:    numBuckets,
		NumSlots:      numSlots,
		LargestBucket: s.largestBucket,
		Params:        params,
	}
	if err := s.solve(); err != nil {
		if errors.Is(err, errPilotLimit) {
			b := s.failedBucket
			return nil, stats, fmt.Errorf("%w: bucket %d with %d keys after %d pilots (c=%.3f, alpha=%.3f)",
				handerrors.ErrPilotSearchExhausted, b, s.bucketStarts[b+1]-s.bucketStarts[b],
				params.MaxPilotAttempts, params.C, params.Alpha)
		}
		return nil, stats, err
	}
	stats.MaxPilot = s.maxPilot

	return &Table{
		pilots:     s.pilots,
		values:     s.values(),
		numBuckets: numBuckets,
		numSlots:   numSlots,
	}, stats, nil
}

func sortEntries(keys []uint64, vals []uint16) ([]uint64, []uint16) {
	type entry struct {
		key uint64
		val uint16
	}
	entries := make([]entry, len(keys))
	for i := range keys {
		entries[i] = entry{keys[i], vals[i]}
	}
	slices.SortFunc(entries, func(a, b entry) int { return cmp.Compare(a.key, b.key) })

	sk := make([]uint64, len(entries))
	sv := make([]uint16, len(entries))
	for i, e := range entries {
		sk[i], sv[i] = e.key, e.val
	}
	return sk, sv
}
