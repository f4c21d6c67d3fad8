package phf

import (
	"errors"
	"slices"
)

// errPilotLimit is returned when one bucket runs out of pilot attempts. It
// is an internal signal; Build wraps it in ErrPilotSearchExhausted.
var errPilotLimit = errors.New("phf solver: pilot limit reached")

// emptySlot marks a slot no key has claimed.
const emptySlot = -1

// solver places the buckets of one construction.
type solver struct {
	numBuckets uint64
	numSlots   uint64
	maxPilots  uint64

	// entries sorted by (bucket, key)
	keys []uint64
	vals []uint16

	bucketStarts []int // len numBuckets+1
	bucketOrder  []int // bucket indices, largest first

	pilots    []uint32
	slotOwner []int32 // slot -> entry index, or emptySlot

	// Reusable per-bucket buffers
	slotsBuffer []uint64
	sortedSlots []uint64

	// Counting sort buffers
	sortCounts    []int
	sortPositions []int

	// Reporting
	maxPilot      uint64
	largestBucket int
	failedBucket  int
}

func newSolver(keys []uint64, vals []uint16, numBuckets, numSlots, maxPilots uint64) *solver {
	s := &solver{
		numBuckets: numBuckets,
		numSlots:   numSlots,
		maxPilots:  maxPilots,
		pilots:     make([]uint32, numBuckets),
		slotOwner:  make([]int32, numSlots),
	}
	for i := range s.slotOwner {
		s.slotOwner[i] = emptySlot
	}
	s.bucketize(keys, vals)
	return s
}

// bucketize groups entries by bucket using a counting pass, keeping keys
// ascending within each bucket.
func (s *solver) bucketize(keys []uint64, vals []uint16) {
	m := s.numBuckets
	s.bucketStarts = make([]int, m+1)
	for _, k := range keys {
		s.bucketStarts[k%m+1]++
	}
	for b := uint64(0); b < m; b++ {
		s.bucketStarts[b+1] += s.bucketStarts[b]
	}

	s.keys = make([]uint64, len(keys))
	s.vals = make([]uint16, len(vals))
	next := slices.Clone(s.bucketStarts[:m])
	for i, k := range keys {
		b := k % m
		s.keys[next[b]] = k
		s.vals[next[b]] = vals[i]
		next[b]++
	}

	for b := uint64(0); b < m; b++ {
		size := s.bucketStarts[b+1] - s.bucketStarts[b]
		s.largestBucket = max(s.largestBucket, size)
	}
	s.slotsBuffer = make([]uint64, 0, s.largestBucket)
	s.sortedSlots = make([]uint64, 0, s.largestBucket)
	s.sortCounts = make([]int, s.largestBucket+1)
	s.sortPositions = make([]int, s.largestBucket+1)
	s.bucketOrder = make([]int, m)
	countingSortBuckets(s.bucketStarts, s.bucketOrder, s.sortCounts, s.sortPositions)
}

// countingSortBuckets writes bucket indices into result ordered by size,
// largest first, ties broken by ascending index. O(numBuckets + maxSize).
func countingSortBuckets(bucketStarts []int, result []int, counts []int, positions []int) {
	n := len(bucketStarts) - 1
	if n <= 0 {
		return
	}

	maxSize := 0
	for i := 0; i < n; i++ {
		maxSize = max(maxSize, bucketStarts[i+1]-bucketStarts[i])
	}
	for i := 0; i <= maxSize; i++ {
		counts[i] = 0
	}
	for i := 0; i < n; i++ {
		counts[bucketStarts[i+1]-bucketStarts[i]]++
	}

	// Convert to positions (reverse order for largest first)
	pos := 0
	for size := maxSize; size >= 0; size-- {
		positions[size] = pos
		pos += counts[size]
	}
	for i := 0; i < n; i++ {
		size := bucketStarts[i+1] - bucketStarts[i]
		result[positions[size]] = i
		positions[size]++
	}
}

// solve assigns a pilot to every bucket.
func (s *solver) solve() error {
	for _, b := range s.bucketOrder {
		start, end := s.bucketStarts[b], s.bucketStarts[b+1]
		if start == end {
			// empty buckets keep pilot 0
			continue
		}
		if err := s.placeBucket(b, start, end); err != nil {
			return err
		}
	}
	return nil
}

// placeBucket tries pilots 0, 1, 2, ... until every key of the bucket
// lands on a distinct free slot.
func (s *solver) placeBucket(b, start, end int) error {
	bucketKeys := s.keys[start:end]
	for p := uint64(0); p < s.maxPilots; p++ {
		ph := pilotHash(p)
		if !s.tryPilot(bucketKeys, ph) {
			continue
		}
		for i, slot := range s.slotsBuffer {
			s.slotOwner[slot] = int32(start + i)
		}
		s.pilots[b] = ph
		s.maxPilot = max(s.maxPilot, p)
		return nil
	}
	s.failedBucket = b
	return errPilotLimit
}

// tryPilot fills slotsBuffer and reports whether the slots are free and
// pairwise distinct.
func (s *solver) tryPilot(bucketKeys []uint64, ph uint32) bool {
	s.slotsBuffer = s.slotsBuffer[:0]
	for _, k := range bucketKeys {
		slot := slotOf(k, ph, s.numSlots)
		if s.slotOwner[slot] != emptySlot {
			return false
		}
		s.slotsBuffer = append(s.slotsBuffer, slot)
	}
	if len(s.slotsBuffer) < 2 {
		return true
	}
	s.sortedSlots = append(s.sortedSlots[:0], s.slotsBuffer...)
	slices.Sort(s.sortedSlots)
	for i := 1; i < len(s.sortedSlots); i++ {
		if s.sortedSlots[i] == s.sortedSlots[i-1] {
			return false
		}
	}
	return true
}

// values lays the value of every entry at its slot; unused slots hold 0.
func (s *solver) values() []uint16 {
	out := make([]uint16, s.numSlots)
	for slot, owner := range s.slotOwner {
		if owner != emptySlot {
			out[slot] = s.vals[owner]
		}
	}
	return out
}
