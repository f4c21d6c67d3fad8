// Package phf builds and queries PTHash minimal-ish perfect hash maps from
// integer keys to uint16 values.
//
// Keys are split into m buckets by key mod m. Buckets are placed largest
// first; each gets the first pilot p whose hash h(p) sends every key k of
// the bucket to a free slot (k ^ h(p)) mod n'. A lookup is one division,
// one table read for the pilot, one xor, one more division and one table
// read for the value.
package phf

import (
	"fmt"
	"math"
	"math/bits"

	handerrors "github.com/tamirms/handrank/errors"
)

const (
	// DefaultC is the bucket density multiplier.
	DefaultC = 3.0

	// DefaultAlpha is the load factor, keys per slot.
	DefaultAlpha = 0.95

	// DefaultMaxPilotAttempts bounds the pilot search per bucket.
	DefaultMaxPilotAttempts = 1 << 20

	// growC and shrinkAlpha enlarge the parameters between retries.
	growC       = 1.5
	shrinkAlpha = 0.95

	// minAlpha is the floor for shrinking alpha.
	minAlpha = 0.5
)

// Params tunes one construction.
type Params struct {
	// C scales the bucket count m = ceil(C * n / log2(n)).
	C float64
	// Alpha sets the slot count n' = ceil(n / Alpha), bumped to odd.
	Alpha float64
	// MaxPilotAttempts caps the pilots tried for a single bucket.
	MaxPilotAttempts uint64
}

// DefaultParams returns the default tuning.
func DefaultParams() Params {
	return Params{C: DefaultC, Alpha: DefaultAlpha, MaxPilotAttempts: DefaultMaxPilotAttempts}
}

// Validate checks that p can produce a geometry.
func (p Params) Validate() error {
	if !(p.C > 0) || math.IsInf(p.C, 0) {
		return fmt.Errorf("%w: c=%v must be positive", handerrors.ErrInvalidParameters, p.C)
	}
	if !(p.Alpha > 0 && p.Alpha <= 1) {
		return fmt.Errorf("%w: alpha=%v must be in (0, 1]", handerrors.ErrInvalidParameters, p.Alpha)
	}
	if p.MaxPilotAttempts == 0 {
		return fmt.Errorf("%w: max pilot attempts must be positive", handerrors.ErrInvalidParameters)
	}
	return nil
}

// Grow returns parameters with more buckets and more slots, for a retry
// after ErrPilotSearchExhausted.
func (p Params) Grow() Params {
	p.C *= growC
	p.Alpha = max(p.Alpha*shrinkAlpha, minAlpha)
	return p
}

// geometry returns the bucket and slot counts for n keys.
func geometry(n int, p Params) (numBuckets, numSlots uint64) {
	lg := bits.Len(uint(n)) - 1
	if lg < 1 {
		lg = 1
	}
	numBuckets = uint64(math.Ceil(p.C * float64(n) / float64(lg)))
	if numBuckets == 0 {
		numBuckets = 1
	}

	numSlots = uint64(math.Ceil(float64(n) / p.Alpha))
	if numSlots < uint64(n) {
		numSlots = uint64(n)
	}
	if numSlots%2 == 0 {
		numSlots++
	}
	return numBuckets, numSlots
}
