// Package enumerate generates rank-count patterns and groups them into
// hand classes.
//
// A pattern is a uint64 of thirteen 4-bit rank counters (see internal/bits).
// A class is a list of patterns that share one hand value; the first
// element of every class produced here is its complete hand, and later
// elements are partial hands that complete into it.
package enumerate

import (
	"github.com/tamirms/handrank/card"
	"github.com/tamirms/handrank/internal/bits"
)

const (
	// Wheel is A-2-3-4-5.
	Wheel uint64 = 0x1_0000_0000_1111
	// ShortWheel is A-6-7-8-9, the lowest straight in a 36-card deck.
	ShortWheel uint64 = 0x1_0000_1111_0000
	// Broadway is T-J-Q-K-A.
	Broadway uint64 = 0x1_1111_0000_0000

	straight = 0x1_1111
)

// Straight returns the five-rank run whose top card is high. high must be
// at least Six; use Wheel for the five-high straight.
func Straight(high card.Rank) uint64 {
	return straight << (4 * (uint(high) - 4))
}

// Size returns the number of cards in p.
func Size(p uint64) int { return bits.NibbleSum(p) }

// RankKey returns the sum of rank multipliers of p, matching
// card.Hand.RankKey for any hand with these ranks.
func RankKey(p uint64) uint32 {
	var k uint32
	for r := range card.NumRanks {
		k += uint32(bits.Nibble(p, r)) * card.Rank(r).Key()
	}
	return k
}

// FlushKey returns the rank-set key of p, matching card.Hand.FlushKey for
// a single-suited hand with these ranks.
func FlushKey(p uint64) uint32 {
	var k uint32
	for r := range card.NumRanks {
		k += uint32(bits.Nibble(p, r)) * uint32(card.Rank(r).FlushBit())
	}
	return k
}

// CanBeMonochrome reports whether p could be held in a single suit.
func CanBeMonochrome(p uint64) bool { return bits.AllSingles(p) }

// BiggestStraight returns the rank index of the top card of the highest
// straight in p, 3 for the wheel, or 0 when p holds no straight.
func BiggestStraight(p uint64) int {
	m := bits.Fold(p)
	for i := 9; i >= 0; i-- {
		if (m>>(4*i))&straight == straight {
			return i + 4
		}
	}
	if m&Wheel == Wheel {
		return 3
	}
	return 0
}

// AllPatterns returns every pattern with between minSize and maxSize cards
// and at most four of each rank.
func AllPatterns(minSize, maxSize int) []uint64 {
	type frame struct {
		p     uint64
		bound int
	}
	var out []uint64
	stack := []frame{{0, card.NumRanks}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := Size(f.p)
		if n >= minSize {
			out = append(out, f.p)
		}
		if n == maxSize {
			continue
		}
		for r := 0; r < f.bound; r++ {
			np := f.p + 1<<(4*r)
			if bits.Nibble(np, r) > 4 {
				continue
			}
			stack = append(stack, frame{np, r + 1})
		}
	}
	return out
}

// FiveCardSubsets returns the distinct five-card sub-patterns of p.
func FiveCardSubsets(p uint64) []uint64 {
	type frame struct {
		p   uint64
		low int
	}
	var out []uint64
	stack := []frame{{p, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := Size(f.p)
		if n == 5 {
			out = append(out, f.p)
		}
		if n <= 5 {
			continue
		}
		for r := f.low; r < card.NumRanks; r++ {
			c := bits.Nibble(f.p, r)
			if c == 0 {
				continue
			}
			stack = append(stack, frame{bits.SetNibble(f.p, r, c-1), r})
		}
	}
	return out
}
