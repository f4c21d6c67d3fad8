package tables

import (
	"math/bits"

	"github.com/tamirms/handrank/card"
	"github.com/tamirms/handrank/internal/enumerate"
)

// sixPlusRules walks hands from the 36-card deck. A-6-7-8-9 is the lowest
// straight there, so it is pruned like any other.
var sixPlusRules = enumerate.Rules{
	Ranks:        []int{12, 11, 10, 9, 8, 7, 6, 5, 4},
	Size:         5,
	Ascending:    true,
	NoShortWheel: true,
}

// SixPlus builds the short-deck tables. Flushes beat full houses. Layout:
// high card 0, pair 1, two pair 2, trips 3, straight 4, full house 5,
// flush 6, quads 7, straight flush 8, royal flush 9.
func SixPlus() (Set, error) {
	s := Set{Ranks: Table{}, Flush: Table{}}
	const off = CategoryOffset
	lowest := int(card.Six)

	insert(s.Ranks, enumerate.Classes(0, 0, sixPlusRules), enumerate.RankKey, 0)
	for r := lowest; r < card.NumRanks; r++ {
		base := uint16(off + 256*r)
		insert(s.Ranks, enumerate.Classes(pairOf(r), 2, sixPlusRules), enumerate.RankKey, base)
	}
	for r1 := lowest; r1 < card.NumRanks; r1++ {
		for r2 := lowest; r2 < r1; r2++ {
			base := uint16(2*off + 256*r1 + 16*r2)
			insert(s.Ranks, enumerate.Classes(pairOf(r1)+pairOf(r2), 4, sixPlusRules), enumerate.RankKey, base)
		}
	}
	for r := lowest; r < card.NumRanks; r++ {
		base := uint16(3*off + 256*r)
		insert(s.Ranks, enumerate.Classes(tripsOf(r), 3, sixPlusRules), enumerate.RankKey, base)
	}
	insert(s.Ranks, shortStraights(card.Ace), enumerate.RankKey, 4*off)
	for r1 := lowest; r1 < card.NumRanks; r1++ {
		for r2 := lowest; r2 < card.NumRanks; r2++ {
			if r1 == r2 {
				continue
			}
			base := uint16(5*off + 256*r1 + 16*r2)
			insert(s.Ranks, singletons(tripsOf(r1)+pairOf(r2)), enumerate.RankKey, base)
		}
	}
	for r := lowest; r < card.NumRanks; r++ {
		base := uint16(7*off + 256*r)
		insert(s.Ranks, enumerate.Classes(quadsOf(r), 4, sixPlusRules), enumerate.RankKey, base)
	}

	insert(s.Flush, enumerate.Classes(0, 5, sixPlusRules), enumerate.FlushKey, 6*off)
	insert(s.Flush, shortStraights(card.King), enumerate.FlushKey, 8*off)
	insert(s.Flush, singletons(enumerate.Broadway), enumerate.FlushKey, 9*off)

	var overfull []uint64
	for _, p := range enumerate.AllPatterns(6, 7) {
		// nibbles 0-3 hold Two through Five
		if bits.TrailingZeros64(p) >= 16 {
			overfull = append(overfull, p)
		}
	}
	if err := fillOverfull(&s, overfull, true); err != nil {
		return Set{}, err
	}
	if err := checkSize("six-plus ranks", s.Ranks, SixPlusRanksSize); err != nil {
		return Set{}, err
	}
	if err := checkSize("six-plus flush", s.Flush, SixPlusFlushSize); err != nil {
		return Set{}, err
	}
	return s, nil
}

// shortStraights lists A-6-7-8-9, then every straight from ten-high up to
// top.
func shortStraights(top card.Rank) [][]uint64 {
	out := singletons(enumerate.ShortWheel)
	for h := card.Ten; h <= top; h++ {
		out = append(out, []uint64{enumerate.Straight(h)})
	}
	return out
}
