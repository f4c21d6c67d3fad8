package tables

import (
	"github.com/tamirms/handrank/card"
	"github.com/tamirms/handrank/internal/enumerate"
)

var twoToAce = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

// noStraights is the deuce-to-seven search: every rank, no straights of any
// kind, worst hand first.
var noStraights = enumerate.Rules{Ranks: twoToAce, Size: 5}

// highFirst walks the same hands best-first for high-hand variants.
var highFirst = enumerate.Rules{Ranks: twoToAce, Size: 5, Reverse: true}

func pairOf(r int) uint64  { return 2 << (4 * r) }
func tripsOf(r int) uint64 { return 3 << (4 * r) }
func quadsOf(r int) uint64 { return 4 << (4 * r) }

// Standard builds the high-hand tables: high card 0, pair 1, two pair 2,
// trips 3, straight 4, flush 5, full house 6, quads 7, straight flush 8,
// royal flush 9.
func Standard() (Set, error) {
	s := Set{Ranks: Table{}, Flush: Table{}}
	const off = CategoryOffset

	insert(s.Ranks, enumerate.Classes(0, 0, highFirst), enumerate.RankKey, 0)
	for r := range card.NumRanks {
		base := uint16(off + 256*r)
		insert(s.Ranks, enumerate.Classes(pairOf(r), 2, highFirst), enumerate.RankKey, base)
	}
	for r1 := range card.NumRanks {
		for r2 := range r1 {
			base := uint16(2*off + 256*r1 + 16*r2)
			insert(s.Ranks, enumerate.Classes(pairOf(r1)+pairOf(r2), 4, highFirst), enumerate.RankKey, base)
		}
	}
	for r := range card.NumRanks {
		base := uint16(3*off + 256*r)
		insert(s.Ranks, enumerate.Classes(tripsOf(r), 3, highFirst), enumerate.RankKey, base)
	}
	insert(s.Ranks, straightsAscending(card.Ace), enumerate.RankKey, 4*off)
	for r1 := range card.NumRanks {
		for r2 := range card.NumRanks {
			if r1 == r2 {
				continue
			}
			base := uint16(6*off + 256*r1 + 16*r2)
			insert(s.Ranks, singletons(tripsOf(r1)+pairOf(r2)), enumerate.RankKey, base)
		}
	}
	for r := range card.NumRanks {
		base := uint16(7*off + 256*r)
		insert(s.Ranks, enumerate.Classes(quadsOf(r), 4, highFirst), enumerate.RankKey, base)
	}

	insert(s.Flush, enumerate.Classes(0, 5, highFirst), enumerate.FlushKey, 5*off)
	insert(s.Flush, straightsAscending(card.King), enumerate.FlushKey, 8*off)
	insert(s.Flush, singletons(enumerate.Broadway), enumerate.FlushKey, 9*off)

	if err := fillOverfull(&s, enumerate.AllPatterns(6, 7), true); err != nil {
		return Set{}, err
	}
	if err := checkSize("standard ranks", s.Ranks, PokerRanksSize); err != nil {
		return Set{}, err
	}
	if err := checkSize("standard flush", s.Flush, PokerFlushSize); err != nil {
		return Set{}, err
	}
	return s, nil
}

// straightsAscending lists the wheel, then every straight from six-high up
// to top.
func straightsAscending(top card.Rank) [][]uint64 {
	out := singletons(enumerate.Wheel)
	for h := card.Six; h <= top; h++ {
		out = append(out, []uint64{enumerate.Straight(h)})
	}
	return out
}

// DeuceSeven builds the deuce-to-seven lowball tables. Aces are high and
// straights and flushes count against the hand. Layout: royal flush 0,
// straight flush 1, quads 2, full house 3, flush 4, straight 5, trips 6,
// two pair 7, pair 8, high card 9, with the worst rank in each group
// first.
func DeuceSeven() (Set, error) {
	s := Set{Ranks: Table{}, Flush: Table{}}
	const off = CategoryOffset
	// worst rank first
	rs := [card.NumRanks]int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}

	for i, r := range rs {
		base := uint16(2*off + 256*i)
		insert(s.Ranks, enumerate.Classes(quadsOf(r), 4, noStraights), enumerate.RankKey, base)
	}
	for r1 := range card.NumRanks {
		for r2 := range card.NumRanks {
			if r1 == r2 {
				continue
			}
			base := uint16(3*off + 256*r1 + 16*r2)
			insert(s.Ranks, singletons(tripsOf(rs[r1])+pairOf(rs[r2])), enumerate.RankKey, base)
		}
	}
	var straights [][]uint64
	for h := card.Ace; h >= card.Six; h-- {
		straights = append(straights, []uint64{enumerate.Straight(h)})
	}
	straights = append(straights, []uint64{enumerate.Wheel})
	insert(s.Ranks, straights, enumerate.RankKey, 5*off)
	for i, r := range rs {
		base := uint16(6*off + 256*i)
		insert(s.Ranks, enumerate.Classes(tripsOf(r), 3, noStraights), enumerate.RankKey, base)
	}
	for r1 := range card.NumRanks {
		for r2 := range r1 {
			base := uint16(7*off + 256*r2 + 16*r1)
			insert(s.Ranks, enumerate.Classes(pairOf(rs[r1])+pairOf(rs[r2]), 4, noStraights), enumerate.RankKey, base)
		}
	}
	for i, r := range rs {
		base := uint16(8*off + 256*i)
		insert(s.Ranks, enumerate.Classes(pairOf(r), 2, noStraights), enumerate.RankKey, base)
	}
	insert(s.Ranks, enumerate.Classes(0, 0, noStraights), enumerate.RankKey, 9*off)

	insert(s.Flush, singletons(enumerate.Broadway), enumerate.FlushKey, 0)
	v := uint16(off + 1)
	for h := card.King; h >= card.Six; h-- {
		v = insert(s.Flush, singletons(enumerate.Straight(h)), enumerate.FlushKey, v)
	}
	insert(s.Flush, singletons(enumerate.Wheel), enumerate.FlushKey, v)
	insert(s.Flush, enumerate.Classes(0, 5, noStraights), enumerate.FlushKey, 4*off)

	if err := fillOverfull(&s, enumerate.AllPatterns(6, 7), true); err != nil {
		return Set{}, err
	}
	if err := checkSize("deuce-seven ranks", s.Ranks, PokerRanksSize); err != nil {
		return Set{}, err
	}
	if err := checkSize("deuce-seven flush", s.Flush, PokerFlushSize); err != nil {
		return Set{}, err
	}
	return s, nil
}

// AceFive builds the ace-to-five lowball table. Aces are low, straights
// and flushes are ignored. Layout: quads 0, full house 1, trips 2, two
// pair 3, pair 4, high card 5.
func AceFive() (Set, error) {
	s := Set{Ranks: Table{}}
	const off = CategoryOffset
	rs := [card.NumRanks]int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 12}
	rules := enumerate.Rules{
		Ranks:       []int{12, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		Size:        5,
		MaxStraight: card.NumRanks,
	}

	for i, r := range rs {
		insert(s.Ranks, enumerate.Classes(quadsOf(r), 0, rules), enumerate.RankKey, uint16(256*i))
	}
	for r1 := range card.NumRanks {
		for r2 := range card.NumRanks {
			if r1 == r2 {
				continue
			}
			base := uint16(off + 256*r1 + 16*r2)
			insert(s.Ranks, singletons(tripsOf(rs[r1])+pairOf(rs[r2])), enumerate.RankKey, base)
		}
	}
	for i, r := range rs {
		base := uint16(2*off + 256*i)
		insert(s.Ranks, enumerate.Classes(tripsOf(r), 0, rules), enumerate.RankKey, base)
	}
	for r1 := range card.NumRanks {
		for r2 := range r1 {
			base := uint16(3*off + 256*r2 + 16*r1)
			insert(s.Ranks, enumerate.Classes(pairOf(rs[r1])+pairOf(rs[r2]), 0, rules), enumerate.RankKey, base)
		}
	}
	for i, r := range rs {
		base := uint16(4*off + 256*i)
		insert(s.Ranks, enumerate.Classes(pairOf(r), 0, rules), enumerate.RankKey, base)
	}
	insert(s.Ranks, enumerate.Classes(0, 0, rules), enumerate.RankKey, 5*off)

	if err := fillOverfull(&s, enumerate.AllPatterns(6, 7), false); err != nil {
		return Set{}, err
	}
	if err := checkSize("ace-five ranks", s.Ranks, PokerRanksSize); err != nil {
		return Set{}, err
	}
	return s, nil
}
