package handrank

import (
	"sync/atomic"

	"github.com/edsrzf/mmap-go"

	"github.com/tamirms/handrank/card"
	"github.com/tamirms/handrank/internal/phf"
)

// Evaluator ranks hands under every supported variant.
//
// An Evaluator comes from Build or from opening a table file written by
// WriteFile. All rank methods are pure lookups over immutable tables and are
// safe for concurrent use; they never allocate.
//
// Thread Safety:
//   - rank methods, Stats and Verify are safe for concurrent use
//   - Close is NOT safe to call concurrently with rank methods
//   - after Close, rank methods must not be called on a file-backed
//     Evaluator; the tables are unmapped
type Evaluator struct {
	tables [numTableIDs]*phf.Table
	stats  []TableStats

	// Set when the tables are views into a table file.
	mmap   mmap.MMap
	data   []byte
	header *header
	dir    []dirEntry

	closed atomic.Bool
}

func (e *Evaluator) lookup(id TableID, key uint64) uint16 {
	return e.tables[id].Lookup(key)
}

// rankKey returns the ranks-table ordinal of h under v.
func (e *Evaluator) rankKey(v Variant, h card.Hand) uint16 {
	return e.lookup(tableID(v, RanksTable), uint64(h.RankKey()))
}

func (e *Evaluator) flushKey(v Variant, h card.Hand) uint16 {
	return e.lookup(tableID(v, FlushTable), uint64(h.FlushKey()))
}

// Standard ranks h as a high hand, best five of up to seven cards. Hands
// with fewer than five cards are completed with the worst possible
// kickers.
func (e *Evaluator) Standard(h card.Hand) PokerRank {
	if h.HasFlush() {
		return PokerRank(e.flushKey(Standard, h))
	}
	return PokerRank(e.rankKey(Standard, h))
}

// SixPlus ranks h for the 36-card short deck. h must not hold Twos
// through Fives.
func (e *Evaluator) SixPlus(h card.Hand) SixPlusRank {
	if h.HasFlush() {
		return SixPlusRank(e.flushKey(SixPlus, h))
	}
	return SixPlusRank(e.rankKey(SixPlus, h))
}

// AceFive ranks h as an ace-to-five low.
func (e *Evaluator) AceFive(h card.Hand) AceFiveRank {
	return AceFiveRank(e.rankKey(AceFive, h))
}

// DeuceSeven ranks h as a deuce-to-seven low. Flushes count against the
// hand, so when a flush is possible but avoidable the best non-flush five
// cards are searched.
func (e *Evaluator) DeuceSeven(h card.Hand) DeuceSevenRank {
	fc := h.FlushCount()
	switch {
	case fc < 5:
		return DeuceSevenRank(e.rankKey(DeuceSeven, h))
	case fc == h.Len():
		return DeuceSevenRank(e.flushKey(DeuceSeven, h))
	}

	var buf [card.MaxHandSize]card.Card
	cards := h.Cards(&buf)
	var idx [5]int
	c := firstCombination(idx[:])

	var best uint16
	for {
		sub := subHand(cards, c)
		if !sub.HasFlush() {
			best = max(best, e.rankKey(DeuceSeven, sub))
		}
		if !nextCombination(c, len(cards)) {
			break
		}
	}
	return DeuceSevenRank(best)
}

// Badugi ranks h by its best subset of cards with distinct ranks and
// distinct suits, aces low.
func (e *Evaluator) Badugi(h card.Hand) BadugiRank {
	return BadugiRank(e.badugiStyle(Badugi, h))
}

// Baduci ranks h like Badugi with aces high.
func (e *Evaluator) Baduci(h card.Hand) BaduciRank {
	return BaduciRank(e.badugiStyle(Baduci, h))
}

// badugiStyle tries subsets from the largest size down and stops at the
// first size with a valid subset. The table maps repeated ranks onto their
// distinct ranks, so only suits need checking here.
func (e *Evaluator) badugiStyle(v Variant, h card.Hand) uint16 {
	var buf [card.MaxHandSize]card.Card
	cards := h.Cards(&buf)

	var best uint16 = 1
	var idx [4]int
	for k := min(len(cards), 4); k >= 1; k-- {
		c := firstCombination(idx[:k])
		for {
			sub := subHand(cards, c)
			if sub.FlushCount() == 1 {
				best = max(best, e.rankKey(v, sub))
			}
			if !nextCombination(c, len(cards)) {
				break
			}
		}
		if best > 1 {
			break
		}
	}
	return best
}

// Omaha ranks the best high hand made of exactly two hole cards and
// exactly three board cards. It returns 0 with fewer than two hole cards
// or fewer than three board cards.
func (e *Evaluator) Omaha(hole, board card.Hand) PokerRank {
	return PokerRank(e.omaha(hole, board, e.standardOrdinal))
}

// OmahaLo ranks the best ace-to-five low made of exactly two hole cards
// and exactly three board cards. Apply LoEight for eight-or-better games.
func (e *Evaluator) OmahaLo(hole, board card.Hand) AceFiveRank {
	return AceFiveRank(e.omaha(hole, board, e.aceFiveOrdinal))
}

func (e *Evaluator) standardOrdinal(h card.Hand) uint16 { return uint16(e.Standard(h)) }
func (e *Evaluator) aceFiveOrdinal(h card.Hand) uint16  { return e.rankKey(AceFive, h) }

func (e *Evaluator) omaha(hole, board card.Hand, rank func(card.Hand) uint16) uint16 {
	if hole.Len() < 2 || board.Len() < 3 {
		return 0
	}
	var hb, bb [card.MaxHandSize]card.Card
	hc := hole.Cards(&hb)
	bc := board.Cards(&bb)

	var best uint16
	for i1 := 0; i1 < len(bc)-2; i1++ {
		for i2 := i1 + 1; i2 < len(bc)-1; i2++ {
			for i3 := i2 + 1; i3 < len(bc); i3++ {
				three := card.NewHand(bc[i1], bc[i2], bc[i3])
				for j1 := 0; j1 < len(hc)-1; j1++ {
					for j2 := j1 + 1; j2 < len(hc); j2++ {
						best = max(best, rank(three.Add(hc[j1]).Add(hc[j2])))
					}
				}
			}
		}
	}
	return best
}

// Rank ranks h under v and returns the raw ordinal with its category.
// Ordinals are only comparable within one variant.
func (e *Evaluator) Rank(v Variant, h card.Hand) (uint16, Category) {
	var r uint16
	switch v {
	case Standard:
		r = uint16(e.Standard(h))
	case AceFive:
		r = uint16(e.AceFive(h))
	case DeuceSeven:
		r = uint16(e.DeuceSeven(h))
	case SixPlus:
		r = uint16(e.SixPlus(h))
	case Badugi:
		r = uint16(e.Badugi(h))
	case Baduci:
		r = uint16(e.Baduci(h))
	default:
		return 0, Ineligible
	}
	return r, CategoryOf(v, r)
}

// Describe returns the human description of ordinal r under v.
func Describe(v Variant, r uint16) string {
	switch v {
	case Standard:
		return PokerRank(r).String()
	case AceFive:
		return AceFiveRank(r).String()
	case DeuceSeven:
		return DeuceSevenRank(r).String()
	case SixPlus:
		return SixPlusRank(r).String()
	case Badugi:
		return BadugiRank(r).String()
	case Baduci:
		return BaduciRank(r).String()
	}
	return Ineligible.String()
}

// firstCombination fills c with 0, 1, ..., len(c)-1.
func firstCombination(c []int) []int {
	for i := range c {
		c[i] = i
	}
	return c
}

// nextCombination advances c to the next k-combination of 0..n-1 in
// lexicographic order. It reports false after the last one.
func nextCombination(c []int, n int) bool {
	k := len(c)
	i := k - 1
	for i >= 0 && c[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	c[i]++
	for j := i + 1; j < k; j++ {
		c[j] = c[j-1] + 1
	}
	return true
}

func subHand(cards []card.Card, c []int) card.Hand {
	var h card.Hand
	for _, i := range c {
		h = h.Add(cards[i])
	}
	return h
}
