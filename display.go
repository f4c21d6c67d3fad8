package handrank

import (
	"github.com/tamirms/handrank/card"
)

// highMark is the lowest in-category ordinal whose top card is rank.
type highMark struct {
	worst uint16
	rank  card.Rank
}

var (
	standardHigh = []highMark{
		{785, card.Ace}, {456, card.King}, {247, card.Queen}, {122, card.Jack},
		{53, card.Ten}, {19, card.Nine}, {5, card.Eight}, {1, card.Seven},
	}
	aceFiveHigh = []highMark{
		{1287, card.Five}, {1282, card.Six}, {1267, card.Seven}, {1232, card.Eight},
		{1162, card.Nine}, {1036, card.Ten}, {826, card.Jack}, {496, card.Queen}, {1, card.King},
	}
	deuceSevenHigh = []highMark{
		{1274, card.Seven}, {1260, card.Eight}, {1226, card.Nine}, {1157, card.Ten},
		{1032, card.Jack}, {823, card.Queen}, {494, card.King}, {1, card.Ace},
	}
	sixPlusHigh = []highMark{
		{54, card.Ace}, {19, card.King}, {5, card.Queen}, {1, card.Jack},
	}
)

func topCard(d uint16, marks []highMark) card.Rank {
	for _, m := range marks {
		if d >= m.worst {
			return m.rank
		}
	}
	return marks[len(marks)-1].rank
}

// pokerStyle describes how a five-card variant packs made-hand ranks into
// the low bits of an ordinal.
type pokerStyle struct {
	layout []Category
	high   []highMark
	// rankAt decodes a 4-bit rank field.
	rankAt func(int) card.Rank
	// straightTop decodes a straight's in-category ordinal.
	straightTop func(int) card.Rank
}

var (
	standardStyle = pokerStyle{
		layout:      standardLayout,
		high:        standardHigh,
		rankAt:      func(i int) card.Rank { return card.Rank(i) },
		straightTop: func(d int) card.Rank { return card.Rank(d + 2) },
	}
	sixPlusStyle = pokerStyle{
		layout:      sixPlusLayout,
		high:        sixPlusHigh,
		rankAt:      func(i int) card.Rank { return card.Rank(i) },
		straightTop: func(d int) card.Rank { return card.Rank(d + 6) },
	}
	deuceSevenStyle = pokerStyle{
		layout:      deuceSevenLayout,
		high:        deuceSevenHigh,
		rankAt:      func(i int) card.Rank { return card.Rank(12 - i) },
		straightTop: func(d int) card.Rank { return card.Rank(13 - d) },
	}
	aceFiveStyle = pokerStyle{
		layout: aceFiveLayout,
		high:   aceFiveHigh,
		rankAt: aceLowRank,
	}
)

// aceLowRank maps a worst-first index with the ace last.
func aceLowRank(i int) card.Rank {
	if i == int(card.Ace) {
		return card.Ace
	}
	return card.Rank(11 - i)
}

func (s pokerStyle) describe(r uint16) string {
	c := categoryOf(r, s.layout)
	d := int(r % CategoryOffset)

	switch c {
	case HighCard:
		return c.String() + ", " + topCard(uint16(d), s.high).Name()
	case Flush:
		return c.String() + ", " + topCard(uint16(d), s.high).Name() + "-high"
	case Pair, ThreeOfAKind, FourOfAKind:
		return c.String() + ", " + s.rankAt(d/256).Plural()
	case TwoPair:
		return c.String() + ", " + s.rankAt(d/256).Plural() + " and " + s.rankAt(d%256/16).Plural()
	case FullHouse:
		return c.String() + ", " + s.rankAt(d/256).Plural() + " over " + s.rankAt(d%256/16).Plural()
	case Straight, StraightFlush:
		return c.String() + ", " + s.straightTop(d).Name() + "-high"
	}
	return c.String()
}

// Badugi thresholds per hand size, best first. Position p in a list stands
// for index len-1-p, counted from the worst top card.
var badugiMarks = [4][]uint16{
	nil,
	{78, 76, 73, 69, 64, 58, 51, 43, 34, 24, 13, 1},
	{286, 283, 277, 267, 252, 231, 203, 167, 122, 67, 1},
	{715, 711, 701, 681, 646, 590, 506, 386, 221, 1},
}

func describeBadugi(r uint16, rankAt func(int) card.Rank) string {
	c := categoryOf(r, badugiLayout)
	if c == Ineligible {
		return c.String()
	}
	d := int(r % CategoryOffset)
	size := int(r / CategoryOffset)

	if size == 0 {
		return c.String() + ", " + rankAt(d-1).Name()
	}
	marks := badugiMarks[size]
	i := 0
	for p, m := range marks {
		if uint16(d) >= m {
			i = len(marks) - 1 - p
			break
		}
	}
	return c.String() + ", " + rankAt(i).Name() + "-high"
}

// String describes the hand, e.g. "Full House, Sixes over Kings".
func (r PokerRank) String() string { return standardStyle.describe(uint16(r)) }

// String describes the hand, e.g. "Two Pair, Nines and Fours".
func (r AceFiveRank) String() string { return aceFiveStyle.describe(uint16(r)) }

// String describes the hand, e.g. "Straight Flush, Eight-high".
func (r DeuceSevenRank) String() string { return deuceSevenStyle.describe(uint16(r)) }

// String describes the hand, e.g. "Flush, Queen-high".
func (r SixPlusRank) String() string { return sixPlusStyle.describe(uint16(r)) }

// String describes the hand, e.g. "Four Cards, Six-high".
func (r BadugiRank) String() string { return describeBadugi(uint16(r), aceLowRank) }

// String describes the hand, e.g. "Four Cards, Ace-high".
func (r BaduciRank) String() string {
	return describeBadugi(uint16(r), func(i int) card.Rank { return card.Rank(12 - i) })
}
