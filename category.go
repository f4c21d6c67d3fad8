package handrank

import (
	"fmt"

	"github.com/tamirms/handrank/internal/tables"
)

// CategoryOffset is the ordinal distance between two hand categories.
// The category of an ordinal r is recovered from r / CategoryOffset
// through a per-variant layout.
const CategoryOffset = tables.CategoryOffset

// Category is a coarse hand class.
type Category uint8

const (
	Ineligible Category = iota
	HighCard
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	OneCard
	TwoCards
	ThreeCards
	FourCards

	numCategories
)

var categoryNames = [numCategories]string{
	"Ineligible", "High Card", "Pair", "Two Pair", "Three of a Kind", "Straight", "Flush",
	"Full House", "Four of a Kind", "Straight Flush", "Royal Flush",
	"One Card", "Two Cards", "Three Cards", "Four Cards",
}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Per-variant category order, weakest block first. Block i holds the
// ordinals [i*CategoryOffset, (i+1)*CategoryOffset).
var (
	standardLayout   = []Category{HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush}
	sixPlusLayout    = []Category{HighCard, Pair, TwoPair, ThreeOfAKind, Straight, FullHouse, Flush, FourOfAKind, StraightFlush, RoyalFlush}
	aceFiveLayout    = []Category{FourOfAKind, FullHouse, ThreeOfAKind, TwoPair, Pair, HighCard}
	deuceSevenLayout = []Category{RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush, Straight, ThreeOfAKind, TwoPair, Pair, HighCard}
	badugiLayout     = []Category{OneCard, TwoCards, ThreeCards, FourCards}
)

var layouts = [numVariants][]Category{
	Standard:   standardLayout,
	AceFive:    aceFiveLayout,
	DeuceSeven: deuceSevenLayout,
	SixPlus:    sixPlusLayout,
	Badugi:     badugiLayout,
	Baduci:     badugiLayout,
}

// categoryOf maps an ordinal through layout. Ordinal 0 is Ineligible.
func categoryOf(r uint16, layout []Category) Category {
	if r == 0 {
		return Ineligible
	}
	i := int(r) / CategoryOffset
	if i >= len(layout) {
		return Ineligible
	}
	return layout[i]
}

// CategoryOf returns the category of ordinal r under variant v.
func CategoryOf(v Variant, r uint16) Category {
	if int(v) >= numVariants {
		return Ineligible
	}
	return categoryOf(r, layouts[v])
}
