// Package card encodes playing cards and hands into the integer keys used
// by the ranking tables.
//
// A Card carries two words. The key adds, per card, one to the suit counter
// at bit 48+4*suit, one to the card counter at bit 32, and the rank
// multiplier of its rank in the low 32 bits. The mask sets bit 16*suit+rank.
// Summing keys and or-ing masks builds a Hand in O(1) per card.
package card

import (
	"fmt"
	"math/bits"

	handerrors "github.com/tamirms/handrank/errors"
)

// Rank is a card rank, Two (0) through Ace (12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

// Suit is a card suit.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of distinct suits.
const NumSuits = 4

const (
	suitsShift = 48
	countShift = 32
)

// rankKeys are multipliers chosen so that every multiset of at most seven
// ranks has a distinct sum.
var rankKeys = [NumRanks]uint32{
	0x2000, 0x8001, 0x11000, 0x3a000, 0x91000, 0x176005, 0x366000, 0x41a013, 0x47802e, 0x479068,
	0x48c0e4, 0x48f211, 0x494493,
}

var (
	rankChars = [NumRanks]byte{'2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}
	suitChars = [NumSuits]byte{'c', 'd', 'h', 's'}

	suitSymbols = [NumSuits]string{"♣", "♦", "♥", "♠"}

	rankNames = [NumRanks]string{
		"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen",
		"King", "Ace",
	}
	pluralNames = [NumRanks]string{
		"Twos", "Threes", "Fours", "Fives", "Sixes", "Sevens", "Eights", "Nines", "Tens", "Jacks",
		"Queens", "Kings", "Aces",
	}
	suitNames = [NumSuits]string{"Clubs", "Diamonds", "Hearts", "Spades"}
)

// Key returns the multiplier rank r contributes to a rank key.
func (r Rank) Key() uint32 { return rankKeys[r] }

// FlushBit returns the bit rank r contributes to a flush key.
func (r Rank) FlushBit() uint16 { return 1 << r }

// String returns the single-character form, e.g. "T".
func (r Rank) String() string {
	if r >= NumRanks {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return string(rankChars[r])
}

// Name returns the English name, e.g. "Ten".
func (r Rank) Name() string { return rankNames[r] }

// Plural returns the English plural, e.g. "Tens".
func (r Rank) Plural() string { return pluralNames[r] }

func (s Suit) String() string {
	if s >= NumSuits {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return string(suitChars[s])
}

// Name returns the English name, e.g. "Hearts".
func (s Suit) Name() string { return suitNames[s] }

// Symbol returns the suit glyph, e.g. "♥".
func (s Suit) Symbol() string { return suitSymbols[s] }

// ParseRank parses a rank character from "23456789TJQKA".
func ParseRank(c byte) (Rank, error) {
	for i, rc := range rankChars {
		if rc == c {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: rank %q", handerrors.ErrMalformedInput, c)
}

// ParseSuit parses a suit character from "cdhs".
func ParseSuit(c byte) (Suit, error) {
	for i, sc := range suitChars {
		if sc == c {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: suit %q", handerrors.ErrMalformedInput, c)
}

// Card is a single playing card.
type Card struct {
	key  uint64
	mask uint64
}

// New returns the card of the given rank and suit.
func New(r Rank, s Suit) Card {
	return Card{
		key:  1<<(4*uint(s)+suitsShift) + 1<<countShift + uint64(rankKeys[r]),
		mask: 1 << (16*uint(s) + uint(r)),
	}
}

// All lists the 52 cards in index order: deuces to aces, clubs to spades
// within a rank.
var All = func() [52]Card {
	var cards [52]Card
	for i := range cards {
		cards[i] = New(Rank(i/NumSuits), Suit(i%NumSuits))
	}
	return cards
}()

// FromIndex returns All[i].
func FromIndex(i int) Card { return All[i] }

// Rank returns the card's rank.
func (c Card) Rank() Rank { return Rank(bits.TrailingZeros64(c.mask) % 16) }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return Suit(bits.TrailingZeros64(c.mask) / 16) }

// Index returns 4*rank+suit, the card's position in All.
func (c Card) Index() int { return NumSuits*int(c.Rank()) + int(c.Suit()) }

// Mask returns the card's single bit at 16*suit+rank.
func (c Card) Mask() uint64 { return c.mask }

// IsZero reports whether c is the zero value rather than a real card.
func (c Card) IsZero() bool { return c.mask == 0 }

// String returns the two-character form, e.g. "Ah".
func (c Card) String() string {
	if c.mask == 0 {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// Pretty returns the card with a suit glyph, e.g. "A♥".
func (c Card) Pretty() string {
	return c.Rank().String() + c.Suit().Symbol()
}

// Parse parses exactly two characters: a rank from "23456789TJQKA" and a
// suit from "cdhs".
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: card %q", handerrors.ErrMalformedInput, s)
	}
	r, err := ParseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	st, err := ParseSuit(s[1])
	if err != nil {
		return Card{}, err
	}
	return New(r, st), nil
}

// MustParse is Parse that panics on error.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
