package card

import (
	"fmt"
	"math/bits"
	"strings"

	handerrors "github.com/tamirms/handrank/errors"
)

// MaxHandSize is the largest number of cards a Hand may hold.
const MaxHandSize = 7

const (
	// suitBias starts every suit counter at 3 so that a counter reaching 5
	// sets its top bit.
	suitBias = 0x3333 << suitsShift

	flushCheckMask64 = 0x8888 << suitsShift
	flushCheckMask32 = 0x8888 << (suitsShift - countShift)

	sixPlusExcluded = 0x000f_000f_000f_000f
)

// Hand is a set of up to seven cards. The zero value is the empty hand.
//
// Hands are plain values: adding a card returns a new Hand. Adding a card
// the hand already holds, or an eighth card, corrupts the counters; use
// ParseHand or Contains to guard untrusted input.
type Hand struct {
	key  uint64 // unbiased sum of card keys
	mask uint64
}

// NewHand returns the hand holding cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h = h.Add(c)
	}
	return h
}

// Add returns h with c inserted. c must not already be in h.
func (h Hand) Add(c Card) Hand {
	return Hand{key: h.key + c.key, mask: h.mask | c.mask}
}

// Union returns the hand holding the cards of both h and o. The two hands
// must be disjoint.
func (h Hand) Union(o Hand) Hand {
	return Hand{key: h.key + o.key, mask: h.mask | o.mask}
}

// Key returns the biased 64-bit key: suit counters in bits 48-63 (each
// starting at 3), the card count in bits 32-35, and the rank key below.
func (h Hand) Key() uint64 { return h.key + suitBias }

// Mask returns the 52-bit card mask with bit 16*suit+rank per card.
func (h Hand) Mask() uint64 { return h.mask }

// Len returns the number of cards.
func (h Hand) Len() int { return int((h.key >> countShift) & 0xf) }

// IsEmpty reports whether h holds no cards.
func (h Hand) IsEmpty() bool { return h.mask == 0 }

// Contains reports whether c is in h.
func (h Hand) Contains(c Card) bool { return h.mask&c.mask != 0 }

// ContainsAll reports whether every card of o is in h.
func (h Hand) ContainsAll(o Hand) bool { return h.mask&o.mask == o.mask }

// IsDisjoint reports whether h and o share no card.
func (h Hand) IsDisjoint(o Hand) bool { return h.mask&o.mask == 0 }

// FlushCount returns the number of cards in the most common suit.
func (h Hand) FlushCount() int {
	counters := h.key >> suitsShift
	best := uint64(0)
	for s := range NumSuits {
		best = max(best, (counters>>(4*s))&0xf)
	}
	return int(best)
}

// HasFlush reports whether five or more cards share a suit.
func (h Hand) HasFlush() bool { return h.Key()&flushCheckMask64 != 0 }

// RankKey returns the rank-multiset key, identical for any two hands with
// the same ranks in the same multiplicities.
func (h Hand) RankKey() uint32 { return uint32(h.key) }

// FlushKey returns the 13-bit rank set of the flushing suit. It is only
// meaningful when HasFlush is true.
func (h Hand) FlushKey() uint16 {
	fc := uint32(h.Key()>>countShift) & flushCheckMask32
	if fc == 0 {
		return 0
	}
	shift := 48 - 4*bits.LeadingZeros32(fc)
	return uint16(h.mask >> shift)
}

// IsSixPlus reports whether h holds no Two through Five.
func (h Hand) IsSixPlus() bool { return h.mask&sixPlusExcluded == 0 }

// CanonicalKey returns a key shared by exactly the hands that differ only
// by a permutation of suits.
func (h Hand) CanonicalKey() uint64 {
	arr := [4]uint64{
		(h.mask >> 48) & 0x1fff,
		(h.mask >> 32) & 0x1fff,
		(h.mask >> 16) & 0x1fff,
		h.mask & 0x1fff,
	}
	// five-comparator sorting network
	if arr[0] > arr[2] {
		arr[0], arr[2] = arr[2], arr[0]
	}
	if arr[1] > arr[3] {
		arr[1], arr[3] = arr[3], arr[1]
	}
	if arr[0] > arr[1] {
		arr[0], arr[1] = arr[1], arr[0]
	}
	if arr[2] > arr[3] {
		arr[2], arr[3] = arr[3], arr[2]
	}
	if arr[1] > arr[2] {
		arr[1], arr[2] = arr[2], arr[1]
	}
	return arr[3]<<48 | arr[2]<<32 | arr[1]<<16 | arr[0]
}

// Cards copies the cards of h into buf in index order and returns the
// filled prefix.
func (h Hand) Cards(buf *[MaxHandSize]Card) []Card {
	n := 0
	for r := range NumRanks {
		for s := range NumSuits {
			if h.mask&(1<<(16*s+r)) != 0 && n < MaxHandSize {
				buf[n] = New(Rank(r), Suit(s))
				n++
			}
		}
	}
	return buf[:n]
}

// String lists the cards in index order separated by spaces.
func (h Hand) String() string {
	var buf [MaxHandSize]Card
	cards := h.Cards(&buf)
	var sb strings.Builder
	for i, c := range cards {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParseHand parses cards separated by single spaces, e.g. "Ah Kd 5s".
// A blank string is the empty hand. Duplicates and more than seven cards
// are rejected.
func ParseHand(s string) (Hand, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Hand{}, nil
	}
	var h Hand
	n := 0
	for tok := range strings.SplitSeq(s, " ") {
		c, err := Parse(tok)
		if err != nil {
			return Hand{}, err
		}
		if h.Contains(c) {
			return Hand{}, fmt.Errorf("%w: duplicate card %s in %q", handerrors.ErrMalformedInput, c, s)
		}
		if n == MaxHandSize {
			return Hand{}, fmt.Errorf("%w: more than %d cards in %q", handerrors.ErrMalformedInput, MaxHandSize, s)
		}
		h = h.Add(c)
		n++
	}
	return h, nil
}

// MustParseHand is ParseHand that panics on error.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}
