// Package deck deals cards in a reproducible random order.
//
// A Deck is seeded explicitly, so a simulation can be replayed from its
// seed. Phrases such as a hand history ID can be turned into seeds with
// SeedFromPhrase.
package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/spaolacci/murmur3"

	"github.com/tamirms/handrank/card"
	handerrors "github.com/tamirms/handrank/errors"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

const fullSize = 52

// Deck is a shuffled collection of distinct cards. Cards are drawn with a
// partial Fisher-Yates shuffle, so dealing k cards costs O(k).
//
// A Deck is not safe for concurrent use.
type Deck struct {
	cards [fullSize]card.Card
	idx   int // next card to deal
	end   int // number of cards in the deck
	rng   *rand.Rand
}

// New returns a deck holding cards. Duplicate cards are rejected.
func New(seed uint64, cards ...card.Card) (*Deck, error) {
	if len(cards) > fullSize {
		return nil, fmt.Errorf("%w: %d cards do not fit in a deck", handerrors.ErrMalformedInput, len(cards))
	}
	d := &Deck{rng: newRand(seed), end: len(cards)}
	var seen card.Hand
	for i, c := range cards {
		if seen.Contains(c) {
			return nil, fmt.Errorf("%w: duplicate card %s", handerrors.ErrMalformedInput, c)
		}
		seen = seen.Add(c)
		d.cards[i] = c
	}
	return d, nil
}

// NewFull returns a 52-card deck.
func NewFull(seed uint64) *Deck {
	return &Deck{rng: newRand(seed), end: fullSize, cards: card.All}
}

// NewShort returns the 36-card six-plus deck, Sixes through Aces.
func NewShort(seed uint64) *Deck {
	d := &Deck{rng: newRand(seed), end: fullSize - 4*int(card.Six)}
	copy(d.cards[:], card.All[4*int(card.Six):])
	return d
}

// Deal draws n cards. The returned slice aliases the deck and stays valid
// until the next Reset.
func (d *Deck) Deal(n int) ([]card.Card, error) {
	if n < 0 || n > d.Len() {
		return nil, fmt.Errorf("%w: want %d, have %d", handerrors.ErrNotEnoughCards, n, d.Len())
	}
	for i := d.idx; i < d.idx+n; i++ {
		j := i + d.rng.IntN(d.end-i)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	dealt := d.cards[d.idx : d.idx+n : d.idx+n]
	d.idx += n
	return dealt, nil
}

// DealHand draws n cards as a Hand. n must not exceed card.MaxHandSize.
func (d *Deck) DealHand(n int) (card.Hand, error) {
	if n > card.MaxHandSize {
		return card.Hand{}, fmt.Errorf("%w: a hand holds at most %d cards", handerrors.ErrMalformedInput, card.MaxHandSize)
	}
	cards, err := d.Deal(n)
	if err != nil {
		return card.Hand{}, err
	}
	return card.NewHand(cards...), nil
}

// Len returns the number of cards left to deal.
func (d *Deck) Len() int { return d.end - d.idx }

// Reset returns every dealt card to the deck. The next deal continues the
// random stream, so it is shuffled differently.
func (d *Deck) Reset() { d.idx = 0 }

// SeedFromPhrase derives a seed from a string.
func SeedFromPhrase(phrase string) uint64 {
	return murmur3.Sum64([]byte(phrase))
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(mix(seed), mix(seed+goldenRatio64)))
}

// mix is the SplitMix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
