package enumerate

import (
	"slices"

	"github.com/tamirms/handrank/internal/bits"
)

// Rules drives the class search.
//
// The search is a depth-first walk that adds one card of a new rank at a
// time, taking ranks from Ranks by index. In the default (lowball) order a
// frame at index bound may add any rank at an index below bound; with
// Ascending it may add any rank at an index at or above bound. Patterns are
// emitted as classes in the order they are popped.
type Rules struct {
	// Ranks lists the ranks that may be added, in search order.
	Ranks []int
	// Size is the number of cards in a complete hand.
	Size int
	// MaxStraight rejects patterns whose BiggestStraight exceeds it.
	MaxStraight int
	// NoShortWheel rejects patterns containing A-6-7-8-9.
	NoShortWheel bool
	// Ascending switches to the upward rank walk.
	Ascending bool
	// Reverse flips the class order before partial hands are attached.
	Reverse bool
}

// Classes walks all completions of start under r. Every complete hand
// becomes a singleton class. Every incomplete pattern with at least
// minSize cards is then appended to the first class whose complete hand
// contains it.
func Classes(start uint64, minSize int, r Rules) [][]uint64 {
	type frame struct {
		p     uint64
		bound int
	}
	var (
		classes  [][]uint64
		partials []uint64
		seen     = make(map[uint64]struct{})
	)
	initial := len(r.Ranks)
	if r.Ascending {
		initial = 0
	}
	stack := []frame{{start, initial}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := Size(f.p)
		if n == r.Size {
			classes = append(classes, []uint64{f.p})
			continue
		}
		if n >= minSize {
			if _, ok := seen[f.p]; !ok {
				seen[f.p] = struct{}{}
				partials = append(partials, f.p)
			}
		}

		lo, hi := 0, f.bound
		if r.Ascending {
			lo, hi = f.bound, len(r.Ranks)
		}
		for i := lo; i < hi; i++ {
			rank := r.Ranks[i]
			np := f.p + 1<<(4*rank)
			if bits.Nibble(np, rank) >= 2 {
				continue
			}
			if BiggestStraight(np) > r.MaxStraight {
				continue
			}
			if r.NoShortWheel && np&ShortWheel == ShortWheel {
				continue
			}
			stack = append(stack, frame{np, i + 1})
		}
	}

	if r.Reverse {
		slices.Reverse(classes)
	}
	attachPartials(classes, partials)
	return classes
}

// attachPartials appends each partial pattern to the first class whose
// complete hand is a bitwise superset of it. A partial that no class
// covers is dropped.
func attachPartials(classes [][]uint64, partials []uint64) {
	for _, p := range partials {
		for i, class := range classes {
			if class[0]&p == p {
				classes[i] = append(class, p)
				break
			}
		}
	}
}

// Dedupe clamps every rank count in p to one.
func Dedupe(p uint64) uint64 { return bits.Presence(p) }
