package tables

import (
	"fmt"

	handerrors "github.com/tamirms/handrank/errors"
	"github.com/tamirms/handrank/internal/enumerate"
)

// Badugi builds the Badugi table. Aces are low, so Kings are the worst
// card. Four-card hands beat three-card hands, and so on down.
func Badugi() (Set, error) {
	return buildBadugi("badugi", []int{12, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
}

// Baduci builds the Baduci table, which is Badugi with aces high.
func Baduci() (Set, error) {
	return buildBadugi("baduci", twoToAce)
}

// buildBadugi ranks every set of one to four distinct ranks worst-first
// within its size, then maps hands with repeated ranks onto their distinct
// ranks. Suits are checked at query time.
func buildBadugi(name string, order []int) (Set, error) {
	s := Set{Ranks: Table{}}
	rules := enumerate.Rules{Ranks: order, MaxStraight: len(order)}
	for k := 1; k <= 4; k++ {
		rules.Size = k
		insert(s.Ranks, enumerate.Classes(0, k, rules), enumerate.RankKey, uint16((k-1)*CategoryOffset))
	}

	for _, p := range enumerate.AllPatterns(2, 4) {
		d := enumerate.Dedupe(p)
		if d == p {
			continue
		}
		v, ok := s.Ranks[enumerate.RankKey(d)]
		if !ok {
			return Set{}, fmt.Errorf("%w: %s pattern %#x has no distinct-rank entry", handerrors.ErrTableInconsistent, name, p)
		}
		s.Ranks[enumerate.RankKey(p)] = v
	}
	if err := checkSize(name+" ranks", s.Ranks, BadugiSize); err != nil {
		return Set{}, err
	}
	return s, nil
}
