package handrank

// Rank values are ordinals: a larger value is a better hand under the
// variant's rules, equal values tie. Values of different types are not
// comparable. The zero value is Ineligible.

// PokerRank is a standard high-hand rank.
type PokerRank uint16

// AceFiveRank is an ace-to-five lowball rank.
type AceFiveRank uint16

// DeuceSevenRank is a deuce-to-seven lowball rank.
type DeuceSevenRank uint16

// SixPlusRank is a short-deck rank.
type SixPlusRank uint16

// BadugiRank is a Badugi rank.
type BadugiRank uint16

// BaduciRank is a Baduci rank.
type BaduciRank uint16

// Worst qualifying lows for eight-or-better split games.
const (
	worstAceFiveEight    = 21712
	worstDeuceSevenEight = 38124
)

func (r PokerRank) Category() Category      { return categoryOf(uint16(r), standardLayout) }
func (r AceFiveRank) Category() Category    { return categoryOf(uint16(r), aceFiveLayout) }
func (r DeuceSevenRank) Category() Category { return categoryOf(uint16(r), deuceSevenLayout) }
func (r SixPlusRank) Category() Category    { return categoryOf(uint16(r), sixPlusLayout) }
func (r BadugiRank) Category() Category     { return categoryOf(uint16(r), badugiLayout) }
func (r BaduciRank) Category() Category     { return categoryOf(uint16(r), badugiLayout) }

// LoEight returns r if it is an eight-high low or better, otherwise 0.
func (r AceFiveRank) LoEight() AceFiveRank {
	if r >= worstAceFiveEight {
		return r
	}
	return 0
}

// LoEight returns r if it is an eight-high low or better, otherwise 0.
func (r DeuceSevenRank) LoEight() DeuceSevenRank {
	if r >= worstDeuceSevenEight {
		return r
	}
	return 0
}
