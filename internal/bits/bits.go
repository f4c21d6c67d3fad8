// Package bits provides nibble arithmetic over rank-count patterns.
//
// A pattern packs thirteen 4-bit counters into a uint64; nibble r holds how
// many cards of rank r (Two = 0 ... Ace = 12) the pattern contains.
package bits

import "math/bits"

const (
	lowNibbles  = 0x1_1111_1111_1111
	byteNibbles = 0x0f0f_0f0f_0f0f_0f0f
)

// Nibble returns counter r of pattern p.
func Nibble(p uint64, r int) uint64 {
	return (p >> (4 * r)) & 0xf
}

// SetNibble returns p with counter r replaced by v.
func SetNibble(p uint64, r int, v uint64) uint64 {
	old := Nibble(p, r)
	return p ^ ((old ^ v) << (4 * r))
}

// NibbleSum returns the total of all counters, i.e. the number of cards.
// Counters must not exceed 8 so that byte lanes cannot overflow.
func NibbleSum(p uint64) int {
	x := (p & byteNibbles) + ((p >> 4) & byteNibbles)
	return int((x * 0x0101_0101_0101_0101) >> 56)
}

// Presence clamps every counter to at most one.
func Presence(p uint64) uint64 {
	x := p | (p >> 1) | (p >> 2) | (p >> 3)
	return x & lowNibbles
}

// Fold is Presence for patterns whose counters never exceed 4.
func Fold(p uint64) uint64 {
	return (p & lowNibbles) | ((p & (lowNibbles << 1)) >> 1) | ((p & (lowNibbles << 2)) >> 2)
}

// AllSingles reports whether no counter exceeds one.
func AllSingles(p uint64) bool {
	return p&^lowNibbles == 0
}

// Distinct returns the number of non-zero counters.
func Distinct(p uint64) int {
	return bits.OnesCount64(Presence(p))
}
