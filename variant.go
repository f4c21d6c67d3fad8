package handrank

import (
	"fmt"
	"strings"

	handerrors "github.com/tamirms/handrank/errors"
)

// Variant selects a set of ranking rules.
type Variant uint8

const (
	// Standard is high-hand poker: Hold'em, Stud, Omaha high.
	Standard Variant = iota
	// AceFive is ace-to-five lowball. Straights and flushes do not count.
	AceFive
	// DeuceSeven is deuce-to-seven lowball. Aces are high and straights and
	// flushes count against the hand.
	DeuceSeven
	// SixPlus is short-deck poker with Twos through Fives removed. Flushes
	// beat full houses.
	SixPlus
	// Badugi ranks the best set of cards with distinct ranks and suits,
	// aces low.
	Badugi
	// Baduci is Badugi with aces high.
	Baduci

	numVariants = 6
)

// Variants lists every variant in table order.
var Variants = [numVariants]Variant{Standard, AceFive, DeuceSeven, SixPlus, Badugi, Baduci}

var variantNames = [numVariants]string{"standard", "ace-five", "deuce-seven", "six-plus", "badugi", "baduci"}

// String returns the variant's canonical name, as accepted by ParseVariant.
func (v Variant) String() string {
	if int(v) < numVariants {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// HasFlushTable reports whether the variant keeps a separate flush table.
func (v Variant) HasFlushTable() bool {
	return v == Standard || v == DeuceSeven || v == SixPlus
}

// ParseVariant accepts a canonical variant name or a common alias.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "holdem", "high":
		return Standard, nil
	case "ace-five", "a5", "a-5", "razz":
		return AceFive, nil
	case "deuce-seven", "27", "2-7":
		return DeuceSeven, nil
	case "six-plus", "6+", "short-deck", "shortdeck":
		return SixPlus, nil
	case "badugi":
		return Badugi, nil
	case "baduci":
		return Baduci, nil
	}
	return 0, fmt.Errorf("%w: unknown variant %q", handerrors.ErrMalformedInput, s)
}

// TableKind tells the two lookup tables of a variant apart.
type TableKind uint8

const (
	// RanksTable is keyed by the suit-agnostic rank key.
	RanksTable TableKind = iota
	// FlushTable is keyed by the ranks present in the flush suit.
	FlushTable
)

func (k TableKind) String() string {
	if k == FlushTable {
		return "flush"
	}
	return "ranks"
}

// TableID names one table: variant<<1 | kind.
type TableID uint16

// numTableIDs bounds TableID values, including the unused flush slots of
// AceFive, Badugi and Baduci.
const numTableIDs = 2 * numVariants

func tableID(v Variant, k TableKind) TableID { return TableID(v)<<1 | TableID(k) }

// Variant returns the variant the table belongs to.
func (id TableID) Variant() Variant { return Variant(id >> 1) }

// Kind returns the table kind.
func (id TableID) Kind() TableKind { return TableKind(id & 1) }

func (id TableID) String() string { return id.Variant().String() + "/" + id.Kind().String() }

func (id TableID) valid() bool {
	if int(id) >= numTableIDs {
		return false
	}
	return id.Kind() == RanksTable || id.Variant().HasFlushTable()
}

// allTables lists the nine tables a complete Evaluator holds.
var allTables = func() []TableID {
	var ids []TableID
	for _, v := range Variants {
		ids = append(ids, tableID(v, RanksTable))
		if v.HasFlushTable() {
			ids = append(ids, tableID(v, FlushTable))
		}
	}
	return ids
}()
