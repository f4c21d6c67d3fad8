package handrank

import (
	"errors"
	"testing"

	handerrors "github.com/tamirms/handrank/errors"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"standard", Standard},
		{"Holdem", Standard},
		{"ace-five", AceFive},
		{"razz", AceFive},
		{" 2-7 ", DeuceSeven},
		{"deuce-seven", DeuceSeven},
		{"6+", SixPlus},
		{"short-deck", SixPlus},
		{"BADUGI", Badugi},
		{"baduci", Baduci},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if err != nil {
			t.Errorf("ParseVariant(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVariant(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, v := range Variants {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %s, %v", v.String(), got, err)
		}
	}

	if _, err := ParseVariant("stud"); !errors.Is(err, handerrors.ErrMalformedInput) {
		t.Errorf("ParseVariant(stud) = %v, want ErrMalformedInput", err)
	}
}

func TestTableIDs(t *testing.T) {
	if len(allTables) != 9 {
		t.Fatalf("%d tables, want 9", len(allTables))
	}
	seen := make(map[TableID]bool)
	for _, id := range allTables {
		if !id.valid() {
			t.Errorf("%s is not valid", id)
		}
		if seen[id] {
			t.Errorf("%s listed twice", id)
		}
		seen[id] = true
		if tableID(id.Variant(), id.Kind()) != id {
			t.Errorf("%s does not round-trip", id)
		}
	}
	for _, id := range []TableID{tableID(AceFive, FlushTable), tableID(Badugi, FlushTable), tableID(Baduci, FlushTable), numTableIDs} {
		if id.valid() {
			t.Errorf("%d should not be valid", id)
		}
	}
	if got := tableID(DeuceSeven, FlushTable).String(); got != "deuce-seven/flush" {
		t.Errorf("String() = %q", got)
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		v    Variant
		r    uint16
		want Category
	}{
		{Standard, 0, Ineligible},
		{Standard, 1, HighCard},
		{Standard, 5*CategoryOffset + 1, Flush},
		{Standard, 9*CategoryOffset + 1, RoyalFlush},
		{Standard, 10 * CategoryOffset, Ineligible},
		{SixPlus, 5*CategoryOffset + 1, FullHouse},
		{SixPlus, 6*CategoryOffset + 1, Flush},
		{AceFive, 1, FourOfAKind},
		{AceFive, 5*CategoryOffset + 1287, HighCard},
		{DeuceSeven, 1, RoyalFlush},
		{DeuceSeven, 9*CategoryOffset + 1277, HighCard},
		{Badugi, 1, OneCard},
		{Baduci, 3*CategoryOffset + 715, FourCards},
		{Variant(numVariants), 1, Ineligible},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.v, tt.r); got != tt.want {
			t.Errorf("CategoryOf(%s, %#x) = %s, want %s", tt.v, tt.r, got, tt.want)
		}
	}
	if got := Category(200).String(); got != "Category(200)" {
		t.Errorf("unknown category String() = %q", got)
	}
}
