package handrank

import (
	"testing"
)

func TestDisplay(t *testing.T) {
	ev := sharedEvaluator(t)

	tests := []struct {
		variant Variant
		hand    string
		want    string
	}{
		{Standard, "9c 6s 5h 4h 2h", "High Card, Nine"},
		{Standard, "6h Ah 6c 9s 8c", "Pair, Sixes"},
		{Standard, "Ah 7c 4s 7d 4h", "Two Pair, Sevens and Fours"},
		{Standard, "Jc Ah Js Kh Jd", "Three of a Kind, Jacks"},
		{Standard, "2c Ah 3s 4h 5d 8s 8d", "Straight, Five-high"},
		{Standard, "9s 7s 4s 3s 2s", "Flush, Nine-high"},
		{Standard, "Ks 6c Kc 6s 6d", "Full House, Sixes over Kings"},
		{Standard, "4c 6h 4s 4d 4h", "Four of a Kind, Fours"},
		{Standard, "9d 8d Jd Td 7d", "Straight Flush, Jack-high"},
		{Standard, "Ah Th Jh Kh Qh Ad", "Royal Flush"},

		{AceFive, "Jh Jc Jd Js 5h", "Four of a Kind, Jacks"},
		{AceFive, "5c As 5d Ah 5s", "Full House, Fives over Aces"},
		{AceFive, "3h 2h Ah Ac Ad", "Three of a Kind, Aces"},
		{AceFive, "4c 9s 9d 4h Ac", "Two Pair, Nines and Fours"},
		{AceFive, "6c As 5d 6h Ac", "Two Pair, Sixes and Aces"},
		{AceFive, "Jc Js Ah Kh Qh", "Pair, Jacks"},
		{AceFive, "Ah 5c 4s 3d 2h", "High Card, Five"},

		{DeuceSeven, "Ts Js Qs Ks As", "Royal Flush"},
		{DeuceSeven, "5c 8c 6c 7c 4c", "Straight Flush, Eight-high"},
		{DeuceSeven, "8c 5s 8d 8h 8s", "Four of a Kind, Eights"},
		{DeuceSeven, "7c 7s Ad Ah 7h", "Full House, Sevens over Aces"},
		{DeuceSeven, "9h 3h 5h 6h 2h", "Flush, Nine-high"},
		{DeuceSeven, "Ac 5s 3d 2h 4h", "Straight, Five-high"},
		{DeuceSeven, "Jc 5h Js 3h Jd", "Three of a Kind, Jacks"},
		{DeuceSeven, "7c 7s 3c 3s Ks", "Two Pair, Sevens and Threes"},
		{DeuceSeven, "5h 5c As 7s 3s", "Pair, Fives"},
		{DeuceSeven, "Jh 7s 5d 4d 2c", "High Card, Jack"},

		{SixPlus, "Js 6c 9h 8d", "High Card, Jack"},
		{SixPlus, "Qc 6h 7c Tc 9c", "High Card, Queen"},
		{SixPlus, "7h 8s 9s 6s 7c", "Pair, Sevens"},
		{SixPlus, "Jc 7c Js 7s As", "Two Pair, Jacks and Sevens"},
		{SixPlus, "Qc As Qd Kh Qh", "Three of a Kind, Queens"},
		{SixPlus, "6h Ac 7s 9c 8c", "Straight, Nine-high"},
		{SixPlus, "8c Qs Qd 8d 8h", "Full House, Eights over Queens"},
		{SixPlus, "Qc 6c 7c Tc 9c", "Flush, Queen-high"},
		{SixPlus, "Tc Ts Ac Td Th", "Four of a Kind, Tens"},
		{SixPlus, "Td 9d 8d 7d 6d", "Straight Flush, Ten-high"},
		{SixPlus, "Qc Jc Ac Kc Tc", "Royal Flush"},

		{Badugi, "6d 8d Jd", "One Card, Six"},
		{Badugi, "Ad Ah Ac As", "One Card, Ace"},
		{Badugi, "Qd Jd 7h 7c", "Two Cards, Jack-high"},
		{Badugi, "7c 6c 7s 6s", "Two Cards, Seven-high"},
		{Badugi, "7c 5s 3c 2s", "Two Cards, Three-high"},
		{Badugi, "Qh Qc 5s 6d", "Three Cards, Queen-high"},
		{Badugi, "8d 6c 4s", "Three Cards, Eight-high"},
		{Badugi, "Kh Qc 4s 3d", "Four Cards, King-high"},
		{Badugi, "7c 8s 6d Th", "Four Cards, Ten-high"},
		{Badugi, "2c 3s 6d 5h", "Four Cards, Six-high"},

		{Baduci, "Ad Ah", "One Card, Ace"},
		{Baduci, "2d 4d 6d", "One Card, Two"},
		{Baduci, "Qd Ad 7h 7d", "Two Cards, Queen-high"},
		{Baduci, "9c 6c 9s 6s", "Two Cards, Nine-high"},
		{Baduci, "7c 6s 3c 9s", "Two Cards, Six-high"},
		{Baduci, "Qh Qc 5s 6d", "Three Cards, Queen-high"},
		{Baduci, "8d 6c 4s", "Three Cards, Eight-high"},
		{Baduci, "Kh Qc As 3d", "Four Cards, Ace-high"},
		{Baduci, "3s 9d 5c Th", "Four Cards, Ten-high"},
		{Baduci, "3c 2s 5h 4d", "Four Cards, Five-high"},
	}

	for _, tt := range tests {
		r, _ := ev.Rank(tt.variant, mustHand(t, tt.hand))
		if got := Describe(tt.variant, r); got != tt.want {
			t.Errorf("%s %q: got %q, want %q", tt.variant, tt.hand, got, tt.want)
		}
	}
}

func TestDisplayStringers(t *testing.T) {
	ev := sharedEvaluator(t)
	h := mustHand(t, "Ks 6c Kc 6s 6d")
	if got, want := ev.Standard(h).String(), "Full House, Sixes over Kings"; got != want {
		t.Errorf("PokerRank.String() = %q, want %q", got, want)
	}
	if got, want := ev.AceFive(h).String(), "Full House, Sixes over Kings"; got != want {
		t.Errorf("AceFiveRank.String() = %q, want %q", got, want)
	}
	if got, want := ev.Baduci(mustHand(t, "Kh Qc As 3d")).String(), "Four Cards, Ace-high"; got != want {
		t.Errorf("BaduciRank.String() = %q, want %q", got, want)
	}
}

func TestDisplayIneligible(t *testing.T) {
	for _, v := range Variants {
		if got := Describe(v, 0); got != "Ineligible" {
			t.Errorf("Describe(%s, 0) = %q", v, got)
		}
	}
	if got := Describe(Variant(numVariants), 1); got != "Ineligible" {
		t.Errorf("Describe(unknown) = %q", got)
	}
}
