package handrank

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/tamirms/handrank/card"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns a generator seeded from the test name, so every test
// draws its own reproducible sequence.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	var s1, s2 uint64
	for i := range 8 {
		s1 = s1<<8 | uint64(sum[i])
		s2 = s2<<8 | uint64(sum[8+i])
	}
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

var (
	sharedOnce sync.Once
	sharedEval *Evaluator
	sharedErr  error
)

// sharedEvaluator builds the tables once per test binary.
func sharedEvaluator(t testing.TB) *Evaluator {
	t.Helper()
	sharedOnce.Do(func() {
		sharedEval, sharedErr = Build(context.Background())
	})
	if sharedErr != nil {
		t.Fatalf("Build: %v", sharedErr)
	}
	return sharedEval
}

// randomHand deals n distinct cards from the full deck, or from the
// 36-card deck of Sixes and up.
func randomHand(rng *rand.Rand, n int, sixPlus bool) card.Hand {
	lo := 0
	if sixPlus {
		lo = 4 * int(card.Six)
	}
	perm := rng.Perm(52 - lo)
	var h card.Hand
	for _, i := range perm[:n] {
		h = h.Add(card.FromIndex(lo + i))
	}
	return h
}

func mustHand(t testing.TB, s string) card.Hand {
	t.Helper()
	h, err := card.ParseHand(s)
	if err != nil {
		t.Fatalf("ParseHand(%q): %v", s, err)
	}
	return h
}

func mustHands(t testing.TB, ss []string) []card.Hand {
	t.Helper()
	hs := make([]card.Hand, len(ss))
	for i, s := range ss {
		hs[i] = mustHand(t, s)
	}
	return hs
}
