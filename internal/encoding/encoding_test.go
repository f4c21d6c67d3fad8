package encoding

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
	"unsafe"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

func TestUint32sRoundTrip(t *testing.T) {
	rng := newTestRNG(t)
	src := make([]uint32, 1000)
	for i := range src {
		src[i] = rng.Uint32()
	}
	// offset 0 is aligned, offset 1 forces the copying path
	for _, off := range []int{0, 1} {
		buf := make([]byte, 4*len(src)+8)
		region := buf[off : off+4*len(src)]
		if n := PutUint32s(region, src); n != len(region) {
			t.Fatalf("offset %d: wrote %d bytes, want %d", off, n, len(region))
		}
		got := Uint32s(region)
		if len(got) != len(src) {
			t.Fatalf("offset %d: got %d values, want %d", off, len(got), len(src))
		}
		for i := range src {
			if got[i] != src[i] {
				t.Fatalf("offset %d: value %d = %#x, want %#x", off, i, got[i], src[i])
			}
		}
	}
}

func TestUint16sRoundTrip(t *testing.T) {
	rng := newTestRNG(t)
	src := make([]uint16, 777)
	for i := range src {
		src[i] = uint16(rng.Uint32())
	}
	for _, off := range []int{0, 1} {
		buf := make([]byte, 2*len(src)+8)
		region := buf[off : off+2*len(src)]
		PutUint16s(region, src)
		got := Uint16s(region)
		for i := range src {
			if got[i] != src[i] {
				t.Fatalf("offset %d: value %d = %#x, want %#x", off, i, got[i], src[i])
			}
		}
	}
}

// TestViewAliases checks that an aligned view reads later writes to the
// underlying bytes.
func TestViewAliases(t *testing.T) {
	backing := make([]uint64, 4) // 8-byte aligned
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), 32)
	view := Uint16s(bytes)
	binary.LittleEndian.PutUint16(bytes[6:], 0xbeef)
	if view[3] != 0xbeef {
		t.Fatalf("view[3] = %#x, want 0xbeef", view[3])
	}
}

func TestEmpty(t *testing.T) {
	if Uint32s(nil) != nil || Uint16s([]byte{1}) != nil {
		t.Fatal("short regions should give nil views")
	}
}

func TestAlign8(t *testing.T) {
	for _, tc := range []struct{ in, want uint64 }{{0, 0}, {1, 8}, {8, 8}, {9, 16}, {63, 64}} {
		if got := Align8(tc.in); got != tc.want {
			t.Errorf("Align8(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
