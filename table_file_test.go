package handrank

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamirms/handrank/card"
	handerrors "github.com/tamirms/handrank/errors"
	"github.com/tamirms/handrank/internal/encoding"
	"github.com/tamirms/handrank/internal/tables"
)

// expectedKeys is the key count of every table, in allTables order.
var expectedKeys = map[TableID]int{
	tableID(Standard, RanksTable):   tables.PokerRanksSize,
	tableID(Standard, FlushTable):   tables.PokerFlushSize,
	tableID(AceFive, RanksTable):    tables.PokerRanksSize,
	tableID(DeuceSeven, RanksTable): tables.PokerRanksSize,
	tableID(DeuceSeven, FlushTable): tables.PokerFlushSize,
	tableID(SixPlus, RanksTable):    tables.SixPlusRanksSize,
	tableID(SixPlus, FlushTable):    tables.SixPlusFlushSize,
	tableID(Badugi, RanksTable):     tables.BadugiSize,
	tableID(Baduci, RanksTable):     tables.BadugiSize,
}

// assertSameRanks compares two evaluators on random hands of every size.
func assertSameRanks(t *testing.T, want, got *Evaluator) {
	t.Helper()
	rng := newTestRNG(t)
	for range 2000 {
		n := rng.IntN(card.MaxHandSize + 1)
		for _, v := range Variants {
			h := randomHand(rng, n, v == SixPlus)
			r1, _ := want.Rank(v, h)
			r2, _ := got.Rank(v, h)
			require.Equalf(t, r1, r2, "%s %s", v, h)
		}
		hole, board := randomHand(rng, 4, false), randomHand(rng, 5, false)
		if hole.IsDisjoint(board) {
			require.Equal(t, want.Omaha(hole, board), got.Omaha(hole, board))
			require.Equal(t, want.OmahaLo(hole, board), got.OmahaLo(hole, board))
		}
	}
}

func marshalShared(t *testing.T) []byte {
	t.Helper()
	data, err := sharedEvaluator(t).MarshalBinary()
	require.NoError(t, err)
	return data
}

func TestWriteFileOpenRoundTrip(t *testing.T) {
	ev := sharedEvaluator(t)
	path := filepath.Join(t.TempDir(), "tables.hrnk")
	require.NoError(t, ev.WriteFile(path))

	opened, err := Open(path)
	require.NoError(t, err)
	defer opened.Close()

	require.NoError(t, opened.Verify())
	assertSameRanks(t, ev, opened)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	st := opened.Stats()
	assert.Equal(t, fi.Size(), st.FileSize)
	require.Len(t, st.Tables, len(allTables))
	for i, ts := range st.Tables {
		assert.Equal(t, allTables[i], ts.ID)
		assert.Equal(t, expectedKeys[ts.ID], ts.NumKeys, ts.ID.String())
		assert.Equal(t, ev.stats[i].NumSlots, ts.NumSlots)
		assert.Equal(t, ev.stats[i].SizeBytes, ts.SizeBytes)
	}
	assert.Equal(t, ev.Stats().TotalKeys, st.TotalKeys)
}

func TestWriteFileMatchesMarshalBinary(t *testing.T) {
	ev := sharedEvaluator(t)
	path := filepath.Join(t.TempDir(), "tables.hrnk")
	require.NoError(t, ev.WriteFile(path))

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, marshalShared(t), onDisk)
}

func TestOpenBytes(t *testing.T) {
	ev := sharedEvaluator(t)
	data := marshalShared(t)
	assert.Zero(t, len(data)%8)

	opened, err := OpenBytes(data)
	require.NoError(t, err)
	require.NoError(t, opened.Verify())
	assertSameRanks(t, ev, opened)
	require.NoError(t, opened.Close())
}

func TestOpenFileKeepsMappingAfterFileClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.hrnk")
	require.NoError(t, os.WriteFile(path, marshalShared(t), 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	opened, err := OpenFile(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	defer opened.Close()

	r := opened.Standard(card.MustParseHand("Ah Kh Qh Jh Th"))
	assert.Equal(t, RoyalFlush, r.Category())
}

func TestCorruptedTableFile(t *testing.T) {
	data := marshalShared(t)
	dataStart := int(encoding.Align8(headerSize + dirEntrySize*uint64(len(allTables))))
	entry := func(i int) int { return headerSize + i*dirEntrySize }

	tests := []struct {
		name string
		// corrupt mutates a private copy of the file and may return a
		// shorter slice.
		corrupt func(b []byte) []byte
		// openErr is the error OpenBytes should fail with, or nil if the
		// damage is only visible to Verify.
		openErr error
	}{
		{
			name:    "magic",
			corrupt: func(b []byte) []byte { b[0] ^= 0xff; return b },
			openErr: handerrors.ErrInvalidMagic,
		},
		{
			name:    "version",
			corrupt: func(b []byte) []byte { binary.LittleEndian.PutUint16(b[4:], 9); return b },
			openErr: handerrors.ErrInvalidVersion,
		},
		{
			name:    "no tables",
			corrupt: func(b []byte) []byte { binary.LittleEndian.PutUint16(b[6:], 0); return b },
			openErr: handerrors.ErrCorruptedTable,
		},
		{
			name:    "total keys",
			corrupt: func(b []byte) []byte { b[8] ^= 1; return b },
			openErr: handerrors.ErrCorruptedTable,
		},
		{
			name:    "category offset",
			corrupt: func(b []byte) []byte { b[16] ^= 1; return b },
			openErr: handerrors.ErrRulesMismatch,
		},
		{
			name:    "rules digest",
			corrupt: func(b []byte) []byte { b[27] ^= 0x80; return b },
			openErr: handerrors.ErrRulesMismatch,
		},
		{
			name: "duplicate table id",
			corrupt: func(b []byte) []byte {
				copy(b[entry(1):entry(1)+2], b[entry(0):entry(0)+2])
				return b
			},
			openErr: handerrors.ErrCorruptedTable,
		},
		{
			name: "unknown table id",
			corrupt: func(b []byte) []byte {
				binary.LittleEndian.PutUint16(b[entry(2):], 0x7fff)
				return b
			},
			openErr: handerrors.ErrCorruptedTable,
		},
		{
			name: "misaligned pilots",
			corrupt: func(b []byte) []byte {
				off := binary.LittleEndian.Uint64(b[entry(0)+16:])
				binary.LittleEndian.PutUint64(b[entry(0)+16:], off+4)
				return b
			},
			openErr: handerrors.ErrCorruptedTable,
		},
		{
			name: "values past end",
			corrupt: func(b []byte) []byte {
				binary.LittleEndian.PutUint64(b[entry(3)+24:], uint64(len(b)))
				return b
			},
			openErr: handerrors.ErrTruncatedFile,
		},
		{
			name:    "truncated data",
			corrupt: func(b []byte) []byte { return b[:len(b)-64] },
			openErr: handerrors.ErrTruncatedFile,
		},
		{
			name:    "shorter than header",
			corrupt: func(b []byte) []byte { return b[:40] },
			openErr: handerrors.ErrTruncatedFile,
		},
		{
			name:    "directory reserved byte",
			corrupt: func(b []byte) []byte { b[entry(4)+2] = 1; return b },
		},
		{
			name:    "pilot byte",
			corrupt: func(b []byte) []byte { b[dataStart+5] ^= 0x10; return b },
		},
		{
			name:    "value byte",
			corrupt: func(b []byte) []byte { b[len(b)-footerSize-9] ^= 0x01; return b },
		},
		{
			name:    "footer",
			corrupt: func(b []byte) []byte { b[len(b)-footerSize+8] ^= 0x01; return b },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.corrupt(append([]byte(nil), data...))
			ev, err := OpenBytes(buf)
			if tt.openErr != nil {
				require.Error(t, err)
				assert.Truef(t, errors.Is(err, tt.openErr), "got %v, want %v", err, tt.openErr)
				return
			}
			require.NoError(t, err)
			err = ev.Verify()
			assert.Truef(t, errors.Is(err, handerrors.ErrChecksumFailed), "got %v, want ErrChecksumFailed", err)
		})
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.hrnk"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	short := filepath.Join(dir, "short.hrnk")
	require.NoError(t, os.WriteFile(short, marshalShared(t)[:minFileSize-1], 0o644))
	_, err = Open(short)
	assert.True(t, errors.Is(err, handerrors.ErrTruncatedFile), "got %v", err)

	bad := filepath.Join(dir, "bad.hrnk")
	data := marshalShared(t)
	data[1] ^= 0xff
	require.NoError(t, os.WriteFile(bad, data, 0o644))
	_, err = Open(bad)
	assert.True(t, errors.Is(err, handerrors.ErrInvalidMagic), "got %v", err)
}

func TestClose(t *testing.T) {
	ev, err := OpenBytes(marshalShared(t))
	require.NoError(t, err)

	require.NoError(t, ev.Close())
	require.NoError(t, ev.Close(), "Close is idempotent")

	assert.ErrorIs(t, ev.Verify(), handerrors.ErrEvaluatorClosed)
	_, err = ev.MarshalBinary()
	assert.ErrorIs(t, err, handerrors.ErrEvaluatorClosed)
	assert.ErrorIs(t, ev.WriteFile(filepath.Join(t.TempDir(), "x")), handerrors.ErrEvaluatorClosed)
}

func TestVerifyBuiltEvaluator(t *testing.T) {
	assert.NoError(t, sharedEvaluator(t).Verify())
}

func TestGetStats(t *testing.T) {
	ev := sharedEvaluator(t)
	path := filepath.Join(t.TempDir(), "tables.hrnk")
	require.NoError(t, ev.WriteFile(path))

	st, err := GetStats(path)
	require.NoError(t, err)
	fi, err := os.Stat(path)
	require.NoError(t, err)

	assert.Equal(t, fi.Size(), st.FileSize)
	assert.Len(t, st.Tables, len(allTables))
	var total uint64
	for _, n := range expectedKeys {
		total += uint64(n)
	}
	assert.Equal(t, total, st.TotalKeys)
	assert.Greater(t, st.BitsPerKey(), 16.0)
	assert.Less(t, st.BitsPerKey(), 64.0)
}
