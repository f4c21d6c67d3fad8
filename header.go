package handrank

import (
	"encoding/binary"

	handerrors "github.com/tamirms/handrank/errors"
)

const (
	// magic number for table files, "HRNK" in little-endian
	magic = uint32(0x4B4E5248)

	// version is the current format version
	version = uint16(0x0001)

	// headerSize is the exact size of the serialized header (64 bytes)
	headerSize = 64

	// dirEntrySize is the exact size of one directory entry (32 bytes)
	dirEntrySize = 32

	// footerSize is the exact size of the serialized footer (32 bytes)
	footerSize = 32
)

// header is the 64-byte file header.
//
// Layout:
//
//	Offset  Size  Field           Type
//	0       4     Magic           0x4B4E5248 ("HRNK")
//	4       2     Version         0x0001
//	6       2     NumTables       uint16_le
//	8       8     TotalKeys       uint64_le (sum over tables)
//	16      4     CategoryOffset  uint32_le
//	20      8     RulesDigestHi   uint64_le
//	28      8     RulesDigestLo   uint64_le
//	36      28    Reserved        [28]byte (zero)
type header struct {
	Magic          uint32
	Version        uint16
	NumTables      uint16
	TotalKeys      uint64
	CategoryOffset uint32
	RulesDigest    rulesDigest
	Reserved       [28]byte
}

// encodeTo serializes the header to an existing buffer.
func (h *header) encodeTo(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.Version)
	binary.LittleEndian.PutUint16(buf[6:8], h.NumTables)
	binary.LittleEndian.PutUint64(buf[8:16], h.TotalKeys)
	binary.LittleEndian.PutUint32(buf[16:20], h.CategoryOffset)
	binary.LittleEndian.PutUint64(buf[20:28], h.RulesDigest.Hi)
	binary.LittleEndian.PutUint64(buf[28:36], h.RulesDigest.Lo)
	copy(buf[36:64], h.Reserved[:])
}

// decodeHeader parses a 64-byte header.
func decodeHeader(buf []byte) (*header, error) {
	if len(buf) < headerSize {
		return nil, handerrors.ErrTruncatedFile
	}

	h := &header{
		Magic:          binary.LittleEndian.Uint32(buf[0:4]),
		Version:        binary.LittleEndian.Uint16(buf[4:6]),
		NumTables:      binary.LittleEndian.Uint16(buf[6:8]),
		TotalKeys:      binary.LittleEndian.Uint64(buf[8:16]),
		CategoryOffset: binary.LittleEndian.Uint32(buf[16:20]),
		RulesDigest: rulesDigest{
			Hi: binary.LittleEndian.Uint64(buf[20:28]),
			Lo: binary.LittleEndian.Uint64(buf[28:36]),
		},
	}
	copy(h.Reserved[:], buf[36:64])

	if h.Magic != magic {
		return nil, handerrors.ErrInvalidMagic
	}
	if h.Version != version {
		return nil, handerrors.ErrInvalidVersion
	}
	if h.NumTables == 0 || int(h.NumTables) > numTableIDs {
		return nil, handerrors.ErrCorruptedTable
	}

	return h, nil
}

// dirEntry locates one table inside the data region.
//
// Layout:
//
//	Offset  Size  Field         Type
//	0       2     TableID       uint16_le (variant<<1 | kind)
//	2       2     Reserved      [2]byte (zero)
//	4       4     NumKeys       uint32_le
//	8       4     NumBuckets    uint32_le (pilot count)
//	12      4     NumSlots      uint32_le (value count)
//	16      8     PilotsOffset  uint64_le (absolute, 8-aligned)
//	24      8     ValuesOffset  uint64_le (absolute, 8-aligned)
type dirEntry struct {
	ID           TableID
	NumKeys      uint32
	NumBuckets   uint32
	NumSlots     uint32
	PilotsOffset uint64
	ValuesOffset uint64
}

func (e *dirEntry) encodeTo(buf []byte) {
	binary.LittleEndian.PutUint16(buf[0:2], uint16(e.ID))
	buf[2], buf[3] = 0, 0
	binary.LittleEndian.PutUint32(buf[4:8], e.NumKeys)
	binary.LittleEndian.PutUint32(buf[8:12], e.NumBuckets)
	binary.LittleEndian.PutUint32(buf[12:16], e.NumSlots)
	binary.LittleEndian.PutUint64(buf[16:24], e.PilotsOffset)
	binary.LittleEndian.PutUint64(buf[24:32], e.ValuesOffset)
}

func decodeDirEntry(buf []byte) dirEntry {
	return dirEntry{
		ID:           TableID(binary.LittleEndian.Uint16(buf[0:2])),
		NumKeys:      binary.LittleEndian.Uint32(buf[4:8]),
		NumBuckets:   binary.LittleEndian.Uint32(buf[8:12]),
		NumSlots:     binary.LittleEndian.Uint32(buf[12:16]),
		PilotsOffset: binary.LittleEndian.Uint64(buf[16:24]),
		ValuesOffset: binary.LittleEndian.Uint64(buf[24:32]),
	}
}

// footer is the 32-byte file footer.
//
// Layout:
//
//	Offset  Size  Field          Type
//	0       8     DirectoryHash  uint64_le (xxHash64 of the directory)
//	8       8     DataHash       uint64_le (xxHash64 of the data region)
//	16      16    Reserved       [16]byte (zero)
type footer struct {
	DirectoryHash uint64
	DataHash      uint64
	Reserved      [16]byte
}

// encodeTo serializes the footer into an existing buffer.
func (f *footer) encodeTo(buf []byte) {
	binary.LittleEndian.PutUint64(buf[0:8], f.DirectoryHash)
	binary.LittleEndian.PutUint64(buf[8:16], f.DataHash)
	copy(buf[16:32], f.Reserved[:])
}

// decodeFooter parses a 32-byte footer.
func decodeFooter(buf []byte) (*footer, error) {
	if len(buf) < footerSize {
		return nil, handerrors.ErrTruncatedFile
	}

	f := &footer{
		DirectoryHash: binary.LittleEndian.Uint64(buf[0:8]),
		DataHash:      binary.LittleEndian.Uint64(buf[8:16]),
	}
	copy(f.Reserved[:], buf[16:32])

	return f, nil
}
