package handrank

import (
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"

	handerrors "github.com/tamirms/handrank/errors"
	"github.com/tamirms/handrank/internal/encoding"
	"github.com/tamirms/handrank/internal/phf"
)

// minFileSize is the header and footer with an empty directory.
const minFileSize = headerSize + footerSize

// Open opens a table file written by WriteFile.
// It opens the file, memory-maps it, and closes the file descriptor.
func Open(path string) (*Evaluator, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer file.Close()
	return OpenFile(file)
}

// OpenFile memory-maps f read-only. The caller is responsible for closing
// f, which may happen as soon as OpenFile returns.
func OpenFile(f *os.File) (*Evaluator, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat table file: %w", err)
	}
	fileSize := stat.Size()
	if fileSize < minFileSize {
		return nil, handerrors.ErrTruncatedFile
	}

	fadviseWillNeed(int(f.Fd()), 0, fileSize)
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap table file: %w", err)
	}

	e := &Evaluator{
		mmap: mm,
		data: []byte(mm),
	}
	if err := e.initFromData(); err != nil {
		return nil, errors.Join(err, e.Close())
	}
	return e, nil
}

// OpenBytes reads tables from an in-memory table file, e.g. the output of
// MarshalBinary. The slice is used in place and must not be modified while
// the Evaluator is in use. Close is a no-op.
func OpenBytes(data []byte) (*Evaluator, error) {
	if len(data) < minFileSize {
		return nil, handerrors.ErrTruncatedFile
	}
	e := &Evaluator{data: data}
	if err := e.initFromData(); err != nil {
		return nil, err
	}
	return e, nil
}

// initFromData parses the header and directory and wraps each table's
// regions without copying. Checksums are left to Verify.
func (e *Evaluator) initFromData() error {
	size := uint64(len(e.data))

	hdr, err := decodeHeader(e.data[:headerSize])
	if err != nil {
		return err
	}
	if hdr.RulesDigest != currentRules || hdr.CategoryOffset != CategoryOffset {
		return handerrors.ErrRulesMismatch
	}
	e.header = hdr

	dirEnd := uint64(headerSize) + uint64(hdr.NumTables)*dirEntrySize
	if dirEnd+footerSize > size {
		return handerrors.ErrTruncatedFile
	}
	dataStart := encoding.Align8(dirEnd)
	dataEnd := size - footerSize

	var seen [numTableIDs]bool
	var totalKeys uint64
	e.dir = make([]dirEntry, hdr.NumTables)
	for i := range e.dir {
		ent := decodeDirEntry(e.data[headerSize+i*dirEntrySize:])
		if !ent.ID.valid() || seen[ent.ID] {
			return fmt.Errorf("%w: directory entry %d has table id %d", handerrors.ErrCorruptedTable, i, ent.ID)
		}
		seen[ent.ID] = true

		pilots, err := region(e.data, ent.PilotsOffset, 4*uint64(ent.NumBuckets), dataStart, dataEnd)
		if err != nil {
			return fmt.Errorf("%s pilots: %w", ent.ID, err)
		}
		values, err := region(e.data, ent.ValuesOffset, 2*uint64(ent.NumSlots), dataStart, dataEnd)
		if err != nil {
			return fmt.Errorf("%s values: %w", ent.ID, err)
		}
		t, err := phf.FromParts(encoding.Uint32s(pilots), encoding.Uint16s(values))
		if err != nil {
			return fmt.Errorf("%s: %w", ent.ID, err)
		}
		e.tables[ent.ID] = t
		e.dir[i] = ent
		totalKeys += uint64(ent.NumKeys)
	}
	if totalKeys != hdr.TotalKeys {
		return fmt.Errorf("%w: directory holds %d keys, header says %d", handerrors.ErrCorruptedTable, totalKeys, hdr.TotalKeys)
	}

	for _, id := range allTables {
		if !seen[id] {
			return fmt.Errorf("%w: missing %s table", handerrors.ErrCorruptedTable, id)
		}
	}
	e.stats = e.stats[:0]
	for _, id := range allTables {
		for _, ent := range e.dir {
			if ent.ID != id {
				continue
			}
			e.stats = append(e.stats, TableStats{
				ID:         id,
				NumKeys:    int(ent.NumKeys),
				NumBuckets: uint64(ent.NumBuckets),
				NumSlots:   uint64(ent.NumSlots),
				SizeBytes:  e.tables[id].SizeBytes(),
			})
		}
	}
	return nil
}

// region returns data[off:off+n] after checking that it is 8-aligned and
// lies within [lo, hi).
func region(data []byte, off, n, lo, hi uint64) ([]byte, error) {
	if off%8 != 0 || off < lo {
		return nil, fmt.Errorf("%w: offset %d", handerrors.ErrCorruptedTable, off)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty region", handerrors.ErrCorruptedTable)
	}
	if off+n > hi || off+n < off {
		return nil, fmt.Errorf("%w: region [%d, %d) beyond data end %d", handerrors.ErrTruncatedFile, off, off+n, hi)
	}
	return data[off : off+n], nil
}

// Verify recomputes the directory and data checksums of a file-backed
// Evaluator. A built Evaluator has nothing to verify.
//
// The footer is decoded here rather than at open time, so opening only
// touches the header, the directory and whatever pages lookups fault in.
func (e *Evaluator) Verify() error {
	if e.closed.Load() {
		return handerrors.ErrEvaluatorClosed
	}
	if e.header == nil {
		return nil
	}

	size := uint64(len(e.data))
	ft, err := decodeFooter(e.data[size-footerSize:])
	if err != nil {
		return err
	}

	dirEnd := uint64(headerSize) + uint64(len(e.dir))*dirEntrySize
	if xxhash.Sum64(e.data[headerSize:dirEnd]) != ft.DirectoryHash {
		return fmt.Errorf("%w: directory", handerrors.ErrChecksumFailed)
	}
	if xxhash.Sum64(e.data[encoding.Align8(dirEnd):size-footerSize]) != ft.DataHash {
		return fmt.Errorf("%w: data region", handerrors.ErrChecksumFailed)
	}
	return nil
}

// Close releases the table file mapping. It is idempotent. A built or
// OpenBytes Evaluator holds no resources.
func (e *Evaluator) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	if e.mmap != nil {
		return e.mmap.Unmap()
	}
	return nil
}
