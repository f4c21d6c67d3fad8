package handrank

import (
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"

	handerrors "github.com/tamirms/handrank/errors"
	"github.com/tamirms/handrank/internal/encoding"
)

// fileLayout places every table of an Evaluator in a table file.
// File layout: [Header 64B][Directory N×32B][pad][Data: pilots, values per table, 8-aligned][Footer 32B]
type fileLayout struct {
	entries   []dirEntry
	dataStart uint64
	dataEnd   uint64
}

func (l *fileLayout) size() uint64 { return l.dataEnd + footerSize }

func (e *Evaluator) layout() fileLayout {
	var l fileLayout
	dirEnd := uint64(headerSize + dirEntrySize*len(allTables))
	l.dataStart = encoding.Align8(dirEnd)

	off := l.dataStart
	for _, id := range allTables {
		t := e.tables[id]
		ent := dirEntry{
			ID:           id,
			NumBuckets:   uint32(t.NumBuckets()),
			NumSlots:     uint32(t.NumSlots()),
			PilotsOffset: off,
		}
		off = encoding.Align8(off + 4*t.NumBuckets())
		ent.ValuesOffset = off
		off = encoding.Align8(off + 2*t.NumSlots())
		l.entries = append(l.entries, ent)
	}
	for i := range l.entries {
		l.entries[i].NumKeys = uint32(e.stats[i].NumKeys)
	}
	l.dataEnd = off
	return l
}

// encodeInto writes the complete table file into buf, which must be
// exactly l.size() bytes and zeroed.
func (e *Evaluator) encodeInto(buf []byte, l *fileLayout) {
	dataHasher := xxhash.New()
	var totalKeys uint64
	for i, ent := range l.entries {
		t := e.tables[ent.ID]
		encoding.PutUint32s(buf[ent.PilotsOffset:], t.Pilots())
		encoding.PutUint16s(buf[ent.ValuesOffset:], t.Values())

		end := l.dataEnd
		if i+1 < len(l.entries) {
			end = l.entries[i+1].PilotsOffset
		}
		// hashed while still hot in cache; chunks are contiguous
		if _, err := dataHasher.Write(buf[ent.PilotsOffset:end]); err != nil {
			panic("hash.Hash.Write returned unexpected error: " + err.Error())
		}

		ent.encodeTo(buf[headerSize+i*dirEntrySize:])
		totalKeys += uint64(ent.NumKeys)
	}

	hdr := header{
		Magic:          magic,
		Version:        version,
		NumTables:      uint16(len(l.entries)),
		TotalKeys:      totalKeys,
		CategoryOffset: CategoryOffset,
		RulesDigest:    currentRules,
	}
	hdr.encodeTo(buf[:headerSize])

	dirEnd := headerSize + dirEntrySize*len(l.entries)
	ftr := footer{
		DirectoryHash: xxhash.Sum64(buf[headerSize:dirEnd]),
		DataHash:      dataHasher.Sum64(),
	}
	ftr.encodeTo(buf[l.dataEnd:])
}

// MarshalBinary returns the table file as a byte slice, suitable for
// OpenBytes.
func (e *Evaluator) MarshalBinary() ([]byte, error) {
	if e.closed.Load() {
		return nil, handerrors.ErrEvaluatorClosed
	}
	l := e.layout()
	buf := make([]byte, l.size())
	e.encodeInto(buf, &l)
	return buf, nil
}

// WriteFile writes the Evaluator's tables to path. The file is created,
// preallocated, memory-mapped and filled in place.
func (e *Evaluator) WriteFile(path string) error {
	if e.closed.Load() {
		return handerrors.ErrEvaluatorClosed
	}
	l := e.layout()
	size := l.size()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create table file: %w", err)
	}

	// Pre-allocate disk blocks to prevent SIGBUS on disk full
	if err := fallocateFile(file, int64(size)); err != nil {
		primaryErr := fmt.Errorf("failed to allocate disk space: %w", err)
		return errors.Join(primaryErr, file.Close())
	}

	mm, err := mmap.MapRegion(file, int(size), mmap.RDWR, 0, 0)
	if err != nil {
		primaryErr := fmt.Errorf("failed to mmap file: %w", err)
		return errors.Join(primaryErr, file.Close())
	}
	data := []byte(mm)
	prefaultRegion(data)

	e.encodeInto(data, &l)

	if err := mm.Flush(); err != nil {
		primaryErr := fmt.Errorf("mmap flush failed: %w", err)
		return errors.Join(primaryErr, mm.Unmap(), file.Close())
	}
	if err := mm.Unmap(); err != nil {
		primaryErr := fmt.Errorf("mmap unmap failed: %w", err)
		return errors.Join(primaryErr, file.Close())
	}
	// fallocate may round up on some filesystems
	if err := file.Truncate(int64(size)); err != nil {
		primaryErr := fmt.Errorf("truncate failed: %w", err)
		return errors.Join(primaryErr, file.Close())
	}
	return file.Close()
}
