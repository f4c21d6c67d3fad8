package handrank

import "time"

// TableStats describes one perfect hash table.
type TableStats struct {
	ID         TableID
	NumKeys    int
	NumBuckets uint64
	NumSlots   uint64
	SizeBytes  int

	// Build-only fields; zero for tables read from a file.
	LargestBucket int
	MaxPilot      uint64
	C             float64
	Alpha         float64
	Retries       int
	Duration      time.Duration
}

// BitsPerKey is the table size in bits divided by the key count.
func (s TableStats) BitsPerKey() float64 {
	if s.NumKeys == 0 {
		return 0
	}
	return float64(8*s.SizeBytes) / float64(s.NumKeys)
}

// Stats summarizes an Evaluator.
type Stats struct {
	Tables    []TableStats
	TotalKeys uint64
	SizeBytes int
	// FileSize is the table file size, or 0 for a built Evaluator.
	FileSize int64
}

// BitsPerKey is the combined table size in bits divided by the key count.
func (s *Stats) BitsPerKey() float64 {
	if s.TotalKeys == 0 {
		return 0
	}
	return float64(8*s.SizeBytes) / float64(s.TotalKeys)
}

// Stats returns per-table statistics in table order.
func (e *Evaluator) Stats() *Stats {
	st := &Stats{
		Tables:   append([]TableStats(nil), e.stats...),
		FileSize: int64(len(e.data)),
	}
	for _, t := range e.stats {
		st.TotalKeys += uint64(t.NumKeys)
		st.SizeBytes += t.SizeBytes
	}
	return st
}

// GetStats returns statistics for a table file.
func GetStats(path string) (*Stats, error) {
	e, err := Open(path)
	if err != nil {
		return nil, err
	}
	return e.Stats(), e.Close()
}
