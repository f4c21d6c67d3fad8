package handrank

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/tamirms/handrank/card"
	"github.com/tamirms/handrank/internal/tables"
)

// rulesDigest fingerprints everything a table file's contents depend on
// besides the tables themselves: the card encoding, the category spacing
// and the expected table sizes. A file written by a build with different
// rules is rejected at open time.
type rulesDigest = xxh3.Uint128

// currentRules is computed once at init.
var currentRules = computeRulesDigest()

func computeRulesDigest() rulesDigest {
	buf := make([]byte, 0, 128)
	buf = binary.LittleEndian.AppendUint32(buf, tables.CategoryOffset)
	for r := range card.NumRanks {
		buf = binary.LittleEndian.AppendUint32(buf, card.Rank(r).Key())
	}
	for _, n := range []int{
		tables.PokerRanksSize, tables.PokerFlushSize,
		tables.SixPlusRanksSize, tables.SixPlusFlushSize,
		tables.BadugiSize,
	} {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(n))
	}
	for _, id := range allTables {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(id))
	}
	buf = binary.LittleEndian.AppendUint16(buf, worstAceFiveEight)
	buf = binary.LittleEndian.AppendUint16(buf, worstDeuceSevenEight)
	return xxh3.Hash128(buf)
}
