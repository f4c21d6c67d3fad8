package phf

// pilotHashC is the multiplicative constant from FxHash.
const pilotHashC = 0x517cc1b727220a95

// pilotHash maps a pilot index to the 32-bit value xored into keys.
//
// Only the low 32 bits are kept so that tables store uint32 pilots. Keys
// from the ranking tables fit in 32 bits as well, so every bit of the key
// is perturbed.
func pilotHash(pilot uint64) uint32 {
	return uint32(pilot * pilotHashC)
}

// slotOf returns the slot of key under pilot hash ph.
func slotOf(key uint64, ph uint32, numSlots uint64) uint64 {
	return (key ^ uint64(ph)) % numSlots
}
