// Package encoding converts between little-endian byte regions and the
// uint32 pilot and uint16 value arrays of a table.
//
// The view functions reinterpret the bytes in place with unsafe when the
// region is suitably aligned, and are only correct on little-endian
// architectures (amd64, arm64). Unaligned regions are decoded into a copy.
package encoding

import (
	"encoding/binary"
	"unsafe"
)

// Uint32s returns buf as a []uint32. len(buf) must be a multiple of 4.
// The result aliases buf when buf is 4-byte aligned.
func Uint32s(buf []byte) []uint32 {
	n := len(buf) / 4
	if n == 0 {
		return nil
	}
	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(ptr)%4 == 0 {
		return unsafe.Slice((*uint32)(ptr), n)
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return out
}

// Uint16s returns buf as a []uint16. len(buf) must be a multiple of 2.
// The result aliases buf when buf is 2-byte aligned.
func Uint16s(buf []byte) []uint16 {
	n := len(buf) / 2
	if n == 0 {
		return nil
	}
	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(ptr)%2 == 0 {
		return unsafe.Slice((*uint16)(ptr), n)
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(buf[2*i:])
	}
	return out
}

// PutUint32s writes src into dst little-endian and returns the bytes
// written. dst must hold 4*len(src) bytes.
func PutUint32s(dst []byte, src []uint32) int {
	for i, v := range src {
		binary.LittleEndian.PutUint32(dst[4*i:], v)
	}
	return 4 * len(src)
}

// PutUint16s writes src into dst little-endian and returns the bytes
// written. dst must hold 2*len(src) bytes.
func PutUint16s(dst []byte, src []uint16) int {
	for i, v := range src {
		binary.LittleEndian.PutUint16(dst[2*i:], v)
	}
	return 2 * len(src)
}

// Align8 rounds n up to a multiple of 8.
func Align8(n uint64) uint64 {
	return (n + 7) &^ 7
}
