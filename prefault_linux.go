//go:build linux

package handrank

import "golang.org/x/sys/unix"

// MADV_POPULATE_WRITE, Linux 5.14+. Older kernels answer EINVAL.
const madvPopulateWrite = 23

// prefaultRegion populates the pages of a writable mapping up front.
// Errors are ignored.
func prefaultRegion(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, madvPopulateWrite)
}
