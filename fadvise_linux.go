//go:build linux

package handrank

import "golang.org/x/sys/unix"

// fadviseWillNeed asks the kernel to start reading the table file before
// the first lookup touches it. Errors are ignored.
func fadviseWillNeed(fd int, offset, length int64) {
	_ = unix.Fadvise(fd, offset, length, unix.FADV_WILLNEED)
}
