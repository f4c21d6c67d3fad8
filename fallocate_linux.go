//go:build linux

package handrank

import (
	"os"

	"golang.org/x/sys/unix"
)

// fallocateFile reserves size bytes for the table file so that writes
// through the mapping cannot hit SIGBUS on a full disk.
func fallocateFile(file *os.File, size int64) error {
	if err := unix.Fallocate(int(file.Fd()), 0, 0, size); err != nil {
		// some filesystems (NFS, tmpfs on old kernels) refuse fallocate
		return unix.Ftruncate(int(file.Fd()), size)
	}
	// fallocate reserves blocks but leaves the size alone
	return unix.Ftruncate(int(file.Fd()), size)
}
