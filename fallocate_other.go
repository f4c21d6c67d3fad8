//go:build !linux && !darwin

package handrank

import "os"

// fallocateFile sets the file size. Blocks may still be allocated lazily.
func fallocateFile(file *os.File, size int64) error {
	return file.Truncate(size)
}
