//go:build !linux

package handrank

// fadviseWillNeed is a no-op outside Linux.
func fadviseWillNeed(fd int, offset, length int64) {}
