//go:build !linux

package handrank

func prefaultRegion(data []byte) {}
