// Package errors defines all exported error sentinels for the handrank library.
//
// This is the single source of truth for error values. The root handrank
// package and the internal table and hashing packages all import from here,
// so errors.Is checks work across package boundaries.
package errors

import "errors"

// Build errors
var (
	ErrCardinalityMismatch  = errors.New("handrank: generated table size does not match the expected class count")
	ErrTableInconsistent    = errors.New("handrank: hand pattern has no ranked five-card subset")
	ErrPilotSearchExhausted = errors.New("handrank: pilot search exhausted - retry with larger c or alpha")
	ErrEmptyTable           = errors.New("handrank: cannot build a perfect hash over zero keys")
	ErrDuplicateKey         = errors.New("handrank: duplicate key detected")
	ErrKeyValueMismatch     = errors.New("handrank: key and value counts differ")
	ErrInvalidParameters    = errors.New("handrank: invalid perfect hash parameters")
)

// Artifact errors
var (
	ErrInvalidMagic    = errors.New("handrank: invalid magic number")
	ErrInvalidVersion  = errors.New("handrank: unsupported version")
	ErrChecksumFailed  = errors.New("handrank: file checksum verification failed")
	ErrTruncatedFile   = errors.New("handrank: table file is truncated")
	ErrCorruptedTable  = errors.New("handrank: table data is corrupted")
	ErrRulesMismatch   = errors.New("handrank: table file was built for different ranking rules")
	ErrEvaluatorClosed = errors.New("handrank: evaluator is closed")
)

// Input errors
var (
	ErrMalformedInput = errors.New("handrank: malformed card or hand")
	ErrNotEnoughCards = errors.New("handrank: not enough cards left in deck")
)
