// Copyright 2025 Certen Protocol
//
// Package era implements the post-Merge/post-Capella era validator: it
// proves that 8192 consecutive beacon blocks match a trusted historical
// summary, checking execution-payload block hashes along the way.

package era

import (
	"errors"
	"fmt"
)

// Sentinel errors for era validation.
var (
	// ErrMismatchedBlockCount is returned when the execution-hash and
	// beacon-block slices supplied to ValidateEra differ in length.
	ErrMismatchedBlockCount = errors.New("era: execution hash count does not match beacon block count")
)

// ExecutionBlockHashMismatchError reports a beacon block whose execution
// payload's block_hash disagrees with the caller-supplied hash for that
// slot (including the case where one side has a hash and the other doesn't).
type ExecutionBlockHashMismatchError struct {
	Slot     uint64
	Expected *[32]byte
	Actual   *[32]byte
}

func (e *ExecutionBlockHashMismatchError) Error() string {
	return fmt.Sprintf("era: slot %d execution block hash mismatch: expected %s, got %s", e.Slot, hashOrNone(e.Expected), hashOrNone(e.Actual))
}

func hashOrNone(h *[32]byte) string {
	if h == nil {
		return "<none>"
	}
	return fmt.Sprintf("%x", *h)
}

// InvalidEraStartError reports a first slot that isn't an exact multiple
// of epoch.Size (8192), an era that precedes the Capella fork, or an empty
// block list (Slot 0).
type InvalidEraStartError struct {
	Slot uint64
}

func (e *InvalidEraStartError) Error() string {
	return fmt.Sprintf("era: slot %d is not a valid era start", e.Slot)
}

// EraOutOfBoundsError reports an era number beyond the supplied historical
// summaries table.
type EraOutOfBoundsError struct {
	Era    uint64
	MaxEra uint64
}

func (e *EraOutOfBoundsError) Error() string {
	return fmt.Sprintf("era: era %d out of bounds (max %d)", e.Era, e.MaxEra)
}

// InvalidBlockSummaryRootError reports a computed beacon-block-roots tree
// root that disagrees with the era's trusted block_summary_root.
type InvalidBlockSummaryRootError struct {
	Era      uint64
	Expected [32]byte
	Actual   [32]byte
}

func (e *InvalidBlockSummaryRootError) Error() string {
	return fmt.Sprintf("era: era %d block summary root mismatch: expected %x, got %x", e.Era, e.Expected, e.Actual)
}

// ParentRootMismatchError is the sanity check from §9's Ambiguity notes:
// a non-filler block's parent_root must chain to the previous slot's
// computed root; a mismatch means the missed-slot filler rule has
// diverged from the upstream feed's actual semantics.
type ParentRootMismatchError struct {
	Slot uint64
}

func (e *ParentRootMismatchError) Error() string {
	return fmt.Sprintf("era: slot %d parent_root does not chain to the previous slot's root", e.Slot)
}
