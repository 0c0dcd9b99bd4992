// Copyright 2025 Certen Protocol
//
// Package capella implements the post-Capella single-header prover: given
// one execution block's header hash and a PostCapellaProof, it proves the
// block belongs to canonical history against a caller-supplied
// HistoricalSummaries table, without materializing the full era.

package capella

import (
	"errors"
	"fmt"
)

// Sentinel errors for single-header proof validation.
var (
	// ErrInvalidProofVariant is returned when a Variant value outside
	// {Capella, Deneb} is supplied.
	ErrInvalidProofVariant = errors.New("capella: invalid proof variant")

	// ErrProofValidationFailure is the catch-all terminal failure for any
	// of the prover's five steps, per spec step 5.
	ErrProofValidationFailure = errors.New("capella: proof validation failure")
)

// EraValidationError reports a block number that doesn't satisfy its
// proof variant's fork window (step 1).
type EraValidationError struct {
	Variant     Variant
	BlockNumber uint64
}

func (e *EraValidationError) Error() string {
	return fmt.Sprintf("capella: block %d does not satisfy %s era window", e.BlockNumber, e.Variant)
}

// SummaryIndexOutOfBoundsError reports a slot whose derived summary_index
// falls outside the supplied historical summaries table, or a slot that
// predates the Capella fork entirely (step 3).
type SummaryIndexOutOfBoundsError struct {
	Slot         uint64
	SummaryIndex uint64
	SummaryCount uint64
}

func (e *SummaryIndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("capella: slot %d summary index %d out of bounds (have %d summaries)", e.Slot, e.SummaryIndex, e.SummaryCount)
}
