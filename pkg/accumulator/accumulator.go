// Copyright 2025 Certen Protocol
//
// Package accumulator implements the pre-Merge era validator: it computes
// the SSZ tree-hash root of an epoch's List[HeaderRecord, 8192] accumulator
// and compares it against a trusted table of historical epoch roots.

package accumulator

import (
	"fmt"

	"github.com/certen/independant-validator/pkg/epoch"
	ethssz "github.com/certen/independant-validator/pkg/ssz"
)

// MaxPreMergeEpoch is the last epoch number validator with this table:
// the Merge occurred at block 15,537,394, whose predecessor (the last
// pre-Merge block, 15,537,393) falls in epoch 1896.
const MaxPreMergeEpoch = 1896

// EraAccumulatorMismatchError reports a computed accumulator root that
// disagrees with the trusted table.
type EraAccumulatorMismatchError struct {
	Epoch           uint64
	Expected        [32]byte
	Actual          [32]byte
}

func (e *EraAccumulatorMismatchError) Error() string {
	return fmt.Sprintf("accumulator: epoch %d root mismatch: expected %x, got %x", e.Epoch, e.Expected, e.Actual)
}

// EpochOutOfBoundsError reports an epoch number beyond the trusted table
// (or past the Merge boundary, which this validator never handles).
type EpochOutOfBoundsError struct {
	Epoch    uint64
	MaxEpoch uint64
}

func (e *EpochOutOfBoundsError) Error() string {
	return fmt.Sprintf("accumulator: epoch %d out of bounds (max %d)", e.Epoch, e.MaxEpoch)
}

// Validator holds a read-only, immutable table of trusted pre-Merge epoch
// roots and checks submitted epochs against it. It owns no mutable state.
type Validator struct {
	roots [][32]byte
}

// NewDefault constructs a Validator using the library's baked-in table.
// See historical_roots.go for the caveats on its completeness.
func NewDefault() *Validator {
	table := make([][32]byte, len(defaultHistoricalEpochRoots))
	copy(table, defaultHistoricalEpochRoots)
	return &Validator{roots: table}
}

// NewWithTable constructs a Validator from a caller-supplied table of
// trusted historical epoch roots, for deployments providing their own
// validated source instead of the library default.
func NewWithTable(roots [][32]byte) *Validator {
	table := make([][32]byte, len(roots))
	copy(table, roots)
	return &Validator{roots: table}
}

// ValidateEra computes e's accumulator root and compares it to the trusted
// table entry at e.Number(). Epochs past the Merge boundary are rejected
// before any table lookup, since they must be validated via the
// post-Merge/post-Capella path instead.
func (v *Validator) ValidateEra(e *epoch.Epoch) error {
	if e.Number() > MaxPreMergeEpoch {
		return &EpochOutOfBoundsError{Epoch: e.Number(), MaxEpoch: MaxPreMergeEpoch}
	}
	if e.Number() >= uint64(len(v.roots)) {
		return &EpochOutOfBoundsError{Epoch: e.Number(), MaxEpoch: uint64(len(v.roots)) - 1}
	}

	actual, err := ethssz.AccumulatorRoot(e.Records())
	if err != nil {
		return fmt.Errorf("accumulator: computing root for epoch %d: %w", e.Number(), err)
	}

	expected := v.roots[e.Number()]
	if actual != expected {
		return &EraAccumulatorMismatchError{Epoch: e.Number(), Expected: expected, Actual: actual}
	}
	return nil
}

// RootAt returns the trusted root for the given epoch, for callers that
// need it without running a full ValidateEra (e.g. inclusion-proof verification).
func (v *Validator) RootAt(epochNumber uint64) ([32]byte, error) {
	if epochNumber >= uint64(len(v.roots)) {
		return [32]byte{}, &EpochOutOfBoundsError{Epoch: epochNumber, MaxEpoch: uint64(len(v.roots)) - 1}
	}
	return v.roots[epochNumber], nil
}
