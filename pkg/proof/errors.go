// Copyright 2025 Certen Protocol
//
// Package proof generates and verifies per-block Merkle inclusion proofs
// against a pre-Merge epoch accumulator.

package proof

import (
	"errors"
	"fmt"

	"github.com/certen/independant-validator/pkg/ethereum"
)

// Sentinel errors for inclusion-proof operations.
var (
	// ErrHeaderMismatch is returned when a proof is bound to a header whose
	// block number doesn't match the proof's own block number.
	ErrHeaderMismatch = errors.New("proof: header block number does not match proof block number")

	// ErrProofValidationFailure is returned when a replayed Merkle path
	// doesn't reproduce the trusted root.
	ErrProofValidationFailure = errors.New("proof: validation failed")
)

// EpochNotMatchForHeaderError reports a header whose epoch
// (number/epoch.Size) disagrees with the epoch it was proved against.
type EpochNotMatchForHeaderError struct {
	BlockNumber ethereum.BlockNumber
	BlockEpoch  uint64
	EpochNumber uint64
}

func (e *EpochNotMatchForHeaderError) Error() string {
	return fmt.Sprintf("proof: header %d belongs to epoch %d, not epoch %d", e.BlockNumber, e.BlockEpoch, e.EpochNumber)
}

// EpochNotFoundInProvidedListError is returned by batch generation when a
// header's epoch isn't among the epochs supplied.
type EpochNotFoundInProvidedListError struct {
	BlockEpoch uint64
	EpochList  []uint64
}

func (e *EpochNotFoundInProvidedListError) Error() string {
	return fmt.Sprintf("proof: epoch %d not found in provided epoch list %v", e.BlockEpoch, e.EpochList)
}
