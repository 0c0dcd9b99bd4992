// Copyright 2025 Certen Protocol

package capella

import (
	"github.com/certen/independant-validator/pkg/consensus/era"
	"github.com/certen/independant-validator/pkg/ethereum"
	"github.com/certen/independant-validator/pkg/merkle"
)

// Variant tags which fork schema a PostCapellaProof's execution_block_proof
// was generated against: Capella blocks prove an 11-sibling path, Deneb
// blocks (which grew the beacon-block schema) prove 12.
type Variant uint8

const (
	Capella Variant = iota
	Deneb
)

func (v Variant) String() string {
	switch v {
	case Capella:
		return "Capella"
	case Deneb:
		return "Deneb"
	default:
		return "unknown"
	}
}

// executionInBeaconGeneralizedIndex is the SSZ path BeaconBlock → body[4] →
// execution_payload[9] → block_hash[12], a constant fact about the
// beacon-block schema that must never be re-derived.
const executionInBeaconGeneralizedIndex = 3228

// beaconInSummaryProofLength is the fixed depth of the Vector[Root, 8192]
// beacon-block-roots tree inside a HistoricalSummary.
const beaconInSummaryProofLength = 13

// PostCapellaProof proves a single execution block belongs to canonical
// history without requiring the caller to materialize its entire era.
type PostCapellaProof struct {
	Variant Variant

	// BeaconBlockRoot is the tree-hash root of the beacon block that
	// carries the execution payload being proven.
	BeaconBlockRoot [32]byte

	// ExecutionBlockProof is the sibling path from the execution header
	// hash to BeaconBlockRoot: 11 elements for Capella, 12 for Deneb.
	ExecutionBlockProof [][32]byte

	// BeaconBlockProof is the 13-element sibling path from BeaconBlockRoot
	// to the era's block_summary_root.
	BeaconBlockProof [13][32]byte

	Slot uint64
}

// expectedExecutionProofLength returns the proof length a variant requires.
func (v Variant) expectedExecutionProofLength() int {
	if v == Deneb {
		return 12
	}
	return 11
}

// checkEraWindow implements step 1: Capella proofs are only valid for
// blocks in [SHANGHAI, DENEB); Deneb proofs only for blocks ≥ DENEB.
func checkEraWindow(variant Variant, blockNumber uint64) error {
	switch variant {
	case Capella:
		if blockNumber >= ethereum.ShanghaiBlock && blockNumber < ethereum.DenebBlock {
			return nil
		}
	case Deneb:
		if blockNumber >= ethereum.DenebBlock {
			return nil
		}
	default:
		return ErrInvalidProofVariant
	}
	return &EraValidationError{Variant: variant, BlockNumber: blockNumber}
}

// summaryIndices implements step 3's arithmetic: slot_rel, summary_index
// and block_root_index, rejecting a slot that predates the Capella fork.
func summaryIndices(slot uint64, summaryCount int) (summaryIndex, blockRootIndex uint64, err error) {
	capellaStartSlot := uint64(ethereum.CapellaForkEpoch) * ethereum.SlotsPerEpoch
	if slot < capellaStartSlot {
		return 0, 0, &SummaryIndexOutOfBoundsError{Slot: slot, SummaryIndex: 0, SummaryCount: uint64(summaryCount)}
	}
	slotRel := slot - capellaStartSlot
	summaryIndex = slotRel / ethereum.SlotsPerHistRoot
	blockRootIndex = slot % ethereum.SlotsPerHistRoot
	if summaryIndex >= uint64(summaryCount) {
		return summaryIndex, blockRootIndex, &SummaryIndexOutOfBoundsError{Slot: slot, SummaryIndex: summaryIndex, SummaryCount: uint64(summaryCount)}
	}
	return summaryIndex, blockRootIndex, nil
}

// VerifySingleHeader implements the 5-step algorithm: era-window check,
// execution-in-beacon proof, summary-index derivation, and
// beacon-in-summary proof, against a caller-supplied historical summaries
// table. summaries must never be silently defaulted to empty by the caller.
func VerifySingleHeader(blockNumber uint64, headerHash [32]byte, proof *PostCapellaProof, summaries era.Summaries) error {
	if err := checkEraWindow(proof.Variant, blockNumber); err != nil {
		return err
	}

	wantLen := proof.Variant.expectedExecutionProofLength()
	if len(proof.ExecutionBlockProof) != wantLen {
		return ErrProofValidationFailure
	}
	ok, err := merkle.VerifyGeneralizedIndexProof(headerHash, proof.ExecutionBlockProof, executionInBeaconGeneralizedIndex, wantLen, proof.BeaconBlockRoot)
	if err != nil || !ok {
		return ErrProofValidationFailure
	}

	summaryIndex, blockRootIndex, err := summaryIndices(proof.Slot, len(summaries))
	if err != nil {
		return err
	}

	summaryGeneralizedIndex := uint64(8192) + blockRootIndex
	ok, err = merkle.VerifyGeneralizedIndexProof(proof.BeaconBlockRoot, proof.BeaconBlockProof[:], summaryGeneralizedIndex, beaconInSummaryProofLength, summaries[summaryIndex].BlockSummaryRoot)
	if err != nil || !ok {
		return ErrProofValidationFailure
	}

	return nil
}
