// Copyright 2025 Certen Protocol

package capella

import (
	"errors"
	"testing"

	"github.com/certen/independant-validator/pkg/consensus/era"
	"github.com/certen/independant-validator/pkg/ethereum"
	"github.com/certen/independant-validator/pkg/merkle"
)

// zeroHashPath returns the canonical SSZ "zero hashes" array
// [ZeroHash(0), ZeroHash(1), ..., ZeroHash(n-1)], the sibling path an
// all-default subtree presents at every level.
func zeroHashPath(t *testing.T, n int) [][32]byte {
	t.Helper()
	out := make([][32]byte, n)
	for i := 0; i < n; i++ {
		h, err := merkle.ZeroHash(i)
		if err != nil {
			t.Fatalf("ZeroHash(%d): %v", i, err)
		}
		out[i] = h
	}
	return out
}

func mustZeroHash(t *testing.T, depth int) [32]byte {
	t.Helper()
	h, err := merkle.ZeroHash(depth)
	if err != nil {
		t.Fatalf("ZeroHash(%d): %v", depth, err)
	}
	return h
}

// TestVerifySingleHeaderAllZeroDefaultTree is scenario 6: an all-default
// beacon-block and execution-payload subtree proves against the zero hash
// at each level, and flipping any single proof bit must fail. The beacon
// root is ZeroHash(12), so its summary path continues the zero-hash chain
// from depth 12: siblings ZeroHash(12)..ZeroHash(24), root ZeroHash(25).
func TestVerifySingleHeaderAllZeroDefaultTree(t *testing.T) {
	headerHash := [32]byte{}
	execProof := zeroHashPath(t, 12)
	beaconRoot := mustZeroHash(t, 12)

	var beaconProofArr [13][32]byte
	for i := range beaconProofArr {
		beaconProofArr[i] = mustZeroHash(t, 12+i)
	}
	summaryRoot := mustZeroHash(t, 25)

	summaries := era.Summaries{{BlockSummaryRoot: summaryRoot}}

	slot := uint64(ethereum.CapellaForkEpoch) * ethereum.SlotsPerEpoch

	proof := &PostCapellaProof{
		Variant:             Deneb,
		BeaconBlockRoot:     beaconRoot,
		ExecutionBlockProof: execProof,
		BeaconBlockProof:    beaconProofArr,
		Slot:                slot,
	}

	blockNumber := uint64(ethereum.DenebBlock)

	if err := VerifySingleHeader(blockNumber, headerHash, proof, summaries); err != nil {
		t.Fatalf("VerifySingleHeader: %v", err)
	}

	tampered := *proof
	tampered.ExecutionBlockProof = append([][32]byte{}, execProof...)
	tampered.ExecutionBlockProof[0][0] ^= 0x01
	if err := VerifySingleHeader(blockNumber, headerHash, &tampered, summaries); err != ErrProofValidationFailure {
		t.Fatalf("err = %v, want ErrProofValidationFailure", err)
	}

	tampered2 := *proof
	tampered2.BeaconBlockProof[0][0] ^= 0x01
	if err := VerifySingleHeader(blockNumber, headerHash, &tampered2, summaries); err != ErrProofValidationFailure {
		t.Fatalf("err = %v, want ErrProofValidationFailure", err)
	}
}

func TestVerifySingleHeaderRejectsCapellaProofAtDenebBlock(t *testing.T) {
	proof := &PostCapellaProof{
		Variant:             Capella,
		ExecutionBlockProof: make([][32]byte, 11),
	}
	err := VerifySingleHeader(ethereum.DenebBlock, [32]byte{}, proof, era.Summaries{{}})
	var eraErr *EraValidationError
	if !errors.As(err, &eraErr) {
		t.Fatalf("err = %v, want *EraValidationError", err)
	}
}

func TestVerifySingleHeaderRejectsSlotBeforeCapella(t *testing.T) {
	// A valid execution-in-beacon proof, so verification reaches the
	// summary-index step.
	proof := &PostCapellaProof{
		Variant:             Deneb,
		BeaconBlockRoot:     mustZeroHash(t, 12),
		ExecutionBlockProof: zeroHashPath(t, 12),
		Slot:                0,
	}
	err := VerifySingleHeader(ethereum.DenebBlock, [32]byte{}, proof, era.Summaries{{}})
	var boundsErr *SummaryIndexOutOfBoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("err = %v, want *SummaryIndexOutOfBoundsError", err)
	}
}
