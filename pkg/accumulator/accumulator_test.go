// Copyright 2025 Certen Protocol

package accumulator

import (
	"math/big"
	"testing"

	"github.com/certen/independant-validator/pkg/epoch"
	"github.com/certen/independant-validator/pkg/ethereum"
	ethssz "github.com/certen/independant-validator/pkg/ssz"
)

func buildEpoch(t *testing.T, number uint64) *epoch.Epoch {
	t.Helper()
	records := make([]epoch.HeaderRecord, epoch.Size)
	for i := range records {
		blockNumber := number*epoch.Size + uint64(i)
		var hash [32]byte
		hash[0] = byte(blockNumber)
		hash[1] = byte(blockNumber >> 8)
		hash[2] = byte(blockNumber >> 16)
		records[i] = epoch.HeaderRecord{
			BlockHash:       hash,
			TotalDifficulty: big.NewInt(int64(blockNumber) + 1),
			BlockNumber:     ethereum.BlockNumber(blockNumber),
		}
	}
	e, err := epoch.New(records)
	if err != nil {
		t.Fatalf("epoch.New: %v", err)
	}
	return e
}

func TestValidateEraAcceptsMatchingRoot(t *testing.T) {
	e := buildEpoch(t, 5)
	root, err := ethssz.AccumulatorRoot(e.Records())
	if err != nil {
		t.Fatalf("AccumulatorRoot: %v", err)
	}

	table := make([][32]byte, 6)
	table[5] = root
	v := NewWithTable(table)

	if err := v.ValidateEra(e); err != nil {
		t.Fatalf("ValidateEra: %v", err)
	}
}

func TestValidateEraRejectsMismatchedRoot(t *testing.T) {
	e := buildEpoch(t, 0)
	v := NewWithTable([][32]byte{{0xff}})

	err := v.ValidateEra(e)
	mismatch, ok := err.(*EraAccumulatorMismatchError)
	if !ok {
		t.Fatalf("err = %v (%T), want *EraAccumulatorMismatchError", err, err)
	}
	if mismatch.Epoch != 0 {
		t.Fatalf("mismatch.Epoch = %d, want 0", mismatch.Epoch)
	}
}

func TestValidateEraRejectsEpochPastMergeBoundary(t *testing.T) {
	e := buildEpoch(t, MaxPreMergeEpoch+1)
	v := NewDefault()

	err := v.ValidateEra(e)
	boundsErr, ok := err.(*EpochOutOfBoundsError)
	if !ok {
		t.Fatalf("err = %v (%T), want *EpochOutOfBoundsError", err, err)
	}
	if boundsErr.MaxEpoch != MaxPreMergeEpoch {
		t.Fatalf("boundsErr.MaxEpoch = %d, want %d", boundsErr.MaxEpoch, MaxPreMergeEpoch)
	}
}

func TestRootAtReturnsTrustedEntry(t *testing.T) {
	v := NewDefault()
	root, err := v.RootAt(0)
	if err != nil {
		t.Fatalf("RootAt: %v", err)
	}
	want := mustHexRoot("5ec1ffb8c3b146f42606c74ced973dc16ec5a107c0345858c343fc94780b4218")
	if root != want {
		t.Fatalf("RootAt(0) = %x, want %x", root, want)
	}

	if _, err := v.RootAt(uint64(len(defaultHistoricalEpochRoots))); err == nil {
		t.Fatalf("RootAt(out of range) = nil error, want EpochOutOfBoundsError")
	}
}
