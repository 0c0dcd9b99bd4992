// Copyright 2025 Certen Protocol

package ssz

import (
	"math/big"
	"testing"

	"github.com/certen/independant-validator/pkg/epoch"
	"github.com/certen/independant-validator/pkg/ethereum"
	"github.com/certen/independant-validator/pkg/merkle"
)

func buildRecords(n int) []epoch.HeaderRecord {
	records := make([]epoch.HeaderRecord, n)
	for i := range records {
		var hash [32]byte
		hash[0] = byte(i)
		hash[1] = byte(i >> 8)
		records[i] = epoch.HeaderRecord{
			BlockHash:       hash,
			TotalDifficulty: big.NewInt(int64(i) + 1),
			BlockNumber:     ethereum.BlockNumber(i),
		}
	}
	return records
}

func TestHeaderRecordRootDeterministic(t *testing.T) {
	r := buildRecords(1)[0]
	root1 := HeaderRecordRoot(r)
	root2 := HeaderRecordRoot(r)
	if root1 != root2 {
		t.Fatalf("HeaderRecordRoot is not deterministic")
	}

	other := r
	other.BlockNumber = r.BlockNumber + 1 // BlockNumber isn't part of the SSZ container...
	if HeaderRecordRoot(other) != root1 {
		t.Fatalf("BlockNumber unexpectedly changed HeaderRecordRoot")
	}

	other2 := r
	other2.TotalDifficulty = big.NewInt(0).Add(r.TotalDifficulty, big.NewInt(1))
	if HeaderRecordRoot(other2) == root1 {
		t.Fatalf("changing TotalDifficulty did not change HeaderRecordRoot")
	}
}

func TestAccumulatorRootMatchesMixedInLengthOfTree(t *testing.T) {
	records := buildRecords(epoch.Size)

	root, err := AccumulatorRoot(records)
	if err != nil {
		t.Fatalf("AccumulatorRoot: %v", err)
	}

	tree, err := AccumulatorTree(records)
	if err != nil {
		t.Fatalf("AccumulatorTree: %v", err)
	}
	want := merkle.MixInLength(tree.Root(), uint64(len(records)))

	if root != want {
		t.Fatalf("AccumulatorRoot = %x, want %x", root, want)
	}
}

func TestAccumulatorTreeSiblingPathReplaysToDataRoot(t *testing.T) {
	records := buildRecords(epoch.Size)

	tree, err := AccumulatorTree(records)
	if err != nil {
		t.Fatalf("AccumulatorTree: %v", err)
	}

	leaf := HeaderRecordRoot(records[42])
	path, err := tree.SiblingPath(42)
	if err != nil {
		t.Fatalf("SiblingPath: %v", err)
	}

	replayed := merkle.ReplaySiblingPath(leaf, 42, path)
	if replayed != tree.Root() {
		t.Fatalf("replayed root does not match tree root")
	}
}

func TestBeaconBlockRootsTreeHasNoLengthMixin(t *testing.T) {
	roots := make([][32]byte, epoch.Size)
	for i := range roots {
		roots[i][0] = byte(i)
	}

	tree, err := BeaconBlockRootsTree(roots)
	if err != nil {
		t.Fatalf("BeaconBlockRootsTree: %v", err)
	}

	// A Vector's root is the raw tree root: no MixInLength step.
	plain, err := merkle.BuildFixedTree(roots, accumulatorDepth)
	if err != nil {
		t.Fatalf("BuildFixedTree: %v", err)
	}
	if tree.Root() != plain.Root() {
		t.Fatalf("BeaconBlockRootsTree root does not match a plain fixed tree root")
	}
}
