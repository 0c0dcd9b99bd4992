// Copyright 2025 Certen Protocol
//
// Package ssz computes SSZ tree-hash roots for the fixed container and
// list/vector shapes this toolkit needs: HeaderRecord containers, the
// List[HeaderRecord, 8192] pre-Merge epoch accumulator, and the
// Vector[Root, 8192] post-Merge beacon-block-roots tree.
//
// The merkleization algorithm (zero-hash padding, length mix-in) mirrors
// the one karalabe/ssz implements internally (Hasher.merkleizeImpl /
// merkleizeWithMixin); it is reimplemented directly against
// pkg/merkle's FixedTree rather than invoking karalabe/ssz's API, since
// its confirmed top-level entry point for hashing arbitrary objects could
// not be verified against the vendored source available to this project.

package ssz

import (
	"math/big"

	"github.com/certen/independant-validator/pkg/epoch"
	"github.com/certen/independant-validator/pkg/merkle"
)

// accumulatorDepth is log2(epoch.Size): 8192 = 2^13.
const accumulatorDepth = 13

// Uint256Chunk serializes a uint256 as its little-endian 32-byte SSZ chunk.
func Uint256Chunk(n *big.Int) [32]byte {
	var out [32]byte
	if n == nil {
		return out
	}
	b := n.Bytes() // big-endian
	for i := 0; i < len(b) && i < 32; i++ {
		out[i] = b[len(b)-1-i]
	}
	return out
}

// HeaderRecordRoot computes the SSZ container tree-hash root of
// { block_hash: Bytes32, total_difficulty: Uint256 }: a two-field
// container hashes to sha256(field0_root || field1_root) directly, since
// two leaves form a perfect binary tree of depth one.
func HeaderRecordRoot(r epoch.HeaderRecord) [32]byte {
	diff := Uint256Chunk(r.TotalDifficulty)
	tree, err := merkle.BuildFixedTree([][32]byte{r.BlockHash, diff}, 1)
	if err != nil {
		// Unreachable: exactly 2 leaves always fit depth 1.
		panic(err)
	}
	return tree.Root()
}

// AccumulatorRoot computes the tree-hash root of an SSZ
// List[HeaderRecord, 8192] built from an epoch's records: a depth-13
// Merkle tree over per-record container roots, with the 8192-element
// length mixed in at the end.
func AccumulatorRoot(records []epoch.HeaderRecord) ([32]byte, error) {
	leaves := make([][32]byte, len(records))
	for i, r := range records {
		leaves[i] = HeaderRecordRoot(r)
	}
	tree, err := merkle.BuildFixedTree(leaves, accumulatorDepth)
	if err != nil {
		return [32]byte{}, err
	}
	return merkle.MixInLength(tree.Root(), uint64(len(records))), nil
}

// AccumulatorTree builds the full depth-13 Merkle tree over an epoch's
// HeaderRecord container roots, for inclusion-proof generation.
func AccumulatorTree(records []epoch.HeaderRecord) (*merkle.FixedTree, error) {
	leaves := make([][32]byte, len(records))
	for i, r := range records {
		leaves[i] = HeaderRecordRoot(r)
	}
	return merkle.BuildFixedTree(leaves, accumulatorDepth)
}

// BeaconBlockRootsTree builds the post-Merge era's depth-13 Vector Merkle
// tree over 8192 beacon-block tree-hash roots. Unlike AccumulatorRoot,
// no length is mixed in: this is a fixed-length SSZ Vector, not a List.
func BeaconBlockRootsTree(roots [][32]byte) (*merkle.FixedTree, error) {
	return merkle.BuildFixedTree(roots, accumulatorDepth)
}
