// Copyright 2025 Certen Protocol
//
// Package beacon models a beacon-chain block as a small capability set
// over the fork it belongs to: ExecutionPayloadBlockHash() and
// TreeHashRoot(), the only two operations the era validators need. The
// full per-fork BeaconBlockBody schema (Base through Gloas) is out of
// scope for this toolkit — it only ever needs whole-block tree-hash roots
// and, where present, the execution payload's block hash — so BodyRoot is
// accepted as a pre-computed SSZ root rather than recursively decoded.

package beacon

import (
	"github.com/certen/independant-validator/pkg/merkle"
)

// Fork identifies which beacon-chain fork a block belongs to.
type Fork uint8

const (
	Base Fork = iota
	Altair
	Bellatrix
	Capella
	Deneb
	Electra
	Fulu
	Gloas
)

// HasExecutionPayload reports whether blocks of this fork carry an
// execution payload at all: Base and Altair predate Bellatrix.
func (f Fork) HasExecutionPayload() bool {
	return f >= Bellatrix
}

// Block is a beacon-chain block reduced to the fields the era validators
// need: its top-level SSZ container fields plus, where applicable, the
// execution payload's block hash.
type Block struct {
	Fork          Fork
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    [32]byte
	StateRoot     [32]byte
	// BodyRoot is the tree-hash root of the block's body, computed
	// upstream against the fork-specific BeaconBlockBody schema.
	BodyRoot [32]byte

	// ExecutionBlockHash is the execution payload's block_hash field, nil
	// for forks that predate the execution payload (Base, Altair).
	ExecutionBlockHash *[32]byte
}

// ExecutionPayloadBlockHash returns the block's execution-payload block
// hash, or nil if the fork predates execution payloads or the payload was
// not supplied.
func (b *Block) ExecutionPayloadBlockHash() *[32]byte {
	if !b.Fork.HasExecutionPayload() {
		return nil
	}
	return b.ExecutionBlockHash
}

// uint64Chunk encodes a uint64 (slot, proposer index) as its little-endian SSZ chunk.
func uint64Chunk(n uint64) [32]byte {
	var out [32]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(n >> (8 * i))
	}
	return out
}

// TreeHashRoot computes the SSZ container tree-hash root over the block's
// five top-level fields (slot, proposer_index, parent_root, state_root,
// body_root), padded to the next power of two (8) with zero chunks, as
// SSZ container merkleization requires.
func (b *Block) TreeHashRoot() [32]byte {
	leaves := [8][32]byte{
		uint64Chunk(b.Slot),
		uint64Chunk(b.ProposerIndex),
		b.ParentRoot,
		b.StateRoot,
		b.BodyRoot,
	}
	tree, err := merkle.BuildFixedTree(leaves[:], 3)
	if err != nil {
		panic(err) // unreachable: 8 leaves always fits depth 3
	}
	return tree.Root()
}
