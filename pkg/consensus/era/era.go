// Copyright 2025 Certen Protocol

package era

import (
	"github.com/certen/independant-validator/pkg/consensus/beacon"
	"github.com/certen/independant-validator/pkg/epoch"
	"github.com/certen/independant-validator/pkg/ethereum"
	ethssz "github.com/certen/independant-validator/pkg/ssz"
)

// Summary is a post-Capella HistoricalSummary: a Merkle root over an
// era's 8192 beacon-block roots, paired with the era's state summary root.
type Summary struct {
	BlockSummaryRoot [32]byte
	StateSummaryRoot [32]byte
}

// Summaries is a caller-supplied, variable-length table of trusted
// HistoricalSummary entries, indexed by era − CAPELLA_FORK_EPOCH. It is
// never defaulted to empty: a caller must supply a real table to validate
// any post-Capella era.
type Summaries []Summary

// Validator proves that an era's beacon blocks match a caller-supplied
// HistoricalSummaries table. It holds no state beyond that table.
type Validator struct {
	summaries Summaries
}

// New constructs a Validator from a caller-supplied historical summaries
// table. Passing an empty table is valid syntactically but every
// ValidateEra call will then fail with EraOutOfBoundsError — there is no
// implicit default.
func New(summaries Summaries) *Validator {
	table := make(Summaries, len(summaries))
	copy(table, summaries)
	return &Validator{summaries: table}
}

// ValidateEra checks that execHashes[i] matches blocks[i]'s execution
// payload block hash for every slot, that the era starts on a slot-aligned
// boundary, and that the depth-13 Merkle root over the era's (filler-
// adjusted) beacon-block roots matches the trusted block_summary_root.
func (v *Validator) ValidateEra(execHashes []*[32]byte, blocks []*beacon.Block) error {
	if len(execHashes) != len(blocks) {
		return ErrMismatchedBlockCount
	}

	for i, b := range blocks {
		actual := b.ExecutionPayloadBlockHash()
		expected := execHashes[i]
		if !hashPtrEqual(actual, expected) {
			return &ExecutionBlockHashMismatchError{Slot: b.Slot, Expected: expected, Actual: actual}
		}
	}

	if len(blocks) == 0 {
		return &InvalidEraStartError{Slot: 0}
	}
	startSlot := blocks[0].Slot
	if startSlot%epoch.Size != 0 {
		return &InvalidEraStartError{Slot: startSlot}
	}
	eraNumber := startSlot / epoch.Size

	roots, err := blockRoots(blocks)
	if err != nil {
		return err
	}

	tree, err := ethssz.BeaconBlockRootsTree(roots)
	if err != nil {
		return err
	}
	computed := tree.Root()

	if eraNumber < ethereum.CapellaForkEpoch {
		return &InvalidEraStartError{Slot: startSlot}
	}
	eraIdx := eraNumber - ethereum.CapellaForkEpoch
	if eraIdx >= uint64(len(v.summaries)) {
		maxEra := uint64(0)
		if len(v.summaries) > 0 {
			maxEra = uint64(len(v.summaries)) - 1 + ethereum.CapellaForkEpoch
		}
		return &EraOutOfBoundsError{Era: eraNumber, MaxEra: maxEra}
	}

	expected := v.summaries[eraIdx].BlockSummaryRoot
	if computed != expected {
		return &InvalidBlockSummaryRootError{Era: eraNumber, Expected: expected, Actual: computed}
	}

	return nil
}

func hashPtrEqual(a, b *[32]byte) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// blockRoots computes the per-slot root contributed to the beacon-block-
// roots tree. A slot that exactly repeats the previous slot's block (the
// upstream feed's way of representing a missed slot) contributes the
// parent_root of the next non-repeated block instead of its own tree-hash
// root, per the filler rule in SPEC_FULL.md's Open Question decisions.
// Every non-filler block's parent_root is sanity-checked against the
// previous slot's computed root.
func blockRoots(blocks []*beacon.Block) ([][32]byte, error) {
	roots := make([][32]byte, len(blocks))

	for i, b := range blocks {
		if i > 0 && isRepeatOfPrevious(b, blocks[i-1]) {
			if next := nextNonRepeated(blocks, i); next != nil {
				roots[i] = next.ParentRoot
			} else {
				roots[i] = b.ParentRoot
			}
		} else {
			roots[i] = b.TreeHashRoot()
		}
	}

	for i := 1; i < len(blocks); i++ {
		if isRepeatOfPrevious(blocks[i], blocks[i-1]) {
			continue
		}
		if blocks[i].ParentRoot != roots[i-1] {
			return nil, &ParentRootMismatchError{Slot: blocks[i].Slot}
		}
	}

	return roots, nil
}

func isRepeatOfPrevious(b, prev *beacon.Block) bool {
	return b.ParentRoot == prev.ParentRoot &&
		b.StateRoot == prev.StateRoot &&
		b.BodyRoot == prev.BodyRoot
}

func nextNonRepeated(blocks []*beacon.Block, from int) *beacon.Block {
	for i := from + 1; i < len(blocks); i++ {
		if !isRepeatOfPrevious(blocks[i], blocks[i-1]) {
			return blocks[i]
		}
	}
	return nil
}
