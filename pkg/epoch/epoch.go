// Copyright 2025 Certen Protocol
//
// Package epoch groups pre-Merge execution blocks into fixed-size,
// sequential 8192-block epochs and exposes the SSZ accumulator leaf form
// used by the pre-Merge era validator and inclusion-proof engine.

package epoch

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/certen/independant-validator/pkg/ethereum"
)

// Size is the number of HeaderRecords in a well-formed epoch.
const Size = 8192

// HeaderRecord is the leaf type of the pre-Merge accumulator tree.
type HeaderRecord struct {
	BlockHash       [32]byte
	TotalDifficulty *big.Int
	BlockNumber     ethereum.BlockNumber
}

// Epoch is a fixed-size ordered array of exactly Size HeaderRecord values,
// all belonging to the same block_number/Size bucket with no gaps.
type Epoch struct {
	number  uint64
	records []HeaderRecord
}

// MissingBlockError reports a gap in the block-number sequence of a
// would-be epoch.
type MissingBlockError struct {
	Epoch  uint64
	Blocks []uint64
}

func (e *MissingBlockError) Error() string {
	return fmt.Sprintf("epoch %d: missing blocks %v", e.Epoch, e.Blocks)
}

// DuplicateBlockError reports two or more HeaderRecords sharing the same
// BlockNumber — distinct from MissingBlockError, which reports genuine gaps.
type DuplicateBlockError struct {
	Epoch  uint64
	Blocks []uint64
}

func (e *DuplicateBlockError) Error() string {
	return fmt.Sprintf("epoch %d: duplicate blocks %v", e.Epoch, e.Blocks)
}

// InvalidEpochLengthError reports a record count other than Size.
type InvalidEpochLengthError struct {
	Got int
}

func (e *InvalidEpochLengthError) Error() string {
	return fmt.Sprintf("epoch: invalid length %d, want %d", e.Got, Size)
}

// InvalidBlockInEpochError reports a record whose block_number/Size bucket
// disagrees with the rest of the epoch.
type InvalidBlockInEpochError struct {
	BlockNumber   ethereum.BlockNumber
	ExpectedEpoch uint64
}

func (e *InvalidBlockInEpochError) Error() string {
	return fmt.Sprintf("epoch: block %d does not belong to epoch %d", e.BlockNumber, e.ExpectedEpoch)
}

// New constructs an Epoch from an unordered slice of HeaderRecords,
// enforcing the invariants from the data model: sorted order, exact length,
// sequential block numbers, and a single shared epoch number.
func New(records []HeaderRecord) (*Epoch, error) {
	if len(records) != Size {
		return nil, &InvalidEpochLengthError{Got: len(records)}
	}

	sorted := make([]HeaderRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].BlockNumber < sorted[j].BlockNumber })

	epochNumber := uint64(sorted[0].BlockNumber) / Size

	var missing, duplicate []uint64
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1].BlockNumber, sorted[i].BlockNumber
		if cur == prev {
			duplicate = append(duplicate, uint64(cur))
			continue
		}
		if cur != prev+1 {
			for n := prev + 1; n < cur; n++ {
				missing = append(missing, uint64(n))
			}
		}
	}
	if len(duplicate) > 0 {
		return nil, &DuplicateBlockError{Epoch: epochNumber, Blocks: duplicate}
	}
	if len(missing) > 0 {
		return nil, &MissingBlockError{Epoch: epochNumber, Blocks: missing}
	}

	for _, r := range sorted {
		if uint64(r.BlockNumber)/Size != epochNumber {
			return nil, &InvalidBlockInEpochError{BlockNumber: r.BlockNumber, ExpectedEpoch: epochNumber}
		}
	}

	return &Epoch{number: epochNumber, records: sorted}, nil
}

// Number returns the epoch number, block_number/Size for every record it contains.
func (e *Epoch) Number() uint64 { return e.number }

// Records returns the epoch's HeaderRecords in ascending block-number order.
func (e *Epoch) Records() []HeaderRecord {
	out := make([]HeaderRecord, len(e.records))
	copy(out, e.records)
	return out
}

// At returns the HeaderRecord at the given index within the epoch (0..Size).
func (e *Epoch) At(index int) (HeaderRecord, error) {
	if index < 0 || index >= len(e.records) {
		return HeaderRecord{}, fmt.Errorf("epoch: index %d out of range [0,%d)", index, len(e.records))
	}
	return e.records[index], nil
}

// IndexOf returns the within-epoch slot for an absolute block number,
// equivalent to block_number mod Size.
func IndexOf(blockNumber ethereum.BlockNumber) int {
	return int(blockNumber % Size)
}

// NumberOf returns the epoch number an absolute block number falls in,
// equivalent to block_number / Size.
func NumberOf(blockNumber ethereum.BlockNumber) uint64 {
	return uint64(blockNumber) / Size
}
