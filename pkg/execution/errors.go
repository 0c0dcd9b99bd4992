// Copyright 2025 Certen Protocol
//
// Package execution reconstructs an Ethereum execution block's receipts
// and transactions tries from its traces, recomputes its block hash, and
// compares both against the values declared in the block's header.

package execution

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/certen/independant-validator/pkg/ethereum"
)

// Sentinel errors for block verification.
var (
	// ErrMissingReceipt is returned when a transaction trace carries no receipt sub-record.
	ErrMissingReceipt = errors.New("execution: transaction trace is missing its receipt")

	// ErrInvalidBloom is returned when a receipt's logs bloom is not exactly 256 bytes.
	ErrInvalidBloom = errors.New("execution: logs bloom must be exactly 256 bytes")

	// ErrUnsupportedTxType is returned for a transaction type this verifier cannot encode.
	ErrUnsupportedTxType = errors.New("execution: unsupported transaction type")
)

// RootMismatchError reports a computed trie root that disagrees with the
// value declared in the block header. Root mismatches are fatal per block.
type RootMismatchError struct {
	BlockNumber ethereum.BlockNumber
	Field       string // "receipts_root", "transactions_root"
	Expected    common.Hash
	Actual      common.Hash
}

func (e *RootMismatchError) Error() string {
	return fmt.Sprintf("execution: block %d %s mismatch: expected %s, got %s",
		e.BlockNumber, e.Field, e.Expected.Hex(), e.Actual.Hex())
}

// BlockHashMismatchError reports a recomputed block hash that disagrees
// with the block's recorded hash.
type BlockHashMismatchError struct {
	BlockNumber ethereum.BlockNumber
	Expected    common.Hash
	Actual      common.Hash
}

func (e *BlockHashMismatchError) Error() string {
	return fmt.Sprintf("execution: block %d hash mismatch: expected %s, got %s",
		e.BlockNumber, e.Expected.Hex(), e.Actual.Hex())
}
