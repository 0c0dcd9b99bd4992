// Copyright 2025 Certen Protocol
//
// Package ethereum holds the execution-layer value types this toolkit
// verifies: block headers, blocks, transaction traces and the receipts
// derived from them. Values are immutable once decoded.

package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// Fork-boundary constants (spec §6).
const (
	ByzantiumBlock = 4_370_000
	MergeBlock     = 15_537_394
	ShanghaiBlock  = 17_034_870
	DenebBlock     = 19_426_587

	// LastPreMergeBlock is the default stream-end boundary for stream_blocks.
	LastPreMergeBlock = MergeBlock - 1

	CapellaForkEpoch   = 194_048
	SlotsPerEpoch      = 32
	SlotsPerHistRoot   = 8192
)

// BlockNumber is an execution-block height. It is a distinct type from
// plain uint64 so that a block number can never be passed where a slot,
// epoch or era number is expected, or vice versa (spec §9's "newer,
// type-safe shape", grounded in the original's BlockNumber(pub u64)).
type BlockNumber uint64

// BlockHeader mirrors the Ethereum yellow-paper header plus the optional
// post-fork fields introduced by London, Shanghai and Deneb.
type BlockHeader struct {
	ParentHash       common.Hash
	UncleHash        common.Hash
	Coinbase         common.Address
	StateRoot        common.Hash
	TransactionsRoot common.Hash
	ReceiptRoot      common.Hash
	LogsBloom        [256]byte
	Difficulty       *big.Int
	Number           BlockNumber
	GasLimit         uint64
	GasUsed          uint64
	Timestamp        uint64
	ExtraData        []byte
	MixHash          common.Hash
	Nonce            uint64

	// Post-London.
	BaseFeePerGas *big.Int
	// Post-Shanghai.
	WithdrawalsRoot *common.Hash
	// Post-Deneb.
	BlobGasUsed      *uint64
	ExcessBlobGas    *uint64
	ParentBeaconRoot *common.Hash

	// TotalDifficulty and Hash are carried alongside the header rather than
	// derived, matching the data model's "also carries total_difficulty and
	// the canonical block hash" note; Hash is the value to verify against,
	// not trusted input.
	TotalDifficulty *big.Int
	Hash            common.Hash
}

// Block is the in-scope subset of a decoded execution block: its header,
// hash, number and transaction traces. Everything else (uncles, state
// diffs, balance changes) is opaque passthrough not modeled here.
type Block struct {
	Header            BlockHeader
	TransactionTraces []TransactionTrace
}

// TxType enumerates the EIP-2718 transaction type tag.
type TxType uint8

const (
	LegacyTxType     TxType = 0
	AccessListTxType TxType = 1
	DynamicFeeTxType TxType = 2
	BlobTxType       TxType = 3
)

// TransactionTrace carries everything recorded about one transaction's
// execution: its signed-transaction fields (enough to reconstruct the
// canonical RLP encoding) and its receipt sub-record.
type TransactionTrace struct {
	Index    uint64
	Type     TxType
	ChainID  *big.Int
	Nonce    uint64
	GasPrice *big.Int // legacy / access-list
	GasTipCap *big.Int // EIP-1559+
	GasFeeCap *big.Int // EIP-1559+
	Gas      uint64
	To       *common.Address
	Value    *big.Int
	Data     []byte

	AccessList gethtypes.AccessList

	// BlobVersionedHashes is populated for BlobTxType (EIP-4844).
	BlobVersionedHashes []common.Hash

	V, R, S *big.Int

	// Receipt sub-record.
	Success           bool
	CumulativeGasUsed uint64
	Logs              []*gethtypes.Log
	LogsBloom         [256]byte
	// StateRoot is populated only for pre-Byzantium receipts.
	StateRoot []byte
}

// FullReceipt is the receipt derived from a TransactionTrace, ready for
// RLP encoding into the receipts trie.
type FullReceipt struct {
	Success           bool
	TxType            TxType
	CumulativeGasUsed uint64
	Logs              []*gethtypes.Log
	LogsBloom         [256]byte
	// StateRoot is non-nil only for pre-Byzantium receipts.
	StateRoot []byte
}

// NewFullReceipt derives a FullReceipt from a trace. LogsBloom has already
// been validated and narrowed to its fixed 256-byte form by the decoder
// (pkg/streamblock's bytesToBloom) before a TransactionTrace ever reaches
// here.
func NewFullReceipt(t *TransactionTrace) (*FullReceipt, error) {
	return &FullReceipt{
		Success:           t.Success,
		TxType:            t.Type,
		CumulativeGasUsed: t.CumulativeGasUsed,
		Logs:              t.Logs,
		LogsBloom:         t.LogsBloom,
		StateRoot:         t.StateRoot,
	}, nil
}

// IsByzantium reports whether blockNumber uses Byzantium+ receipt encoding.
func IsByzantium(blockNumber BlockNumber) bool {
	return blockNumber >= ByzantiumBlock
}
