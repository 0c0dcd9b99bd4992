// Copyright 2025 Certen Protocol

package execution

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/certen/independant-validator/pkg/ethereum"
)

// RecomputeBlockHash RLP-encodes the header's canonical fields (including
// whichever post-fork optional fields are present) and returns its
// Keccak-256 hash, reusing go-ethereum's own Header type so the field
// order and optional-field handling is exactly what go-ethereum itself
// implements for Header.Hash().
func RecomputeBlockHash(h *ethereum.BlockHeader) common.Hash {
	gh := &gethtypes.Header{
		ParentHash:  h.ParentHash,
		UncleHash:   h.UncleHash,
		Coinbase:    h.Coinbase,
		Root:        h.StateRoot,
		TxHash:      h.TransactionsRoot,
		ReceiptHash: h.ReceiptRoot,
		Bloom:       gethtypes.BytesToBloom(h.LogsBloom[:]),
		Difficulty:  h.Difficulty,
		Number:      new(big.Int).SetUint64(uint64(h.Number)),
		GasLimit:    h.GasLimit,
		GasUsed:     h.GasUsed,
		Time:        h.Timestamp,
		Extra:       h.ExtraData,
		MixDigest:   h.MixHash,
		Nonce:       gethtypes.EncodeNonce(h.Nonce),
	}

	if h.BaseFeePerGas != nil {
		gh.BaseFee = h.BaseFeePerGas
	}
	if h.WithdrawalsRoot != nil {
		gh.WithdrawalsHash = h.WithdrawalsRoot
	}
	if h.BlobGasUsed != nil {
		gh.BlobGasUsed = h.BlobGasUsed
	}
	if h.ExcessBlobGas != nil {
		gh.ExcessBlobGas = h.ExcessBlobGas
	}
	if h.ParentBeaconRoot != nil {
		gh.ParentBeaconRoot = h.ParentBeaconRoot
	}

	return gh.Hash()
}
