// Copyright 2025 Certen Protocol

package streamblock

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/certen/independant-validator/pkg/ethereum"
	"github.com/certen/independant-validator/pkg/execution"
)

// decodeBlock parses the inner Ethereum Block message per fields.go's
// field-number table.
func decodeBlock(buf []byte) (*ethereum.Block, error) {
	fs, err := parseFields(buf)
	if err != nil {
		return nil, err
	}

	headerBuf := fs.bytes(fieldBlockHeader)
	if headerBuf == nil {
		return nil, ErrMissingHeader
	}
	header, err := decodeHeader(headerBuf)
	if err != nil {
		return nil, err
	}
	header.Number = ethereum.BlockNumber(fs.varint(fieldBlockNumber))
	if h := fs.bytes(fieldBlockHash); h != nil {
		header.Hash = bytesToHash(h)
	}

	var traces []ethereum.TransactionTrace
	for _, tb := range fs.bytesFields[fieldBlockTraces] {
		tr, err := decodeTrace(tb)
		if err != nil {
			return nil, err
		}
		traces = append(traces, *tr)
	}

	return &ethereum.Block{Header: header, TransactionTraces: traces}, nil
}

func decodeHeader(buf []byte) (ethereum.BlockHeader, error) {
	fs, err := parseFields(buf)
	if err != nil {
		return ethereum.BlockHeader{}, err
	}

	h := ethereum.BlockHeader{
		ParentHash:       bytesToHash(fs.bytes(fieldHdrParentHash)),
		UncleHash:        bytesToHash(fs.bytes(fieldHdrUncleHash)),
		Coinbase:         bytesToAddress(fs.bytes(fieldHdrCoinbase)),
		StateRoot:        bytesToHash(fs.bytes(fieldHdrStateRoot)),
		TransactionsRoot: bytesToHash(fs.bytes(fieldHdrTransactionsRoot)),
		ReceiptRoot:      bytesToHash(fs.bytes(fieldHdrReceiptRoot)),
		Difficulty:       bytesToBigInt(fs.bytes(fieldHdrDifficulty)),
		Number:           ethereum.BlockNumber(fs.varint(fieldHdrNumber)),
		GasLimit:         fs.varint(fieldHdrGasLimit),
		GasUsed:          fs.varint(fieldHdrGasUsed),
		Timestamp:        fs.varint(fieldHdrTimestamp),
		ExtraData:        fs.bytes(fieldHdrExtraData),
		MixHash:          bytesToHash(fs.bytes(fieldHdrMixHash)),
		Nonce:            fs.varint(fieldHdrNonce),
		TotalDifficulty:  bytesToBigInt(fs.bytes(fieldHdrTotalDifficulty)),
	}

	if bloom := fs.bytes(fieldHdrLogsBloom); bloom != nil {
		b, err := bytesToBloom(bloom)
		if err != nil {
			return ethereum.BlockHeader{}, err
		}
		h.LogsBloom = b
	}

	if bf := fs.bytes(fieldHdrBaseFeePerGas); bf != nil {
		h.BaseFeePerGas = bytesToBigInt(bf)
	}
	if wr := fs.bytes(fieldHdrWithdrawalsRoot); wr != nil {
		v := common.Hash(bytesToHash(wr))
		h.WithdrawalsRoot = &v
	}
	if _, ok := fs.varintFields[fieldHdrBlobGasUsed]; ok {
		v := fs.varint(fieldHdrBlobGasUsed)
		h.BlobGasUsed = &v
	}
	if _, ok := fs.varintFields[fieldHdrExcessBlobGas]; ok {
		v := fs.varint(fieldHdrExcessBlobGas)
		h.ExcessBlobGas = &v
	}
	if pbr := fs.bytes(fieldHdrParentBeaconRoot); pbr != nil {
		v := common.Hash(bytesToHash(pbr))
		h.ParentBeaconRoot = &v
	}

	return h, nil
}

func decodeTrace(buf []byte) (*ethereum.TransactionTrace, error) {
	fs, err := parseFields(buf)
	if err != nil {
		return nil, err
	}

	t := &ethereum.TransactionTrace{
		Index:             fs.varint(fieldTraceIndex),
		Type:              ethereum.TxType(fs.varint(fieldTraceType)),
		Nonce:             fs.varint(fieldTraceNonce),
		GasPrice:          bytesToBigIntOrNil(fs.bytes(fieldTraceGasPrice)),
		GasTipCap:         bytesToBigIntOrNil(fs.bytes(fieldTraceGasTipCap)),
		GasFeeCap:         bytesToBigIntOrNil(fs.bytes(fieldTraceGasFeeCap)),
		Gas:               fs.varint(fieldTraceGas),
		Value:             bytesToBigInt(fs.bytes(fieldTraceValue)),
		Data:              fs.bytes(fieldTraceData),
		V:                 bytesToBigIntOrNil(fs.bytes(fieldTraceV)),
		R:                 bytesToBigIntOrNil(fs.bytes(fieldTraceR)),
		S:                 bytesToBigIntOrNil(fs.bytes(fieldTraceS)),
		Success:           fs.varint(fieldTraceSuccess) != 0,
		CumulativeGasUsed: fs.varint(fieldTraceCumGasUsed),
		StateRoot:         fs.bytes(fieldTraceStateRoot),
		ChainID:           bytesToBigIntOrNil(fs.bytes(fieldTraceChainID)),
	}

	if to := fs.bytes(fieldTraceTo); to != nil {
		a := common.Address(bytesToAddress(to))
		t.To = &a
	}

	if bloom := fs.bytes(fieldTraceLogsBloom); bloom != nil {
		b, err := bytesToBloom(bloom)
		if err != nil {
			return nil, err
		}
		t.LogsBloom = b
	}

	// t.AccessList and t.BlobVersionedHashes feed pkg/execution's
	// AccessListTx/DynamicFeeTx/BlobTx reconstruction and are left at their
	// zero value here: this decoder's field table (fields.go) has no entry
	// for either repeated nested message, since no schema is available to
	// ground a wire layout for them against. A transaction trace of one of
	// those three types therefore reconstructs with an empty access list
	// and no blob hashes.

	return t, nil
}

func bytesToHash(b []byte) (h [32]byte) {
	if b == nil {
		return h
	}
	copy(h[:], b)
	return h
}

func bytesToAddress(b []byte) (a [20]byte) {
	if b == nil {
		return a
	}
	copy(a[:], b)
	return a
}

func bytesToBigInt(b []byte) *big.Int {
	if b == nil {
		return big.NewInt(0)
	}
	return new(big.Int).SetBytes(b)
}

func bytesToBigIntOrNil(b []byte) *big.Int {
	if b == nil {
		return nil
	}
	return new(big.Int).SetBytes(b)
}

func bytesToBloom(b []byte) (out [256]byte, err error) {
	if len(b) != 256 {
		return out, execution.ErrInvalidBloom
	}
	copy(out[:], b)
	return out, nil
}
