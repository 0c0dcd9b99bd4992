// Copyright 2025 Certen Protocol

package execution

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/trie"

	"github.com/certen/independant-validator/pkg/ethereum"
)

// receiptList adapts a []*FullReceipt to go-ethereum's DerivableList so its
// trie root can be computed with the same machinery core/types uses for
// ReceiptHash: keys are the RLP encoding of the transaction index (so
// indices below 128 land as a single byte, matching the yellow paper),
// values are the typed receipt encoding from encodeReceipt.
type receiptList struct {
	receipts    []*ethereum.FullReceipt
	blockNumber ethereum.BlockNumber
}

func (l receiptList) Len() int { return len(l.receipts) }

func (l receiptList) EncodeIndex(i int, buf *bytes.Buffer) {
	enc, err := encodeReceipt(l.receipts[i], l.blockNumber)
	if err != nil {
		// DerivableList has no error return; a malformed receipt here
		// indicates a bug upstream in trace decoding, not bad input.
		panic(err)
	}
	buf.Write(enc)
}

// transactionList adapts a []*gethtypes.Transaction to DerivableList,
// encoding each with its own canonical (possibly EIP-2718 typed) RLP form.
type transactionList struct {
	txs []*gethtypes.Transaction
}

func (l transactionList) Len() int { return len(l.txs) }

func (l transactionList) EncodeIndex(i int, buf *bytes.Buffer) {
	if err := l.txs[i].EncodeRLP(buf); err != nil {
		panic(err)
	}
}

// ReceiptsRoot reconstructs the receipts trie from a block's traces and
// returns its root, ready for comparison against header.ReceiptRoot.
func ReceiptsRoot(traces []ethereum.TransactionTrace, blockNumber ethereum.BlockNumber) (common.Hash, error) {
	receipts := make([]*ethereum.FullReceipt, len(traces))
	for i := range traces {
		r, err := ethereum.NewFullReceipt(&traces[i])
		if err != nil {
			return common.Hash{}, err
		}
		receipts[i] = r
	}
	root := gethtypes.DeriveSha(receiptList{receipts: receipts, blockNumber: blockNumber}, trie.NewStackTrie(nil))
	return root, nil
}

// TransactionsRoot reconstructs the signed-transaction trie from a block's
// traces and returns its root, ready for comparison against
// header.TransactionsRoot.
func TransactionsRoot(traces []ethereum.TransactionTrace) (common.Hash, error) {
	txs := make([]*gethtypes.Transaction, len(traces))
	for i, t := range traces {
		tx, err := reconstructTransaction(t)
		if err != nil {
			return common.Hash{}, err
		}
		txs[i] = tx
	}
	root := gethtypes.DeriveSha(transactionList{txs: txs}, trie.NewStackTrie(nil))
	return root, nil
}

// reconstructTransaction rebuilds the canonical signed transaction from a
// trace, including recovered signature components, access lists for
// EIP-2930+ and the fee parameters appropriate to its type.
func reconstructTransaction(t ethereum.TransactionTrace) (*gethtypes.Transaction, error) {
	var inner gethtypes.TxData

	switch t.Type {
	case ethereum.LegacyTxType:
		inner = &gethtypes.LegacyTx{
			Nonce:    t.Nonce,
			GasPrice: t.GasPrice,
			Gas:      t.Gas,
			To:       t.To,
			Value:    t.Value,
			Data:     t.Data,
			V:        t.V,
			R:        t.R,
			S:        t.S,
		}
	case ethereum.AccessListTxType:
		inner = &gethtypes.AccessListTx{
			ChainID:    t.ChainID,
			Nonce:      t.Nonce,
			GasPrice:   t.GasPrice,
			Gas:        t.Gas,
			To:         t.To,
			Value:      t.Value,
			Data:       t.Data,
			AccessList: t.AccessList,
			V:          t.V,
			R:          t.R,
			S:          t.S,
		}
	case ethereum.DynamicFeeTxType:
		inner = &gethtypes.DynamicFeeTx{
			ChainID:    t.ChainID,
			Nonce:      t.Nonce,
			GasTipCap:  t.GasTipCap,
			GasFeeCap:  t.GasFeeCap,
			Gas:        t.Gas,
			To:         t.To,
			Value:      t.Value,
			Data:       t.Data,
			AccessList: t.AccessList,
			V:          t.V,
			R:          t.R,
			S:          t.S,
		}
	case ethereum.BlobTxType:
		blobTx := &gethtypes.BlobTx{
			ChainID:    uint256FromBig(t.ChainID),
			Nonce:      t.Nonce,
			GasTipCap:  uint256FromBig(t.GasTipCap),
			GasFeeCap:  uint256FromBig(t.GasFeeCap),
			Gas:        t.Gas,
			Value:      uint256FromBig(t.Value),
			Data:       t.Data,
			AccessList: t.AccessList,
			V:          uint256FromBig(t.V),
			R:          uint256FromBig(t.R),
			S:          uint256FromBig(t.S),
		}
		if t.To != nil {
			blobTx.To = *t.To
		}
		for _, h := range t.BlobVersionedHashes {
			blobTx.BlobHashes = append(blobTx.BlobHashes, h)
		}
		inner = blobTx
	default:
		return nil, ErrUnsupportedTxType
	}

	return gethtypes.NewTx(inner), nil
}

// encodeReceipt produces the canonical RLP (and, post-Byzantium,
// EIP-2718-typed) encoding of a receipt, delegating to go-ethereum's own
// Receipt.MarshalBinary so the Byzantium-boundary switch between the
// legacy post-state field and the success-flag status byte is exactly the
// one go-ethereum itself implements.
func encodeReceipt(r *ethereum.FullReceipt, blockNumber ethereum.BlockNumber) ([]byte, error) {
	gr := &gethtypes.Receipt{
		Type:              uint8(r.TxType),
		CumulativeGasUsed: r.CumulativeGasUsed,
		Bloom:             gethtypes.BytesToBloom(r.LogsBloom[:]),
		Logs:              r.Logs,
	}

	if ethereum.IsByzantium(blockNumber) {
		if r.Success {
			gr.Status = gethtypes.ReceiptStatusSuccessful
		} else {
			gr.Status = gethtypes.ReceiptStatusFailed
		}
	} else {
		gr.PostState = r.StateRoot
	}

	return gr.MarshalBinary()
}
