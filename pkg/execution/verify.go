// Copyright 2025 Certen Protocol

package execution

import (
	"log"
	"os"

	"github.com/certen/independant-validator/pkg/ethereum"
)

var logger = log.New(os.Stderr, "[execution] ", log.LstdFlags)

// VerifyBlock reconstructs b's receipts and transactions tries, recomputes
// its block hash, and compares all three against the values declared in
// b.Header. Block 0 (genesis) gets no special case here: it has no
// transactions, so with no traces both computed roots are the well-known
// empty-trie root and are compared like any other block's. Skipping
// verification for block 0 is left to the caller (pkg/streamblock only
// verifies blocks with number > 0).
func VerifyBlock(b *ethereum.Block) error {
	receiptsRoot, err := ReceiptsRoot(b.TransactionTraces, b.Header.Number)
	if err != nil {
		return err
	}
	if receiptsRoot != b.Header.ReceiptRoot {
		return &RootMismatchError{
			BlockNumber: b.Header.Number,
			Field:       "receipts_root",
			Expected:    b.Header.ReceiptRoot,
			Actual:      receiptsRoot,
		}
	}

	txRoot, err := TransactionsRoot(b.TransactionTraces)
	if err != nil {
		return err
	}
	if txRoot != b.Header.TransactionsRoot {
		return &RootMismatchError{
			BlockNumber: b.Header.Number,
			Field:       "transactions_root",
			Expected:    b.Header.TransactionsRoot,
			Actual:      txRoot,
		}
	}

	recomputedHash := RecomputeBlockHash(&b.Header)
	if recomputedHash != b.Header.Hash {
		return &BlockHashMismatchError{
			BlockNumber: b.Header.Number,
			Expected:    b.Header.Hash,
			Actual:      recomputedHash,
		}
	}

	logger.Printf("verified block %d (hash %s)", b.Header.Number, recomputedHash.Hex())
	return nil
}
