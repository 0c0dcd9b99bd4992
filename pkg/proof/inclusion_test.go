// Copyright 2025 Certen Protocol

package proof

import (
	"math/big"
	"testing"

	"github.com/certen/independant-validator/pkg/accumulator"
	"github.com/certen/independant-validator/pkg/epoch"
	"github.com/certen/independant-validator/pkg/ethereum"
	"github.com/certen/independant-validator/pkg/execution"
	ethssz "github.com/certen/independant-validator/pkg/ssz"
)

func buildTestEpoch(t *testing.T) (*epoch.Epoch, []ethereum.BlockHeader) {
	t.Helper()

	headers := make([]ethereum.BlockHeader, epoch.Size)
	records := make([]epoch.HeaderRecord, epoch.Size)
	for i := 0; i < epoch.Size; i++ {
		h := ethereum.BlockHeader{
			Number:          ethereum.BlockNumber(i),
			Difficulty:      big.NewInt(int64(i) + 1),
			TotalDifficulty: big.NewInt(int64(i) + 1),
		}
		h.Hash = execution.RecomputeBlockHash(&h)
		headers[i] = h
		records[i] = epoch.HeaderRecord{
			BlockHash:       [32]byte(h.Hash),
			TotalDifficulty: h.TotalDifficulty,
			BlockNumber:     h.Number,
		}
	}

	e, err := epoch.New(records)
	if err != nil {
		t.Fatalf("epoch.New: %v", err)
	}
	return e, headers
}

func TestGenerateAndVerifyInclusionProof(t *testing.T) {
	e, headers := buildTestEpoch(t)

	root, err := ethssz.AccumulatorRoot(e.Records())
	if err != nil {
		t.Fatalf("AccumulatorRoot: %v", err)
	}
	table := make([][32]byte, 1)
	table[0] = root
	acc := accumulator.NewWithTable(table)

	p, err := Generate(&headers[301], e)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	hwp, err := p.WithHeader(&headers[301])
	if err != nil {
		t.Fatalf("WithHeader: %v", err)
	}

	if err := Verify(hwp, acc); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestBindingProofToWrongHeaderFails(t *testing.T) {
	e, headers := buildTestEpoch(t)

	p, err := Generate(&headers[301], e)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	_, err = p.WithHeader(&headers[302])
	if err != ErrHeaderMismatch {
		t.Fatalf("err = %v, want ErrHeaderMismatch", err)
	}
}

func TestVerifyFailsOnTamperedHeader(t *testing.T) {
	e, headers := buildTestEpoch(t)

	root, err := ethssz.AccumulatorRoot(e.Records())
	if err != nil {
		t.Fatalf("AccumulatorRoot: %v", err)
	}
	acc := accumulator.NewWithTable([][32]byte{root})

	p, err := Generate(&headers[301], e)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tampered := headers[301]
	tampered.GasUsed = tampered.GasUsed + 1 // changes the recomputed hash
	hwp := &HeaderWithProof{Header: tampered, Proof: *p}

	if err := Verify(hwp, acc); err != ErrProofValidationFailure {
		t.Fatalf("err = %v, want ErrProofValidationFailure", err)
	}
}
