// Copyright 2025 Certen Protocol

package proof

import (
	"github.com/certen/independant-validator/pkg/accumulator"
	"github.com/certen/independant-validator/pkg/epoch"
	"github.com/certen/independant-validator/pkg/ethereum"
	"github.com/certen/independant-validator/pkg/execution"
	"github.com/certen/independant-validator/pkg/merkle"
	ethssz "github.com/certen/independant-validator/pkg/ssz"
)

// Length is the declared length of an InclusionProof's sibling path: 13
// data-tree levels (2^13 = epoch.Size leaves) plus one length-mixin element
// plus one extra element. The extra element's precise derivation from
// canonical SSZ generalized-index math is an open question (see
// SPEC_FULL.md §4 decision 1); it is never consulted during verification.
const Length = 15

// dataTreeDepth is the number of real sibling-path levels below the
// length mixin.
const dataTreeDepth = 13

// InclusionProof is a per-block Merkle path into its epoch's accumulator.
type InclusionProof struct {
	BlockNumber ethereum.BlockNumber
	Path        [Length][32]byte
}

// HeaderWithProof binds an InclusionProof to the full header it was
// generated for.
type HeaderWithProof struct {
	Header ethereum.BlockHeader
	Proof  InclusionProof
}

// Generate produces an inclusion proof for header within epoch e.
func Generate(header *ethereum.BlockHeader, e *epoch.Epoch) (*InclusionProof, error) {
	blockEpoch := epoch.NumberOf(header.Number)
	if blockEpoch != e.Number() {
		return nil, &EpochNotMatchForHeaderError{
			BlockNumber: header.Number,
			BlockEpoch:  blockEpoch,
			EpochNumber: e.Number(),
		}
	}

	tree, err := ethssz.AccumulatorTree(e.Records())
	if err != nil {
		return nil, err
	}

	index := epoch.IndexOf(header.Number)
	siblings, err := tree.SiblingPath(index)
	if err != nil {
		return nil, err
	}

	var path [Length][32]byte
	copy(path[:dataTreeDepth], siblings)
	path[dataTreeDepth] = merkle.LengthChunk(epoch.Size)
	// path[dataTreeDepth+1] left as the zero value; see Length's doc comment.

	return &InclusionProof{BlockNumber: header.Number, Path: path}, nil
}

// WithHeader binds a proof to a full header, failing if the header's block
// number doesn't match the one the proof was generated for.
func (p *InclusionProof) WithHeader(header *ethereum.BlockHeader) (*HeaderWithProof, error) {
	if header.Number != p.BlockNumber {
		return nil, ErrHeaderMismatch
	}
	return &HeaderWithProof{Header: *header, Proof: *p}, nil
}

// Verify re-derives the leaf HeaderRecord from hwp.Header, replays the
// Merkle path, and compares the result against the trusted accumulator's
// root for the header's epoch.
func Verify(hwp *HeaderWithProof, acc *accumulator.Validator) error {
	if hwp.Header.Number != hwp.Proof.BlockNumber {
		return ErrHeaderMismatch
	}

	recomputedHash := execution.RecomputeBlockHash(&hwp.Header)
	record := epoch.HeaderRecord{
		BlockHash:       [32]byte(recomputedHash),
		TotalDifficulty: hwp.Header.TotalDifficulty,
		BlockNumber:     hwp.Header.Number,
	}
	leaf := ethssz.HeaderRecordRoot(record)

	index := epoch.IndexOf(hwp.Header.Number)
	siblings := hwp.Proof.Path[:dataTreeDepth]

	sibSlice := make([][32]byte, dataTreeDepth)
	copy(sibSlice, siblings)
	dataRoot := merkle.ReplaySiblingPath(leaf, index, sibSlice)

	mixed := merkle.HashPair(dataRoot, hwp.Proof.Path[dataTreeDepth])

	expected, err := acc.RootAt(epoch.NumberOf(hwp.Header.Number))
	if err != nil {
		return err
	}

	if mixed != expected {
		return ErrProofValidationFailure
	}
	return nil
}

// GenerateBatch looks up each header's epoch in epochs by epoch number and
// returns proofs in the order headers was supplied. Each proof comes from
// its own Generate call, which builds the epoch's tree anew, so a tree is
// built once per header rather than once per epoch.
func GenerateBatch(headers []ethereum.BlockHeader, epochs []*epoch.Epoch) ([]*InclusionProof, error) {
	byNumber := make(map[uint64]*epoch.Epoch, len(epochs))
	var epochList []uint64
	for _, e := range epochs {
		byNumber[e.Number()] = e
		epochList = append(epochList, e.Number())
	}

	out := make([]*InclusionProof, len(headers))
	for i := range headers {
		blockEpoch := epoch.NumberOf(headers[i].Number)
		e, ok := byNumber[blockEpoch]
		if !ok {
			return nil, &EpochNotFoundInProvidedListError{BlockEpoch: blockEpoch, EpochList: epochList}
		}
		p, err := Generate(&headers[i], e)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// VerifyBatch verifies each proved header in order, failing fast on the
// first invalid element; partial results are not returned.
func VerifyBatch(provedHeaders []*HeaderWithProof, acc *accumulator.Validator) error {
	for _, hwp := range provedHeaders {
		if err := Verify(hwp, acc); err != nil {
			return err
		}
	}
	return nil
}
