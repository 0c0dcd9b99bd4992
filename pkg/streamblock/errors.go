// Copyright 2025 Certen Protocol
//
// Package streamblock strips the two-layer protobuf envelope DBIN frames
// carry: an outer BstreamBlock wrapping a chain-specific inner block, and
// dispatches on content_type per spec §4.2 — decoding and verifying the
// inner Ethereum payload, or decoding (without verification) the inner
// Solana payload.

package streamblock

import (
	"errors"
	"fmt"

	"github.com/certen/independant-validator/pkg/ethereum"
)

// Sentinel errors for envelope and payload decoding.
var (
	// ErrMalformedProtobuf is returned when the wire bytes don't form a
	// valid sequence of protobuf fields.
	ErrMalformedProtobuf = errors.New("streamblock: malformed protobuf encoding")

	// ErrEmptyPayloadBuffer is returned when the outer envelope carries no
	// bytes-typed field to treat as payload_buffer.
	ErrEmptyPayloadBuffer = errors.New("streamblock: outer envelope has no payload_buffer field")

	// ErrMissingHeader is returned when an inner Ethereum block has no
	// header submessage.
	ErrMissingHeader = errors.New("streamblock: inner block has no header field")
)

// ContentTypeInvalid reports a DBIN content_type this decoder doesn't
// recognize (only "ETH" and the Solana type URL are dispatched).
type ContentTypeInvalid struct {
	ContentType string
}

func (e *ContentTypeInvalid) Error() string {
	return fmt.Sprintf("streamblock: unrecognized content type %q", e.ContentType)
}

// VerificationFailed reports that per-frame verification (spec §4.3)
// rejected a decoded block, short-circuiting the whole stream.
type VerificationFailed struct {
	BlockNumber ethereum.BlockNumber
	Err         error
}

func (e *VerificationFailed) Error() string {
	return fmt.Sprintf("streamblock: block %d failed verification: %v", e.BlockNumber, e.Err)
}

func (e *VerificationFailed) Unwrap() error {
	return e.Err
}
