// Copyright 2025 Certen Protocol

package streamblock

import (
	"github.com/certen/independant-validator/pkg/solana"
)

// decodeSolanaBlock parses the inner Solana Block message per fields.go's
// field-number table, using the same structural field-walk wire.go uses
// for the Ethereum payload.
func decodeSolanaBlock(buf []byte) (*solana.Block, error) {
	fs, err := parseFields(buf)
	if err != nil {
		return nil, err
	}
	return &solana.Block{Slot: fs.varint(fieldSolanaSlot)}, nil
}
